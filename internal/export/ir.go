package export

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// InlineRun is a contiguous span of text sharing one formatting state.
// When Link is set, Text is the flattened label; LinkChildren keeps the
// styled sub-runs so a renderer can either treat the link as one unit or
// preserve mixed formatting inside it. Break marks a hard line break
// after the run; soft breaks are folded into a space.
type InlineRun struct {
	Text         string
	Bold         bool
	Italic       bool
	Link         string
	LinkChildren []InlineRun
	Break        bool
}

// ElementKind tags a DocElement
type ElementKind int

const (
	ElementParagraph ElementKind = iota
	ElementList
)

// DocElement is one block of a message body: a paragraph of runs, or a
// single-level list of items (each item an ordered run sequence)
type DocElement struct {
	Kind  ElementKind
	Runs  []InlineRun   // ElementParagraph
	Items [][]InlineRun // ElementList
}

// ParseDocument tokenizes a message body and resolves it into document
// elements. Headings, code blocks, quotes and tables are skipped; the
// advisor's responses are prose and lists. A non-empty body that yields
// no usable elements falls back to one verbatim unstyled paragraph so
// content is never dropped.
func ParseDocument(content string) []DocElement {
	source := []byte(content)
	doc := goldmark.New().Parser().Parse(gtext.NewReader(source))

	var elements []DocElement
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch block := child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			runs := resolveRuns(block, source, false, false)
			if len(runs) > 0 {
				elements = append(elements, DocElement{Kind: ElementParagraph, Runs: runs})
			}
		case *ast.List:
			items := collectListItems(block, source)
			if len(items) > 0 {
				elements = append(elements, DocElement{Kind: ElementList, Items: items})
			}
		}
	}

	if len(elements) == 0 && strings.TrimSpace(content) != "" {
		elements = []DocElement{{
			Kind: ElementParagraph,
			Runs: []InlineRun{{Text: content}},
		}}
	}
	return elements
}

// resolveRuns walks the inline children of node left to right. The bold
// and italic context is threaded through the recursion as parameters, so
// a nested emphasis span cannot leak its style into siblings.
func resolveRuns(node ast.Node, source []byte, bold, italic bool) []InlineRun {
	var runs []InlineRun
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			text := string(n.Segment.Value(source))
			switch {
			case n.HardLineBreak():
				runs = appendRun(runs, InlineRun{Text: strings.TrimRight(text, " "), Bold: bold, Italic: italic, Break: true})
			case n.SoftLineBreak():
				runs = appendRun(runs, InlineRun{Text: text + " ", Bold: bold, Italic: italic})
			default:
				runs = appendRun(runs, InlineRun{Text: text, Bold: bold, Italic: italic})
			}
		case *ast.String:
			runs = appendRun(runs, InlineRun{Text: string(n.Value), Bold: bold, Italic: italic})
		case *ast.Emphasis:
			childBold, childItalic := bold, italic
			if n.Level >= 2 {
				childBold = true
			} else {
				childItalic = true
			}
			runs = append(runs, resolveRuns(n, source, childBold, childItalic)...)
		case *ast.CodeSpan:
			// Inline code carries no distinct styling, only the ambient one
			runs = appendRun(runs, InlineRun{Text: nodeText(n, source), Bold: bold, Italic: italic})
		case *ast.Link:
			children := resolveRuns(n, source, bold, italic)
			text := joinRunText(children)
			if text == "" {
				text = string(n.Destination)
			}
			runs = appendRun(runs, InlineRun{
				Text:         text,
				Bold:         bold,
				Italic:       italic,
				Link:         string(n.Destination),
				LinkChildren: children,
			})
		case *ast.AutoLink:
			url := string(n.URL(source))
			runs = appendRun(runs, InlineRun{Text: url, Bold: bold, Italic: italic, Link: url})
		default:
			// Unrecognized inline nodes contribute their children rather
			// than disappearing
			runs = append(runs, resolveRuns(n, source, bold, italic)...)
		}
	}
	return runs
}

// collectListItems flattens a list (and any nested lists) into one level
// of items. Item text keeps its inline formatting; nesting depth does not
// survive, every item renders at the same indentation.
func collectListItems(list *ast.List, source []byte) [][]InlineRun {
	var items [][]InlineRun
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		var runs []InlineRun
		var nested [][]InlineRun
		for block := item.FirstChild(); block != nil; block = block.NextSibling() {
			if sublist, ok := block.(*ast.List); ok {
				nested = append(nested, collectListItems(sublist, source)...)
				continue
			}
			runs = append(runs, resolveRuns(block, source, false, false)...)
		}
		if len(runs) > 0 {
			items = append(items, runs)
		}
		items = append(items, nested...)
	}
	return items
}

func appendRun(runs []InlineRun, run InlineRun) []InlineRun {
	if run.Text == "" && !run.Break {
		return runs
	}
	return append(runs, run)
}

func joinRunText(runs []InlineRun) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// nodeText collects the literal text under a node, for nodes whose
// children are plain segments (e.g. code spans)
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
		case *ast.String:
			sb.Write(n.Value)
		}
	}
	return sb.String()
}
