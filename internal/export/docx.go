package export

import (
	"io"
	"strconv"

	"github.com/advisorly/advisor-session/internal"
	docx "github.com/fumiama/go-docx"
)

// WordExporter exports sessions as a Word document
type WordExporter struct{}

// wordStyle selects the paragraph treatment applied during packing
type wordStyle int

const (
	wordTitle wordStyle = iota
	wordMeta
	wordHeading
	wordBody
	wordBullet
)

// wordRun is one styled span inside a paragraph. A non-empty Link makes
// the span a hyperlink; Break marks a hard line break after the span.
type wordRun struct {
	Text   string
	Bold   bool
	Italic bool
	Link   string
	Break  bool
}

// wordParagraph is the renderer's packaging-agnostic paragraph node
type wordParagraph struct {
	Style wordStyle
	Runs  []wordRun
}

// Export builds the paragraph/run tree and hands it to the document
// packager
func (e *WordExporter) Export(session *internal.Session, w io.Writer) error {
	paragraphs := buildWordParagraphs(session.Messages)

	doc := docx.New().WithDefaultTheme()
	for _, para := range paragraphs {
		p := doc.AddParagraph()
		if para.Style == wordBullet {
			// go-docx carries no list numbering helper, so bullets are a
			// literal glyph at the start of the item
			p.AddText("• ")
		}
		for _, run := range para.Runs {
			if run.Text == "" {
				continue
			}
			if run.Link != "" {
				link := p.AddLink(run.Text, run.Link)
				if run.Bold {
					link.Run.Bold()
				}
				if run.Italic {
					link.Run.Italic()
				}
				continue
			}
			r := p.AddText(run.Text)
			switch para.Style {
			case wordTitle:
				r.Size("36")
			case wordHeading:
				r.Size("26")
			}
			if run.Bold {
				r.Bold()
			}
			if run.Italic {
				r.Italic()
			}
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return &internal.ExportError{Format: "docx", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *WordExporter) Extension() string {
	return "docx"
}

// buildWordParagraphs converts the message list into the intermediate
// paragraph/run tree: a title, two bold metadata paragraphs, then per
// message a heading followed by its document elements
func buildWordParagraphs(messages []internal.Message) []wordParagraph {
	summary := BuildSummary(messages)

	paragraphs := []wordParagraph{
		{Style: wordTitle, Runs: []wordRun{{Text: transcriptTitle, Bold: true}}},
		{Style: wordMeta, Runs: []wordRun{{Text: "Generated: " + summary.GeneratedAt.Format(timestampLayout), Bold: true}}},
		{Style: wordMeta, Runs: []wordRun{{Text: "Total Messages: " + strconv.Itoa(summary.TotalMessages), Bold: true}}},
	}

	for _, msg := range messages {
		heading := internal.RoleLabel(msg.Role) + " - " + msg.Timestamp.Format(timestampLayout)
		paragraphs = append(paragraphs, wordParagraph{
			Style: wordHeading,
			Runs:  []wordRun{{Text: heading, Bold: true}},
		})

		for _, element := range ParseDocument(msg.Content) {
			switch element.Kind {
			case ElementParagraph:
				// A hard line break becomes a paragraph split; Word has no
				// neutral in-paragraph break in this packager
				for _, runs := range splitAtBreaks(convertRuns(element.Runs)) {
					paragraphs = append(paragraphs, wordParagraph{
						Style: wordBody,
						Runs:  runs,
					})
				}
			case ElementList:
				for _, item := range element.Items {
					paragraphs = append(paragraphs, wordParagraph{
						Style: wordBullet,
						Runs:  convertRuns(item),
					})
				}
			}
		}
	}

	return paragraphs
}

// convertRuns maps inline runs to word runs. Link runs expand their
// LinkChildren so mixed formatting inside a link survives, each child
// bound to the same target URL.
func convertRuns(runs []InlineRun) []wordRun {
	var out []wordRun
	for _, run := range runs {
		if run.Link != "" && len(run.LinkChildren) > 0 {
			for _, child := range run.LinkChildren {
				out = append(out, wordRun{
					Text:   child.Text,
					Bold:   child.Bold,
					Italic: child.Italic,
					Link:   run.Link,
				})
			}
			continue
		}
		out = append(out, wordRun{
			Text:   run.Text,
			Bold:   run.Bold,
			Italic: run.Italic,
			Link:   run.Link,
			Break:  run.Break,
		})
	}
	return out
}

// splitAtBreaks groups runs into per-line sequences, cutting after every
// run that ends with a hard break
func splitAtBreaks(runs []wordRun) [][]wordRun {
	var groups [][]wordRun
	var current []wordRun
	for _, run := range runs {
		current = append(current, run)
		if run.Break {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
