package export

import (
	"strings"
	"testing"
)

func TestParseDocument_PlainTextPreserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // concatenated run text with markup stripped
	}{
		{
			name:  "plain paragraph",
			input: "Hello there",
			want:  "Hello there",
		},
		{
			name:  "bold span",
			input: "Hello **there** friend",
			want:  "Hello there friend",
		},
		{
			name:  "italic span",
			input: "an *important* note",
			want:  "an important note",
		},
		{
			name:  "nested emphasis",
			input: "**bold and *italic* inside**",
			want:  "bold and italic inside",
		},
		{
			name:  "link with label",
			input: "see [FAFSA](https://fafsa.gov) today",
			want:  "see FAFSA today",
		},
		{
			name:  "inline code",
			input: "run `go build` first",
			want:  "run go build first",
		},
		{
			name:  "soft line break",
			input: "first line\nsecond line",
			want:  "first line second line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := ParseDocument(tt.input)
			if len(elements) != 1 {
				t.Fatalf("ParseDocument() returned %d elements, want 1", len(elements))
			}
			if elements[0].Kind != ElementParagraph {
				t.Fatalf("element kind = %v, want paragraph", elements[0].Kind)
			}
			got := joinRunText(elements[0].Runs)
			if got != tt.want {
				t.Errorf("concatenated text = %q, want %q", got, tt.want)
			}
			for _, run := range elements[0].Runs {
				if run.Text == "" {
					t.Error("empty run emitted")
				}
			}
		})
	}
}

func TestParseDocument_NestedEmphasisFlags(t *testing.T) {
	elements := ParseDocument("**bold *both* bold**")
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}

	runs := elements[0].Runs
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %+v", len(runs), runs)
	}

	if !runs[0].Bold || runs[0].Italic {
		t.Errorf("first run flags = bold:%v italic:%v, want bold only", runs[0].Bold, runs[0].Italic)
	}
	if !runs[1].Bold || !runs[1].Italic {
		t.Errorf("nested run flags = bold:%v italic:%v, want both", runs[1].Bold, runs[1].Italic)
	}
	if runs[1].Text != "both" {
		t.Errorf("nested run text = %q, want %q", runs[1].Text, "both")
	}
	if !runs[2].Bold || runs[2].Italic {
		t.Errorf("last run flags = bold:%v italic:%v, want bold only", runs[2].Bold, runs[2].Italic)
	}
}

func TestParseDocument_LinkChildrenPreserveStyling(t *testing.T) {
	elements := ParseDocument("[see **this** page](https://example.edu)")
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}

	runs := elements[0].Runs
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d: %+v", len(runs), runs)
	}

	link := runs[0]
	if link.Link != "https://example.edu" {
		t.Errorf("link target = %q, want %q", link.Link, "https://example.edu")
	}
	if link.Text != "see this page" {
		t.Errorf("flattened text = %q, want %q", link.Text, "see this page")
	}
	if len(link.LinkChildren) != 3 {
		t.Fatalf("expected 3 link children, got %d: %+v", len(link.LinkChildren), link.LinkChildren)
	}
	if link.LinkChildren[0].Bold {
		t.Error("first child should not be bold")
	}
	if !link.LinkChildren[1].Bold || link.LinkChildren[1].Text != "this" {
		t.Errorf("bold child = %+v, want bold run %q", link.LinkChildren[1], "this")
	}
}

func TestParseDocument_LinkInheritsAmbientStyle(t *testing.T) {
	elements := ParseDocument("**[apply here](https://apply.edu)**")
	runs := elements[0].Runs
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if !runs[0].Bold {
		t.Error("link inside bold span should carry the bold flag")
	}
	if runs[0].Link != "https://apply.edu" {
		t.Errorf("link target = %q", runs[0].Link)
	}
}

func TestParseDocument_Lists(t *testing.T) {
	input := "Options:\n\n- first choice\n- second **strong** choice\n\nDone."
	elements := ParseDocument(input)
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}
	if elements[1].Kind != ElementList {
		t.Fatalf("middle element kind = %v, want list", elements[1].Kind)
	}
	items := elements[1].Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if joinRunText(items[0]) != "first choice" {
		t.Errorf("first item text = %q", joinRunText(items[0]))
	}
	if joinRunText(items[1]) != "second strong choice" {
		t.Errorf("second item text = %q", joinRunText(items[1]))
	}

	var sawBold bool
	for _, run := range items[1] {
		if run.Bold && run.Text == "strong" {
			sawBold = true
		}
	}
	if !sawBold {
		t.Error("bold run missing from list item")
	}
}

func TestParseDocument_NestedListsFlattened(t *testing.T) {
	input := "- parent\n  - child one\n  - child two\n- sibling"
	elements := ParseDocument(input)
	if len(elements) != 1 || elements[0].Kind != ElementList {
		t.Fatalf("expected a single list, got %+v", elements)
	}

	var texts []string
	for _, item := range elements[0].Items {
		texts = append(texts, joinRunText(item))
	}
	want := []string{"parent", "child one", "child two", "sibling"}
	if len(texts) != len(want) {
		t.Fatalf("item texts = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestParseDocument_FallbackParagraph(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"heading only", "## Just a heading"},
		{"fenced code only", "```\nsome code\n```"},
		{"block quote only", "> quoted advice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := ParseDocument(tt.input)
			if len(elements) != 1 {
				t.Fatalf("expected exactly 1 fallback element, got %d", len(elements))
			}
			if elements[0].Kind != ElementParagraph {
				t.Fatalf("fallback kind = %v, want paragraph", elements[0].Kind)
			}
			if len(elements[0].Runs) != 1 {
				t.Fatalf("fallback runs = %d, want 1", len(elements[0].Runs))
			}
			run := elements[0].Runs[0]
			if run.Text != tt.input {
				t.Errorf("fallback text = %q, want original %q", run.Text, tt.input)
			}
			if run.Bold || run.Italic || run.Link != "" {
				t.Errorf("fallback run should be unstyled, got %+v", run)
			}
		})
	}
}

func TestParseDocument_HardLineBreak(t *testing.T) {
	elements := ParseDocument("line one  \nline two")
	if len(elements) != 1 || elements[0].Kind != ElementParagraph {
		t.Fatalf("expected a single paragraph, got %+v", elements)
	}

	runs := elements[0].Runs
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %+v", len(runs), runs)
	}
	if runs[0].Text != "line one" || !runs[0].Break {
		t.Errorf("first run = %+v, want %q with a break", runs[0], "line one")
	}
	if runs[1].Text != "line two" || runs[1].Break {
		t.Errorf("second run = %+v, want %q without a break", runs[1], "line two")
	}
}

func TestParseDocument_SoftBreakCarriesNoBreak(t *testing.T) {
	elements := ParseDocument("first line\nsecond line")
	for _, run := range elements[0].Runs {
		if run.Break {
			t.Errorf("soft line break produced a hard break run: %+v", run)
		}
	}
}

func TestParseDocument_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n"} {
		if elements := ParseDocument(input); len(elements) != 0 {
			t.Errorf("ParseDocument(%q) = %+v, want no elements", input, elements)
		}
	}
}

func TestParseDocument_UnclosedEmphasisTerminates(t *testing.T) {
	// Unbalanced markers parse as literal text; nothing is lost and
	// nothing loops
	elements := ParseDocument("**never closed")
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	got := joinRunText(elements[0].Runs)
	if !strings.Contains(got, "never closed") {
		t.Errorf("content dropped: %q", got)
	}
}
