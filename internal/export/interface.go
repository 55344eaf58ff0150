package export

import (
	"fmt"
	"io"
	"time"

	"github.com/advisorly/advisor-session/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(session *internal.Session, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "txt", "text":
		return &TextExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "pdf":
		return &PDFExporter{}, nil
	case "docx", "word":
		return &WordExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: txt, json, md, yaml, jsonl, pdf, docx)", format)
	}
}

// Title printed at the top of every transcript export
const transcriptTitle = "Personal College Advisor - Session Transcript"

// timestampLayout mirrors the locale format the chat UI shows
const timestampLayout = "1/2/2006, 3:04:05 PM"

// Filename returns the download filename for an export performed now
func Filename(ext string) string {
	return fmt.Sprintf("college-advisor-session-%d.%s", time.Now().UnixMilli(), ext)
}

// Summary holds the session-level header data shared by the plain formats
type Summary struct {
	GeneratedAt   time.Time  `json:"generatedAt" yaml:"generatedAt"`
	TotalMessages int        `json:"totalMessages" yaml:"totalMessages"`
	SessionStart  *time.Time `json:"sessionStart,omitempty" yaml:"sessionStart,omitempty"`
	SessionEnd    *time.Time `json:"sessionEnd,omitempty" yaml:"sessionEnd,omitempty"`
}

// BuildSummary derives a Summary from an ordered message list
func BuildSummary(messages []internal.Message) Summary {
	summary := Summary{
		GeneratedAt:   time.Now(),
		TotalMessages: len(messages),
	}
	if len(messages) > 0 {
		first := messages[0].Timestamp
		last := messages[len(messages)-1].Timestamp
		summary.SessionStart = &first
		summary.SessionEnd = &last
	}
	return summary
}
