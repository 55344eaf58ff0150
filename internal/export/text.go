package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/advisorly/advisor-session/internal"
)

// TextExporter exports sessions as a plain-text transcript
type TextExporter struct{}

// Export writes the transcript with timestamps and role labels. Message
// bodies are emitted verbatim, markdown markup untouched.
func (e *TextExporter) Export(session *internal.Session, w io.Writer) error {
	summary := BuildSummary(session.Messages)

	_, _ = fmt.Fprintf(w, "%s\n", transcriptTitle)
	_, _ = fmt.Fprintf(w, "Generated: %s\n", summary.GeneratedAt.Format(timestampLayout))
	_, _ = fmt.Fprintf(w, "Total Messages: %d\n\n", summary.TotalMessages)
	_, _ = fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", 80))

	parts := make([]string, 0, len(session.Messages))
	for _, msg := range session.Messages {
		parts = append(parts, fmt.Sprintf("[%s] %s:\n%s\n",
			msg.Timestamp.Format(timestampLayout), internal.RoleLabel(msg.Role), msg.Content))
	}
	_, err := io.WriteString(w, strings.Join(parts, "\n---\n\n"))
	return err
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
