package export

import (
	"fmt"
	"io"

	"github.com/advisorly/advisor-session/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export writes role/timestamp headers with the raw message bodies, which
// are already markdown
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	summary := BuildSummary(session.Messages)

	_, _ = fmt.Fprintf(w, "# %s\n\n", transcriptTitle)
	_, _ = fmt.Fprintf(w, "**Generated:** %s  \n", summary.GeneratedAt.Format(timestampLayout))
	_, _ = fmt.Fprintf(w, "**Total Messages:** %d\n\n", summary.TotalMessages)
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range session.Messages {
		_, _ = fmt.Fprintf(w, "### %s - %s\n\n%s\n",
			internal.RoleLabel(msg.Role), msg.Timestamp.Format(timestampLayout), msg.Content)
		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "\n---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
