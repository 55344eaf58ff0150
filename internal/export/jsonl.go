package export

import (
	"encoding/json"
	"io"

	"github.com/advisorly/advisor-session/internal"
)

// JSONLExporter exports sessions as one JSON object per message line,
// convenient for piping into analysis tools
type JSONLExporter struct{}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, msg := range session.Messages {
		if err := enc.Encode(msg); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
