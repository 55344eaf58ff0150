package export

import (
	"io"
	"time"

	"github.com/advisorly/advisor-session/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports sessions in YAML format
type YAMLExporter struct{}

type yamlMessage struct {
	Role      string    `yaml:"role"`
	Content   string    `yaml:"content"`
	Timestamp time.Time `yaml:"timestamp"`
	Citations []string  `yaml:"citations,omitempty"`
}

type yamlDocument struct {
	SessionInfo Summary       `yaml:"sessionInfo"`
	Messages    []yamlMessage `yaml:"messages"`
}

// Export exports a session to YAML format
func (e *YAMLExporter) Export(session *internal.Session, w io.Writer) error {
	doc := yamlDocument{
		SessionInfo: BuildSummary(session.Messages),
		Messages:    make([]yamlMessage, 0, len(session.Messages)),
	}
	for _, msg := range session.Messages {
		doc.Messages = append(doc.Messages, yamlMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
			Citations: msg.Citations,
		})
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(doc)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
