package export

import (
	"strings"
	"testing"
	"time"

	"github.com/advisorly/advisor-session/internal"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"txt", "txt", false},
		{"text", "txt", false},
		{"json", "json", false},
		{"md", "md", false},
		{"markdown", "md", false},
		{"yaml", "yaml", false},
		{"jsonl", "jsonl", false},
		{"pdf", "pdf", false},
		{"docx", "docx", false},
		{"word", "docx", false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewExporter(%q) expected error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter(%q) error = %v", tt.format, err)
			}
			if exporter.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", exporter.Extension(), tt.wantExt)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	before := time.Now().UnixMilli()
	name := Filename("pdf")
	after := time.Now().UnixMilli()

	if !strings.HasPrefix(name, "college-advisor-session-") {
		t.Errorf("filename %q missing prefix", name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("filename %q missing extension", name)
	}

	millis := strings.TrimSuffix(strings.TrimPrefix(name, "college-advisor-session-"), ".pdf")
	var parsed int64
	for _, r := range millis {
		if r < '0' || r > '9' {
			t.Fatalf("filename timestamp %q is not numeric", millis)
		}
		parsed = parsed*10 + int64(r-'0')
	}
	if parsed < before || parsed > after {
		t.Errorf("filename timestamp %d outside [%d, %d]", parsed, before, after)
	}
}

func TestBuildSummary(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	messages := []internal.Message{
		{Role: internal.RoleUser, Content: "a", Timestamp: t1},
		{Role: internal.RoleAssistant, Content: "b", Timestamp: t2},
	}

	summary := BuildSummary(messages)
	if summary.TotalMessages != 2 {
		t.Errorf("TotalMessages = %d, want 2", summary.TotalMessages)
	}
	if summary.SessionStart == nil || !summary.SessionStart.Equal(t1) {
		t.Errorf("SessionStart = %v, want %v", summary.SessionStart, t1)
	}
	if summary.SessionEnd == nil || !summary.SessionEnd.Equal(t2) {
		t.Errorf("SessionEnd = %v, want %v", summary.SessionEnd, t2)
	}
}
