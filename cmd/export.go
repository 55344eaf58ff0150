package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/advisorly/advisor-session/internal"
	"github.com/advisorly/advisor-session/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	sessionID string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to file",
	Long: `Export advising transcripts to various formats (txt, json, md, yaml,
jsonl, pdf, docx).

You can export all sessions or a specific session by ID.
Use 'advisor-session list' to see available session IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		var sessions []*internal.Session
		if sessionID != "" {
			session, err := store.LoadSession(sessionID)
			if err != nil {
				return fmt.Errorf("failed to load session: %w", err)
			}
			if session == nil {
				return fmt.Errorf("session not found: %s (use 'advisor-session list' to see available sessions)", sessionID)
			}
			sessions = append(sessions, session)
		} else {
			infos, err := store.ListSessions()
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			for _, info := range infos {
				session, err := store.LoadSession(info.ID)
				if err != nil {
					internal.LogWarn("Failed to load session %s: %v", info.ID, err)
					continue
				}
				sessions = append(sessions, session)
			}
		}

		// Ensure output directory exists
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		for _, session := range sessions {
			filename := export.Filename(exporter.Extension())
			if sessionID == "" {
				// Exporting a batch in one run: fold the session id in so
				// filenames cannot collide within one millisecond
				filename = fmt.Sprintf("college-advisor-session-%s-%s", session.ID, filename[len("college-advisor-session-"):])
			}
			path := filepath.Join(outputDir, filename)
			if err := writeSessionExport(exporter, session, path); err != nil {
				internal.LogError("Failed to export session %s: %v", session.ID, err)
				continue
			}
			exported++
		}

		fmt.Printf("Export complete: %d session(s) exported to %s\n", exported, outputDir)
		return nil
	},
}

// writeSessionExport renders one transcript to path. A failed render
// deletes the file so no partial export is left behind.
func writeSessionExport(exporter export.Exporter, session *internal.Session, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if err := exporter.Export(session, file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	return file.Close()
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "txt", "Export format (txt, json, md, yaml, jsonl, pdf, docx)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().StringVar(&sessionID, "session-id", "", "Export a specific session by ID")
}
