package cmd

import (
	"fmt"
	"os"

	"github.com/advisorly/advisor-session/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dbPath  string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advisor-session",
	Short: "Run and export college-advisor chat sessions",
	Long: `A college-advisor chat service with multi-format transcript exports.

advisor-session runs the advising chat API (backed by the Perplexity
"sonar" model), persists every conversation in SQLite, and exports
transcripts in several formats.

Features:
  • Chat API with conversation history and citation tracking
  • Export transcripts as TXT, JSON, Markdown, YAML, JSONL, PDF or Word
  • List and review stored sessions from the terminal
  • Health diagnostics for configuration and storage

Quick Start:
  advisor-session serve                  # Run the chat API
  advisor-session list                   # List stored sessions
  advisor-session export --format pdf    # Export transcripts`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Session database path (defaults to configuration)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openStore opens the session store honoring the --db override
func openStore() (*internal.Store, error) {
	path := dbPath
	if path == "" {
		path = defaultDBPath()
	}
	store, err := internal.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	return store, nil
}

func defaultDBPath() string {
	if env := os.Getenv("ADVISOR_DB"); env != "" {
		return env
	}
	return "advisor-session.db"
}
