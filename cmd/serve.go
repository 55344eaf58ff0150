package cmd

import (
	"fmt"
	"net"
	"net/http"

	"github.com/advisorly/advisor-session/internal"
	"github.com/advisorly/advisor-session/internal/config"
	"github.com/advisorly/advisor-session/internal/llm"
	"github.com/advisorly/advisor-session/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the college-advisor chat API",
	Long: `Run the HTTP API for the college-advisor chat.

Configuration comes from config.yaml, a local .env file, or environment
variables (PERPLEXITY_API_KEY, HTTP_PORT, ADVISOR_DB).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("PERPLEXITY_API_KEY is required to serve the chat API")
		}

		if dbPath != "" {
			cfg.Database.Path = dbPath
		}
		store, err := internal.NewStore(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open session database: %w", err)
		}
		defer func() { _ = store.Close() }()

		client := llm.NewClient(cfg.LLM)
		handler := server.NewHandler(store, client)
		router := server.NewRouter(handler)

		addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
		internal.LogInfo("Serving advisor chat API on %s (database: %s)", addr, cfg.Database.Path)
		if err := http.ListenAndServe(addr, router); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
