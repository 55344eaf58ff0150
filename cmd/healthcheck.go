package cmd

import (
	"fmt"
	"os"

	"github.com/advisorly/advisor-session/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check configuration and session storage",
	Long: `Check the health of advisor-session by verifying:
  • Configuration loading
  • Perplexity API key presence
  • Session database accessibility
  • Session count

This command is useful for debugging setup issues, especially in CI/CD environments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Advisor Session Health Check"))
		fmt.Println()

		// Step 1: Configuration
		fmt.Println(infoStyle.Render("Step 1: Loading configuration..."))
		cfg, err := config.Load()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to load configuration:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✅ Configuration loaded"))
		fmt.Printf("   Model: %s\n", cfg.LLM.Model)
		fmt.Printf("   Database: %s\n", cfg.Database.Path)
		fmt.Println()

		// Step 2: API key
		fmt.Println(infoStyle.Render("Step 2: Checking Perplexity API key..."))
		if cfg.LLM.APIKey == "" {
			fmt.Println(warningStyle.Render("⚠️  PERPLEXITY_API_KEY is not set - 'serve' will refuse to start"))
		} else {
			fmt.Println(successStyle.Render("✅ API key present"))
		}
		fmt.Println()

		// Step 3: Database
		fmt.Println(infoStyle.Render("Step 3: Opening session database..."))
		store, err := openStore()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to open session database:"), err)
			os.Exit(1)
		}
		defer func() { _ = store.Close() }()
		fmt.Println(successStyle.Render("✅ Session database accessible"))
		fmt.Println()

		// Step 4: Sessions
		fmt.Println(infoStyle.Render("Step 4: Counting sessions..."))
		infos, err := store.ListSessions()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to list sessions:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ %d session(s) stored", len(infos))))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
