package cmd

import (
	"fmt"

	"github.com/advisorly/advisor-session/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	studentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	advisorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	citationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print one session transcript",
	Long:  `Print a stored advising conversation to the terminal, including citations.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		session, err := store.LoadSession(args[0])
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if session == nil {
			return fmt.Errorf("session not found: %s (use 'advisor-session list' to see available sessions)", args[0])
		}

		fmt.Printf("Session %s (%d messages)\n\n", session.ID, len(session.Messages))
		for _, msg := range session.Messages {
			style := advisorStyle
			if msg.Role == internal.RoleUser {
				style = studentStyle
			}
			fmt.Printf("%s %s\n%s\n",
				style.Render(internal.RoleLabel(msg.Role)+":"),
				timestampStyle.Render(msg.Timestamp.Local().Format("2006-01-02 15:04:05")),
				msg.Content,
			)
			for i, url := range msg.Citations {
				fmt.Println(citationStyle.Render(fmt.Sprintf("  [%d] %s", i+1, url)))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
