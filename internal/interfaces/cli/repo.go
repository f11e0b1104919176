package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"scriptherder.io/cli/internal/core/config"
)

// NewRepoCommand creates the repo command, which prints identity and remote
// information for the configured project repository.
func NewRepoCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "repo",
		Short: "Show information about the configured project repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := container.Config.RepoPath()
			if !ok {
				return fmt.Errorf("no project path configured (set %s)", config.KeyRepoPath)
			}

			info, err := container.Inspector.Inspect(path)
			if err != nil {
				return fmt.Errorf("failed to inspect repository: %w", err)
			}

			out := cmd.OutOrStdout()
			label := lipgloss.NewStyle().Bold(true).Width(12)
			fmt.Fprintf(out, "%s %s\n", label.Render("Path:"), info.Path)
			fmt.Fprintf(out, "%s %s\n", label.Render("Remote:"), info.Remote)
			fmt.Fprintf(out, "%s %s\n", label.Render("Remote URL:"), info.RemoteURL)
			fmt.Fprintf(out, "%s %s\n", label.Render("User:"), info.User)
			fmt.Fprintf(out, "%s %s\n", label.Render("Email:"), info.Email)
			return nil
		},
	}
}
