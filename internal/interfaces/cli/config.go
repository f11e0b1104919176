package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"scriptherder.io/cli/internal/core/config"
)

// NewConfigCommand creates the config command: positional key reads, key
// plus value writes (and persists), --list prints the recognized keys.
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	var listKnown bool

	configCmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration values",
		Long: `Get or set configuration values.

With only a key, prints the resolved value from the highest-precedence scope
that defines it. With a key and a value, stores the value in the
highest-precedence writable scope and persists every modified scope.

Examples:
  sherd config core.log.level          # read a value
  sherd config core.log.level debug    # write and persist a value
  sherd config --list                  # list recognized keys`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if listKnown {
				printKnownKeys(cmd)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("a key is required (or --list)")
			}

			key := args[0]
			if len(args) == 2 {
				return runConfigSet(container, cmd, key, args[1])
			}
			value, ok := container.Config.Resolver.Value(key)
			if !ok {
				fmt.Fprintf(out, "No value found for key: %s\n", key)
				return nil
			}
			fmt.Fprintln(out, renderValue(value))
			return nil
		},
	}

	configCmd.Flags().BoolVarP(&listKnown, "list", "l", false, "List known config keys")

	return configCmd
}

func runConfigSet(container *CLIContainer, cmd *cobra.Command, key, value string) error {
	out := cmd.OutOrStdout()

	if !config.Put(container.Config.Resolver, key, value) {
		fmt.Fprintln(out, "No writable scope registered; value not stored")
		return nil
	}
	for _, err := range container.Config.Sync() {
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
	return nil
}

func printKnownKeys(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("Known configuration keys")
	fmt.Fprintln(out, title)

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	for _, key := range config.KnownKeys() {
		fmt.Fprintf(out, "  %s\n", keyStyle.Render(key.String()))
	}
}

// renderValue prints strings bare and everything else as JSON.
func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
