package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"scriptherder.io/cli/internal/application/appconfig"
	"scriptherder.io/cli/internal/core/config"
)

// NewBrowseCommand creates the browse command, an interactive view of every
// recognized key with its effective value and the scope it came from.
func NewBrowseCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse resolved configuration",
		Long: `Launch an interactive view of the recognized configuration keys.

Each row shows a key, its effective value, and the scope that supplied it
(environment, machine, cwd, or project). Shadowed scopes lose; unset keys
show as such.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newBrowseModel(container.Config)

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("browse failed: %w", err)
			}
			return nil
		},
	}
}

// browseRow is one recognized key resolved for display.
type browseRow struct {
	Key   string
	Value string
	Scope string
}

// browseModel holds the state for the Bubble Tea browser.
type browseModel struct {
	config      *appconfig.AppConfig
	rows        []browseRow
	selectedRow int
	windowWidth int
}

func newBrowseModel(cfg *appconfig.AppConfig) browseModel {
	return browseModel{
		config: cfg,
		rows:   collectRows(cfg),
	}
}

// collectRows resolves each recognized key against the scopes in precedence
// order, recording the winning scope.
func collectRows(cfg *appconfig.AppConfig) []browseRow {
	rows := make([]browseRow, 0, len(config.KnownKeys()))
	for _, key := range config.KnownKeys() {
		row := browseRow{Key: key.String(), Value: "(unset)", Scope: "-"}
		for _, scope := range cfg.Scopes() {
			if v, ok := scope.Source.Value(key.String()); ok {
				row.Value = renderValue(v)
				row.Scope = scope.Name
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Init implements the Bubble Tea init method.
func (m browseModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.selectedRow > 0 {
				m.selectedRow--
			}
			return m, nil

		case "down", "j":
			if m.selectedRow < len(m.rows)-1 {
				m.selectedRow++
			}
			return m, nil

		case "r":
			m.rows = collectRows(m.config)
			return m, nil
		}
	}

	return m, nil
}

// View implements the Bubble Tea view method.
func (m browseModel) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("Script Herder Configuration")

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf("%-20s %-30s %s", "KEY", "VALUE", "SCOPE"))

	lines := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		line := fmt.Sprintf("%-20s %-30s %s", row.Key, row.Value, row.Scope)
		style := lipgloss.NewStyle()
		if i == m.selectedRow {
			style = style.Bold(true).Foreground(lipgloss.Color("212"))
		}
		lines = append(lines, style.Render(line))
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("j/k: navigate • r: refresh • q: quit")

	parts := append([]string{title, "", header}, lines...)
	parts = append(parts, "", footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
