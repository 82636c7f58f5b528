package styles

import (
	"github.com/charmbracelet/lipgloss"

	"rota/internal/config"
)

// Theme defines the core UI styles. Load rebuilds it from config so
// theme overrides apply before the first frame.
var Theme = struct {
	Header    lipgloss.Style
	Panel     lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Selected  lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	Label     lipgloss.Style
}{}

func init() {
	Load(config.New().Theme)
}

// Load derives the style set from theme colors.
func Load(t config.Theme) {
	Theme.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Header)).
		Padding(0, 1)
	Theme.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)
	Theme.Directory = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Directory))
	Theme.File = lipgloss.NewStyle()
	Theme.Selected = lipgloss.NewStyle().
		Reverse(true)
	Theme.Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Help))
	Theme.Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Error))
	Theme.Label = lipgloss.NewStyle().
		Bold(true)
}
