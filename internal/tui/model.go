// Package tui is the bubbletea front end for the browser: it maps key
// presses onto browse.State transitions and renders the state as a
// two-panel frame. All filesystem logic lives in internal/browse; this
// package only reads the state it is handed.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rota/internal/browse"
	"rota/internal/config"
	"rota/internal/log"
	"rota/internal/tui/styles"
)

// Model implements tea.Model over a browse.State.
type Model struct {
	state  *browse.State
	keys   keyMap
	help   help.Model
	width  int
	height int
	offset int // first visible list row
}

// New builds the model and applies the config's theme overrides.
func New(st *browse.State, cfg *config.Config) *Model {
	styles.Load(cfg.Theme)
	return &Model{
		state: st,
		keys:  newKeyMap(cfg.Keys),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Everything except key presses and
// resizes is ignored; there are no background commands to wait on.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.state.MoveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.state.MoveSelection(-1)
	case key.Matches(msg, m.keys.Bottom):
		m.state.MoveSelection(len(m.state.Entries))
	case key.Matches(msg, m.keys.Top):
		m.state.MoveSelection(-len(m.state.Entries))
	case key.Matches(msg, m.keys.Open):
		m.state.EnterSelected()
	case key.Matches(msg, m.keys.Parent):
		m.state.GoParent()
	case key.Matches(msg, m.keys.Refresh):
		log.Debugf("manual refresh of %s", m.state.CurrentDir)
		m.state.Refresh()
	case key.Matches(msg, m.keys.Hidden):
		m.state.ToggleHidden()
	}
	return m, nil
}

// State exposes the underlying application state for tests.
func (m *Model) State() *browse.State {
	return m.state
}
