package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"rota/internal/browse"
	"rota/internal/tui/styles"
)

const dirPrefix = "[DIR] "

// View implements tea.Model. It is a read-only pass over the state;
// the only thing it adjusts is the renderer's own scroll offset.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	navWidth := m.width * 3 / 5
	detailWidth := m.width - navWidth

	nav := m.renderNav(navWidth, m.height)
	details := m.renderDetails(detailWidth, m.height)

	return lipgloss.JoinHorizontal(lipgloss.Top, nav, details)
}

func (m *Model) renderNav(width, height int) string {
	inner := width - 4 // panel border and padding
	if inner < 10 {
		inner = 10
	}
	listHeight := height - 6 // header, separator, footer, border rows
	if listHeight < 1 {
		listHeight = 1
	}
	m.ensureVisible(listHeight)

	header := fmt.Sprintf("%s  (%d entries)", m.state.CurrentDir, len(m.state.Entries))
	lines := []string{
		styles.Theme.Header.Render(truncate(header, inner)),
		"",
	}

	entries := m.state.Entries
	sel := m.state.Selection.Index()

	end := m.offset + listHeight
	if end > len(entries) {
		end = len(entries)
	}
	for i := m.offset; i < end; i++ {
		e := entries[i]
		prefix := strings.Repeat(" ", len(dirPrefix))
		style := styles.Theme.File
		if e.IsDir {
			prefix = dirPrefix
			style = styles.Theme.Directory
		}
		row := truncate(prefix+e.Name, inner)
		if i == sel {
			row = styles.Theme.Selected.Render(padRight(row, inner))
		} else {
			row = style.Render(row)
		}
		lines = append(lines, row)
	}
	if len(entries) == 0 {
		lines = append(lines, styles.Theme.Help.Render("(empty)"))
	}
	for len(lines) < listHeight+2 {
		lines = append(lines, "")
	}

	m.help.Width = inner
	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.state.LastErr != "" {
		footer = styles.Theme.Error.Render(truncate("ERROR: "+m.state.LastErr, inner))
	}
	lines = append(lines, footer)

	return styles.Theme.Panel.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderDetails(width, height int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(styles.Theme.Header.Render("Details"))
	b.WriteString("\n\n")

	if e := m.state.SelectedEntry(); e == nil {
		b.WriteString(styles.Theme.Help.Render("No entries"))
	} else {
		writeDetail(&b, "Name", e.Name, inner)
		writeDetail(&b, "Type", entryKind(e), inner)
		writeDetail(&b, "Size", entrySize(e), inner)
		writeDetail(&b, "Modified", entryModified(e), inner)
		b.WriteString("\n")
		b.WriteString(styles.Theme.Label.Render("Path:"))
		b.WriteString("\n")
		b.WriteString(wrap(e.Path, inner))
	}

	return styles.Theme.Panel.Width(width - 2).Height(height - 2).Render(b.String())
}

func writeDetail(b *strings.Builder, label, value string, width int) {
	b.WriteString(styles.Theme.Label.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(truncate(value, width-len(label)-2))
	b.WriteString("\n")
}

func entryKind(e *browse.Entry) string {
	if e.IsDir {
		return "Directory"
	}
	return "File"
}

func entrySize(e *browse.Entry) string {
	if e.Size == nil {
		return "-"
	}
	return browse.FormatSize(*e.Size)
}

func entryModified(e *browse.Entry) string {
	if e.ModTime == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", e.ModTime.Format("2006-01-02 15:04"), humanize.Time(*e.ModTime))
}

// ensureVisible scrolls the list window so the selection stays on
// screen.
func (m *Model) ensureVisible(listHeight int) {
	sel := m.state.Selection.Index()
	if sel < m.offset {
		m.offset = sel
	}
	if sel >= m.offset+listHeight {
		m.offset = sel - listHeight + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func wrap(s string, width int) string {
	if width < 1 {
		return s
	}
	var b strings.Builder
	r := []rune(s)
	for len(r) > width {
		b.WriteString(string(r[:width]))
		b.WriteString("\n")
		r = r[width:]
	}
	b.WriteString(string(r))
	return b.String()
}
