package browse

import (
	"path/filepath"

	"rota/internal/log"
)

// State is the whole application state: the directory being browsed,
// its current snapshot and the selection into it. Transitions mutate it
// in place and return nothing; failures land in LastErr and are shown
// by the renderer, so the event loop never has to unwind.
type State struct {
	CurrentDir string
	Entries    []Entry
	Selection  Selection
	LastErr    string
	ShowHidden bool
}

// NewState builds a State rooted at dir and performs the initial scan.
// A failing scan is not fatal here; it shows up in LastErr like any
// later one.
func NewState(dir string, showHidden bool) *State {
	s := &State{CurrentDir: dir, ShowHidden: showHidden}
	s.Refresh()
	return s
}

// Refresh rebuilds the snapshot for CurrentDir from scratch. A failed
// scan leaves an empty listing and the error message; a successful one
// clears any stale error. The selection is clamped to the new length
// either way.
func (s *State) Refresh() {
	s.LastErr = ""
	entries, err := Scan(s.CurrentDir, s.ShowHidden)
	if err != nil {
		log.Warnf("scan failed: %v", err)
		s.Entries = nil
		s.LastErr = err.Error()
	} else {
		s.Entries = entries
	}
	s.Selection.Clamp(len(s.Entries))
}

// EnterSelected descends into the selected entry when it is a
// directory. A file selection or an empty listing is a no-op, not an
// error.
func (s *State) EnterSelected() {
	e := s.SelectedEntry()
	if e == nil || !e.IsDir {
		return
	}
	s.CurrentDir = e.Path
	s.Selection.Reset()
	s.Refresh()
}

// GoParent moves one directory up. At the filesystem root this is a
// no-op.
func (s *State) GoParent() {
	parent := filepath.Dir(s.CurrentDir)
	if parent == s.CurrentDir {
		return
	}
	s.CurrentDir = parent
	s.Selection.Reset()
	s.Refresh()
}

// MoveSelection shifts the selection by delta within the current
// listing.
func (s *State) MoveSelection(delta int) {
	s.Selection.MoveBy(delta, len(s.Entries))
}

// ToggleHidden flips dotfile visibility and rescans.
func (s *State) ToggleHidden() {
	s.ShowHidden = !s.ShowHidden
	s.Refresh()
}

// SelectedEntry returns the highlighted entry, or nil when the listing
// is empty.
func (s *State) SelectedEntry() *Entry {
	if len(s.Entries) == 0 {
		return nil
	}
	return &s.Entries[s.Selection.Index()]
}
