package browse

// Selection tracks the highlighted index into a list whose length can
// shrink, grow or reset between refreshes. Both mutators are total: no
// combination of inputs reads out of bounds, and movement saturates at
// the ends rather than wrapping.
type Selection struct {
	index int
}

// Index returns the current position. It is only meaningful while the
// tracked list is non-empty.
func (s *Selection) Index() int { return s.index }

// Reset moves the selection back to the top.
func (s *Selection) Reset() { s.index = 0 }

// Clamp forces the index into [0, length-1], or to 0 when the list is
// empty. An index already in range is left alone.
func (s *Selection) Clamp(length int) {
	if length <= 0 {
		s.index = 0
		return
	}
	if s.index >= length {
		s.index = length - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}

// MoveBy shifts the index by delta, saturating at both ends. Deltas far
// outside the list land on the nearest end, which is how jump-to-top
// and jump-to-bottom are expressed.
func (s *Selection) MoveBy(delta, length int) {
	if length <= 0 {
		return
	}
	next := s.index + delta
	if delta > 0 && next < s.index {
		// Addition overflowed.
		next = length - 1
	}
	if next < 0 {
		next = 0
	}
	if next > length-1 {
		next = length - 1
	}
	s.index = next
}
