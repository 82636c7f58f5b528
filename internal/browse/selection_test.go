package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		length int
		want   int
	}{
		{"empty_list_resets", 5, 0, 0},
		{"past_end_clamps", 5, 3, 2},
		{"in_range_unchanged", 1, 3, 1},
		{"zero_stays_zero", 0, 3, 0},
		{"negative_length_resets", 2, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{index: tt.start}
			s.Clamp(tt.length)
			assert.Equal(t, tt.want, s.Index())
		})
	}
}

func TestMoveBy(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		delta  int
		length int
		want   int
	}{
		{"down_one", 0, 1, 3, 1},
		{"up_one", 2, -1, 3, 1},
		{"saturates_low", 0, -1, 3, 0},
		{"saturates_high", 2, 1, 3, 2},
		{"big_negative_delta", 2, -1000, 3, 0},
		{"big_positive_delta", 0, 1000, 3, 2},
		{"empty_list_noop", 4, 1, 0, 4},
		{"overflow_saturates", 1, int(^uint(0) >> 1), 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{index: tt.start}
			s.MoveBy(tt.delta, tt.length)
			assert.Equal(t, tt.want, s.Index())
		})
	}
}

func TestMoveBySequenceStaysBounded(t *testing.T) {
	s := Selection{}
	const length = 7
	for _, delta := range []int{3, 3, 3, -10, 2, 100, -1, -1, 50, -200} {
		s.MoveBy(delta, length)
		assert.GreaterOrEqual(t, s.Index(), 0)
		assert.Less(t, s.Index(), length)
	}
}

func TestReset(t *testing.T) {
	s := Selection{index: 9}
	s.Reset()
	assert.Equal(t, 0, s.Index())
}
