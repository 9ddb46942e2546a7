package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ts(day, hour, min int) time.Time {
	return time.Date(2026, 6, day, hour, min, 0, 0, time.UTC)
}

func TestComputeWindows(t *testing.T) {
	rangeStart := ts(1, 0, 0)
	rangeEnd := ts(30, 0, 0)

	tests := []struct {
		name   string
		blocks []Block
		start  time.Time
		end    time.Time
		want   []AvailabilityWindow
	}{
		{
			name:   "no blocks, full range available",
			blocks: nil,
			start:  rangeStart,
			end:    rangeEnd,
			want: []AvailabilityWindow{
				{Start: rangeStart, End: rangeEnd, DurationHours: 29 * 24},
			},
		},
		{
			name: "one block in the middle",
			blocks: []Block{
				{Start: ts(10, 12, 0), End: ts(10, 16, 0)},
			},
			start: rangeStart,
			end:   rangeEnd,
			want: []AvailabilityWindow{
				{Start: rangeStart, End: ts(10, 12, 0), DurationHours: ts(10, 12, 0).Sub(rangeStart).Hours()},
				{Start: ts(10, 16, 0), End: rangeEnd, DurationHours: rangeEnd.Sub(ts(10, 16, 0)).Hours()},
			},
		},
		{
			name: "overlapping blocks merge into one busy span",
			blocks: []Block{
				{Start: ts(10, 12, 0), End: ts(10, 16, 0)},
				{Start: ts(10, 14, 0), End: ts(10, 18, 0)},
			},
			start: rangeStart,
			end:   rangeEnd,
			want: []AvailabilityWindow{
				{Start: rangeStart, End: ts(10, 12, 0), DurationHours: ts(10, 12, 0).Sub(rangeStart).Hours()},
				{Start: ts(10, 18, 0), End: rangeEnd, DurationHours: rangeEnd.Sub(ts(10, 18, 0)).Hours()},
			},
		},
		{
			name: "unsorted input is sorted before the sweep",
			blocks: []Block{
				{Start: ts(20, 8, 0), End: ts(20, 12, 0)},
				{Start: ts(5, 8, 0), End: ts(5, 12, 0)},
			},
			start: rangeStart,
			end:   rangeEnd,
			want: []AvailabilityWindow{
				{Start: rangeStart, End: ts(5, 8, 0), DurationHours: ts(5, 8, 0).Sub(rangeStart).Hours()},
				{Start: ts(5, 12, 0), End: ts(20, 8, 0), DurationHours: ts(20, 8, 0).Sub(ts(5, 12, 0)).Hours()},
				{Start: ts(20, 12, 0), End: rangeEnd, DurationHours: rangeEnd.Sub(ts(20, 12, 0)).Hours()},
			},
		},
		{
			name: "sub-hour gap is suppressed",
			blocks: []Block{
				{Start: ts(10, 8, 0), End: ts(10, 12, 0)},
				{Start: ts(10, 12, 30), End: ts(10, 16, 0)},
			},
			start: ts(10, 8, 0),
			end:   ts(10, 20, 0),
			want: []AvailabilityWindow{
				{Start: ts(10, 16, 0), End: ts(10, 20, 0), DurationHours: 4},
			},
		},
		{
			name: "exactly one hour gap is kept",
			blocks: []Block{
				{Start: ts(10, 8, 0), End: ts(10, 12, 0)},
				{Start: ts(10, 13, 0), End: ts(10, 20, 0)},
			},
			start: ts(10, 8, 0),
			end:   ts(10, 20, 0),
			want: []AvailabilityWindow{
				{Start: ts(10, 12, 0), End: ts(10, 13, 0), DurationHours: 1},
			},
		},
		{
			name: "block covers the whole range",
			blocks: []Block{
				{Start: ts(1, 0, 0), End: ts(30, 0, 0)},
			},
			start: rangeStart,
			end:   rangeEnd,
			want:  []AvailabilityWindow{},
		},
		{
			name: "block extends past both range edges",
			blocks: []Block{
				{Start: ts(1, 0, 0).Add(-24 * time.Hour), End: ts(30, 12, 0)},
			},
			start: rangeStart,
			end:   rangeEnd,
			want:  []AvailabilityWindow{},
		},
		{
			name: "block entirely outside the range is ignored",
			blocks: []Block{
				{Start: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), End: time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)},
			},
			start: rangeStart,
			end:   rangeEnd,
			want: []AvailabilityWindow{
				{Start: rangeStart, End: rangeEnd, DurationHours: 29 * 24},
			},
		},
		{
			name:   "range shorter than the minimum window",
			blocks: nil,
			start:  ts(1, 0, 0),
			end:    ts(1, 0, 30),
			want:   []AvailabilityWindow{},
		},
		{
			name:   "empty range",
			blocks: nil,
			start:  rangeStart,
			end:    rangeStart,
			want:   []AvailabilityWindow{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWindows(tt.blocks, tt.start, tt.end, MinWindow)
			require.Equal(t, tt.want, got)
		})
	}
}

// Windows must be disjoint, sorted, and never intersect an input block.
func TestComputeWindowsNeverOverlapsBlocks(t *testing.T) {
	blocks := []Block{
		{Start: ts(3, 10, 0), End: ts(3, 14, 0)},
		{Start: ts(3, 12, 0), End: ts(3, 18, 0)},
		{Start: ts(7, 0, 0), End: ts(8, 0, 0)},
		{Start: ts(12, 23, 0), End: ts(13, 1, 0)},
	}
	rangeStart, rangeEnd := ts(1, 0, 0), ts(20, 0, 0)

	windows := ComputeWindows(blocks, rangeStart, rangeEnd, MinWindow)
	require.NotEmpty(t, windows)

	for i, w := range windows {
		require.True(t, w.Start.Before(w.End), "window %d is inverted", i)
		require.False(t, w.Start.Before(rangeStart), "window %d starts before the range", i)
		require.False(t, w.End.After(rangeEnd), "window %d ends after the range", i)
		if i > 0 {
			require.False(t, w.Start.Before(windows[i-1].End), "windows %d and %d overlap", i-1, i)
		}
		for _, b := range blocks {
			overlap := w.Start.Before(b.End) && w.End.After(b.Start)
			require.False(t, overlap, "window %d intersects block [%v, %v]", i, b.Start, b.End)
		}
	}
}

// The windows plus the clamped blocks must partition the range, modulo
// suppressed sub-hour slivers.
func TestComputeWindowsComplementarity(t *testing.T) {
	blocks := []Block{
		{Start: ts(2, 6, 0), End: ts(2, 10, 0)},
		{Start: ts(5, 0, 0), End: ts(6, 0, 0)},
		{Start: ts(5, 12, 0), End: ts(7, 12, 0)},
	}
	rangeStart, rangeEnd := ts(1, 0, 0), ts(10, 0, 0)

	windows := ComputeWindows(blocks, rangeStart, rangeEnd, MinWindow)

	var free time.Duration
	for _, w := range windows {
		free += w.End.Sub(w.Start)
	}

	// Busy time is the union of clamped blocks; these blocks only overlap
	// in the 5:00-7:12 pair.
	busy := 4*time.Hour + (2*24*time.Hour + 12*time.Hour)
	require.Equal(t, rangeEnd.Sub(rangeStart), free+busy)
}
