package schedule

import (
	"sort"
	"time"
)

// MinWindow is the default shortest availability window worth reporting.
// Gaps below this are slack between deliveries, not bookable time.
const MinWindow = time.Hour

// ComputeWindows derives the free windows of a resource inside
// [rangeStart, rangeEnd] given its occupied blocks.
//
// Sweep: sort blocks by start, walk them with a cursor beginning at
// rangeStart, and emit the gap before each block plus the tail after the
// last one. Windows shorter than minWindow are suppressed. Blocks may
// overlap each other or extend past the range; the cursor only ever moves
// forward, so the output windows are disjoint, sorted, and never intersect
// an input block.
func ComputeWindows(blocks []Block, rangeStart, rangeEnd time.Time, minWindow time.Duration) []AvailabilityWindow {
	windows := []AvailabilityWindow{}
	if !rangeStart.Before(rangeEnd) {
		return windows
	}

	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	cursor := rangeStart
	for _, b := range sorted {
		if b.End.Before(rangeStart) || b.Start.After(rangeEnd) {
			continue
		}
		if b.Start.After(cursor) {
			windows = appendWindow(windows, cursor, b.Start, minWindow)
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if cursor.Before(rangeEnd) {
		windows = appendWindow(windows, cursor, rangeEnd, minWindow)
	}

	return windows
}

func appendWindow(windows []AvailabilityWindow, start, end time.Time, minWindow time.Duration) []AvailabilityWindow {
	d := end.Sub(start)
	if d < minWindow {
		return windows
	}
	return append(windows, AvailabilityWindow{
		Start:         start,
		End:           end,
		DurationHours: d.Hours(),
	})
}
