package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func hoursPtr(h float64) *float64 { return &h }

func TestBufferPolicyExpand(t *testing.T) {
	nominal := time.Date(2026, 6, 10, 14, 0, 0, 0, time.UTC)
	policy := DefaultBufferPolicy()

	tests := []struct {
		name      string
		interval  *BookingInterval
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "policy defaults apply when buffers unset",
			interval:  &BookingInterval{NominalTime: nominal},
			wantStart: nominal.Add(-2 * time.Hour),
			wantEnd:   nominal.Add(2 * time.Hour),
		},
		{
			name: "per-interval buffers override the policy",
			interval: &BookingInterval{
				NominalTime:       nominal,
				BufferBeforeHours: hoursPtr(1),
				BufferAfterHours:  hoursPtr(4),
			},
			wantStart: nominal.Add(-time.Hour),
			wantEnd:   nominal.Add(4 * time.Hour),
		},
		{
			name: "explicit zero buffers yield a zero-width block",
			interval: &BookingInterval{
				NominalTime:       nominal,
				BufferBeforeHours: hoursPtr(0),
				BufferAfterHours:  hoursPtr(0),
			},
			wantStart: nominal,
			wantEnd:   nominal,
		},
		{
			name: "fractional buffer hours",
			interval: &BookingInterval{
				NominalTime:       nominal,
				BufferBeforeHours: hoursPtr(0.5),
				BufferAfterHours:  hoursPtr(1.5),
			},
			wantStart: nominal.Add(-30 * time.Minute),
			wantEnd:   nominal.Add(90 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := policy.Expand(tt.interval)
			require.Equal(t, tt.wantStart, block.Start)
			require.Equal(t, tt.wantEnd, block.End)
		})
	}
}

func TestBlockOverlaps(t *testing.T) {
	base := Block{
		Start: time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 10, 16, 0, 0, 0, time.UTC),
	}

	at := func(hour, min int) time.Time {
		return time.Date(2026, 6, 10, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		other Block
		want  bool
	}{
		{"partial overlap", Block{Start: at(13, 0), End: at(17, 0)}, true},
		{"containment", Block{Start: at(13, 0), End: at(14, 0)}, true},
		{"touching at end is an overlap for closed intervals", Block{Start: at(16, 0), End: at(18, 0)}, true},
		{"disjoint after", Block{Start: at(16, 1), End: at(18, 0)}, false},
		{"disjoint before", Block{Start: at(9, 0), End: at(11, 59)}, false},
		{"zero-width instant inside", Block{Start: at(14, 0), End: at(14, 0)}, true},
		{"zero-width instant on the bound", Block{Start: at(16, 0), End: at(16, 0)}, true},
		{"zero-width instant outside", Block{Start: at(17, 0), End: at(17, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, base.Overlaps(tt.other))
			require.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestBlockIntersection(t *testing.T) {
	a := Block{
		Start: time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 10, 16, 0, 0, 0, time.UTC),
	}
	b := Block{
		Start: time.Date(2026, 6, 10, 13, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 10, 17, 0, 0, 0, time.UTC),
	}

	got := a.Intersection(b)
	require.Equal(t, b.Start, got.Start)
	require.Equal(t, a.End, got.End)
}
