package schedule

import "time"

// BufferPolicy supplies the buffer hours applied when an interval does not
// carry its own. Different resource types can be wired with different
// policies; the stock default is two hours each side.
type BufferPolicy struct {
	DefaultBeforeHours float64
	DefaultAfterHours  float64
}

// DefaultBufferPolicy returns the standard 2-hour setup/teardown padding.
func DefaultBufferPolicy() BufferPolicy {
	return BufferPolicy{DefaultBeforeHours: 2, DefaultAfterHours: 2}
}

// Block is the buffer-expanded occupied span derived from a BookingInterval.
// Both bounds are inclusive.
type Block struct {
	Start time.Time
	End   time.Time
}

// Expand materializes the occupied block for an interval:
// [nominal - before, nominal + after]. Missing buffers fall back to the
// policy defaults, so a zero-value interval still yields a sane block.
func (p BufferPolicy) Expand(iv *BookingInterval) Block {
	before := p.DefaultBeforeHours
	if iv.BufferBeforeHours != nil {
		before = *iv.BufferBeforeHours
	}
	after := p.DefaultAfterHours
	if iv.BufferAfterHours != nil {
		after = *iv.BufferAfterHours
	}
	return Block{
		Start: iv.NominalTime.Add(-hoursToDuration(before)),
		End:   iv.NominalTime.Add(hoursToDuration(after)),
	}
}

// Overlaps reports whether two closed intervals intersect. A zero-width
// block (both buffers zero) overlaps another block iff its instant lies
// within the other's inclusive bounds.
func (b Block) Overlaps(other Block) bool {
	return !b.Start.After(other.End) && !b.End.Before(other.Start)
}

// Intersection returns the overlapping span of two blocks. Only meaningful
// when Overlaps is true.
func (b Block) Intersection(other Block) Block {
	out := b
	if other.Start.After(out.Start) {
		out.Start = other.Start
	}
	if other.End.Before(out.End) {
		out.End = other.End
	}
	return out
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
