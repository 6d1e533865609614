package pattern

import "github.com/cyclepattern/mini/srcpos"

// Event is a timed value sampled from a Pattern: Whole is its logical
// extent (nil for an event with no inherent duration, e.g. a continuous
// signal sample), Part is the slice of it actually visible in the query
// window, Value is the payload, Context the source locations it traces
// back to.
type Event[T any] struct {
	Whole   *TimeSpan
	Part    TimeSpan
	Value   T
	Context []srcpos.Position
}

// HasOnset reports whether this event's part begins its whole (or it has
// no whole at all, i.e. it's a continuous sample) — the usual definition
// used to decide whether an event should "trigger" at query time.
func (e Event[T]) HasOnset() bool {
	if e.Whole == nil {
		return true
	}
	return e.Whole.Begin.Cmp(e.Part.Begin) == 0
}

func cloneContext(ctx []srcpos.Position) []srcpos.Position {
	if len(ctx) == 0 {
		return nil
	}
	out := make([]srcpos.Position, len(ctx))
	copy(out, ctx)
	return out
}
