package mini

import (
	"github.com/cyclepattern/mini/pattern"
	"github.com/cyclepattern/mini/srcpos"
)

// eventKey is the default collectBy equivalence (spec.md §4.6): equality on
// both whole and part.
type eventKey struct {
	noWhole      bool
	wb, we       string
	pb, pe       string
}

func keyOf[T any](e pattern.Event[T]) eventKey {
	k := eventKey{pb: e.Part.Begin.RatString(), pe: e.Part.End.RatString()}
	if e.Whole == nil {
		k.noWhole = true
		return k
	}
	k.wb, k.we = e.Whole.Begin.RatString(), e.Whole.End.RatString()
	return k
}

// CollectBy groups events sharing (whole, part) into a single list-valued
// event, preserving first-occurrence order within each group and
// concatenating member contexts (spec.md §4.6).
func CollectBy[T any](p pattern.Pattern[T]) pattern.Pattern[[]T] {
	return func(span pattern.TimeSpan) []pattern.Event[[]T] {
		evs := p(span)
		order := make([]eventKey, 0, len(evs))
		groups := make(map[eventKey]*pattern.Event[[]T], len(evs))
		for _, e := range evs {
			k := keyOf(e)
			g, ok := groups[k]
			if !ok {
				ng := pattern.Event[[]T]{Whole: e.Whole, Part: e.Part}
				groups[k] = &ng
				order = append(order, k)
				g = &ng
			}
			g.Value = append(g.Value, e.Value)
			g.Context = append(g.Context, e.Context...)
		}
		out := make([]pattern.Event[[]T], 0, len(order))
		for _, k := range order {
			out = append(out, *groups[k])
		}
		return out
	}
}

// Collect is CollectBy under the name spec.md §4.6 uses at the call site.
func Collect[T any](p pattern.Pattern[T]) pattern.Pattern[[]T] {
	return CollectBy(p)
}

// Uncollect is CollectBy's inverse: a list-valued event with value
// [v0..v(k-1)] and context [c0..c(m-1)] becomes k scalar events sharing
// whole/part, event i getting context [c_i] when i<m, else no context
// (spec.md §4.6 — missing context entries must not fail).
func Uncollect[T any](p pattern.Pattern[[]T]) pattern.Pattern[T] {
	return func(span pattern.TimeSpan) []pattern.Event[T] {
		var out []pattern.Event[T]
		for _, e := range p(span) {
			for i, v := range e.Value {
				var ctx []srcpos.Position
				if i < len(e.Context) {
					ctx = []srcpos.Position{e.Context[i]}
				}
				out = append(out, pattern.Event[T]{Whole: e.Whole, Part: e.Part, Value: v, Context: ctx})
			}
		}
		return out
	}
}
