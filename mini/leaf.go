package mini

import "github.com/cyclepattern/mini/pattern"

// ParseableLeaf is the per-type capability spec.md §9 calls for: "dispatch
// by requested leaf type is best modelled as an interface/capability".
// parseLeaf attempts to consume one leaf value of type T at the parser's
// current position; on failure it must leave the position unchanged
// (parseCore calls it without a mark/reset of its own).
type ParseableLeaf[T any] interface {
	parseLeaf(p *parser[T]) (T, bool)
}

// EnumerableLeaf supplies the fromTo behaviour EnumFromTo compiles to
// (spec.md §4.4): inclusive enumeration, descending when a>b for ordered
// numeric types, degenerating to [a,b] for types with no natural ordering.
type EnumerableLeaf[T any] interface {
	FromTo(a, b T) []T
}

// EuclidCapableLeaf lets a leaf type override how a Euclid node compiles;
// the boolean leaf emits the Bjorklund hits directly rather than gating an
// inner pattern (spec.md §4.4: "for boolean leaves use the boolean Euclid
// variant").
type EuclidCapableLeaf[T any] interface {
	CompileEuclid(n, k, rot pattern.Pattern[int], x pattern.Pattern[T]) pattern.Pattern[T]
}

// ControlLeaf resolves a named control channel (`^name`). Every leaf type
// in this repository returns Silence — spec.md treats concrete control
// channels as downstream (SPEC_FULL.md glossary).
type ControlLeaf[T any] interface {
	Control(name string) pattern.Pattern[T]
}

// Leaf bundles every capability a leaf type needs to participate in
// parsing and compilation.
type Leaf[T any] interface {
	ParseableLeaf[T]
	EnumerableLeaf[T]
	EuclidCapableLeaf[T]
	ControlLeaf[T]
}

// noControl is embedded by every leaf type that has no concrete control
// channel of its own (i.e. all of them, in this repository).
type noControl[T any] struct{}

func (noControl[T]) Control(string) pattern.Pattern[T] { return pattern.Silence[T]() }

// defaultEuclid is embedded by leaf types that use the generic
// gate-the-inner-pattern Euclid semantics.
type defaultEuclid[T any] struct{}

func (defaultEuclid[T]) CompileEuclid(n, k, rot pattern.Pattern[int], x pattern.Pattern[T]) pattern.Pattern[T] {
	return pattern.DoEuclid(n, k, rot, x)
}

// inclusiveRange gives int-valued leaf types inclusive, direction-aware
// enumeration: ascending when lo<=hi, descending otherwise.
func inclusiveRange(lo, hi int) []int {
	if lo <= hi {
		out := make([]int, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			out = append(out, v)
		}
		return out
	}
	out := make([]int, 0, lo-hi+1)
	for v := lo; v >= hi; v-- {
		out = append(out, v)
	}
	return out
}

// twoElement is the degenerate EnumerableLeaf behaviour for leaf types with
// no natural ordering (spec.md §4.4): fromTo a b = [a, b].
type twoElement[T any] struct{}

func (twoElement[T]) FromTo(a, b T) []T { return []T{a, b} }

// LeafErrorer lets a leaf type report a more specific parse failure than
// parseCore's generic "unexpected character" fallback once parseLeaf
// returns false — e.g. naming the closed vocabulary a name was checked
// against (spec.md §4.1 Colour). Optional: most leaf types have nothing
// more specific to say and are left to the generic message.
type LeafErrorer[T any] interface {
	parseError(p *parser[T]) *ParseError
}

// ChordCapableLeaf marks a leaf type as a valid chord-expression root
// (spec.md §4.1: "Double / Note ... optionally followed by chord
// expansion"). ToSemitone reduces an already-parsed root value to the
// integer semitone the chord table works in; Inject is the reverse
// injection f : semitone -> T spec.md §3's Chord variant carries.
type ChordCapableLeaf[T any] interface {
	ToSemitone(v T) int
	Inject(semitone int) T
}
