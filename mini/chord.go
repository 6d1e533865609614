package mini

import (
	"github.com/cyclepattern/mini/chord"
	"github.com/cyclepattern/mini/pattern"
)

// rangeCap bounds the Range modifier's output length (SPEC_FULL.md §9,
// resolving spec.md's Open Question about an unbounded Range argument).
const rangeCap = 128

// chordToPat implements spec.md §4.5: sample root, name and modifiers under
// a joint binding, expand the chord, inject every resulting semitone back
// into T via f, and uncollect the list-valued event into scalar events.
func chordToPat[T any](root pattern.Pattern[int], name pattern.Pattern[string], mods pattern.Pattern[[]Modifier], f func(int) T) pattern.Pattern[T] {
	nested := pattern.MapValues(root, func(n int) pattern.Pattern[[]T] {
		return pattern.InnerJoin(pattern.MapValues(name, func(nm string) pattern.Pattern[[]T] {
			return pattern.MapValues(mods, func(ms []Modifier) []T {
				return expandChord(n, nm, ms, f)
			})
		}))
	})
	return Uncollect(pattern.InnerJoin(nested))
}

func expandChord[T any](rootSemitone int, name string, mods []Modifier, f func(int) T) []T {
	base := chord.Lookup(name)
	ds := make([]int, len(base))
	for i, iv := range base {
		ds[i] = iv + rootSemitone
	}
	for _, m := range mods {
		ds = applyChordModifier(ds, m)
	}
	out := make([]T, len(ds))
	for i, v := range ds {
		out[i] = f(v)
	}
	return out
}

func applyChordModifier(ds []int, m Modifier) []int {
	switch m.Kind {
	case ModRange:
		return rangeModifier(ds, m.N)
	case ModInvert:
		return invertModifier(ds)
	case ModOpen:
		return openModifier(ds)
	case ModDrop:
		return dropModifier(ds, m.N)
	default:
		return ds
	}
}

// rangeModifier takes the first n values of [d+12k | k>=0, d in ds] in lex
// order of (k, position) (spec.md §4.5).
func rangeModifier(ds []int, n int) []int {
	if len(ds) == 0 {
		return nil
	}
	if n > rangeCap {
		n = rangeCap
	}
	if n < 0 {
		n = 0
	}
	out := make([]int, 0, n)
	for k := 0; len(out) < n; k++ {
		for _, d := range ds {
			if len(out) >= n {
				break
			}
			out = append(out, d+12*k)
		}
	}
	return out
}

// invertModifier drops the first interval and appends first+12. Identity on
// an empty list.
func invertModifier(ds []int) []int {
	if len(ds) == 0 {
		return ds
	}
	out := append([]int{}, ds[1:]...)
	out = append(out, ds[0]+12)
	return out
}

// openModifier reorders [d0,d1,d2,...] as [d0-12, d2-12, d1] followed by ds
// with its last three elements dropped; identity when len(ds)<=2.
func openModifier(ds []int) []int {
	if len(ds) <= 2 {
		return ds
	}
	var rest []int
	if len(ds) > 3 {
		rest = append(rest, ds[:len(ds)-3]...)
	}
	out := []int{ds[0] - 12, ds[2] - 12, ds[1]}
	return append(out, rest...)
}

// dropModifier: when len(ds)>=n, let s=len(ds)-n; element s drops an octave
// and the element at s+1 is removed. Identity when len(ds)<n.
func dropModifier(ds []int, n int) []int {
	if len(ds) < n || n <= 0 {
		return ds
	}
	s := len(ds) - n
	out := append([]int{}, ds...)
	out[s] -= 12
	if s+1 < len(out) {
		out = append(out[:s+1], out[s+2:]...)
	}
	return out
}
