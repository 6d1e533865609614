package pattern

import "math/big"

// TimeSpan is a half-open interval of exact rational time, [Begin, End).
// All pattern arithmetic in this package is done over *big.Rat; the core
// never touches float64 for time, matching spec.md's "no floating-point
// time arithmetic in the core".
type TimeSpan struct {
	Begin *big.Rat
	End   *big.Rat
}

func NewSpan(begin, end *big.Rat) TimeSpan {
	return TimeSpan{Begin: begin, End: end}
}

// Cycle returns the whole-cycle span [0,1).
func Cycle() TimeSpan {
	return TimeSpan{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)}
}

func ratMax(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func ratMin(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// sect intersects two spans, returning ok=false when they don't overlap.
// A zero-width span is kept only when it coincides exactly with the other
// span's corresponding edge, matching Tidal's sect semantics for onset
// queries.
func sect(a, b TimeSpan) (TimeSpan, bool) {
	begin := ratMax(a.Begin, b.Begin)
	end := ratMin(a.End, b.End)
	if begin.Cmp(end) > 0 {
		return TimeSpan{}, false
	}
	if begin.Cmp(end) == 0 {
		if begin.Cmp(a.End) == 0 && a.Begin.Cmp(a.End) != 0 {
			return TimeSpan{}, false
		}
		if begin.Cmp(b.End) == 0 && b.Begin.Cmp(b.End) != 0 {
			return TimeSpan{}, false
		}
	}
	return TimeSpan{Begin: begin, End: end}, true
}

// sam is the start-of-cycle (floor) of t.
func sam(t *big.Rat) *big.Rat {
	num := new(big.Int).Set(t.Num())
	den := t.Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m) // Euclidean division, m in [0,den)
	return new(big.Rat).SetInt(q)
}

// nextSam is the start of the following cycle.
func nextSam(t *big.Rat) *big.Rat {
	return new(big.Rat).Add(sam(t), big.NewRat(1, 1))
}

// cyclePos is the position within the cycle, t - sam(t), in [0,1).
func cyclePos(t *big.Rat) *big.Rat {
	return new(big.Rat).Sub(t, sam(t))
}

// spanCycles splits a span at every integer (cycle) boundary it crosses.
func spanCycles(s TimeSpan) []TimeSpan {
	if s.Begin.Cmp(s.End) >= 0 {
		if s.Begin.Cmp(s.End) == 0 {
			return []TimeSpan{s}
		}
		return nil
	}
	var out []TimeSpan
	b := s.Begin
	for b.Cmp(s.End) < 0 {
		e := ratMin(nextSam(b), s.End)
		out = append(out, TimeSpan{Begin: b, End: e})
		b = e
	}
	return out
}
