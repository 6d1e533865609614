// Package pattern implements the small time-warping event algebra that the
// mini-notation compiler targets. spec.md treats this algebra (fast, slow,
// stack, timeCat, silence, _degradeByUsing, chooseBy, fastFromList, segment,
// rand, rotL, withEvents, innerJoin) as a fixed external library; this
// package supplies a minimal, self-contained implementation of it so the
// compiler's output is an observable, testable value rather than a call
// into a library that doesn't exist in this repository (see SPEC_FULL.md
// §1).
package pattern

import (
	"math/big"
)

// Pattern is a pure function from a query window to the events visible in
// it — the same "pattern is a function of time" framing spec.md uses.
type Pattern[T any] func(TimeSpan) []Event[T]

// Silence never produces an event.
func Silence[T any]() Pattern[T] {
	return func(TimeSpan) []Event[T] { return nil }
}

// Pure repeats a single value once per cycle.
func Pure[T any](v T) Pattern[T] {
	return splitQueries(func(span TimeSpan) []Event[T] {
		c := sam(span.Begin)
		whole := TimeSpan{Begin: c, End: nextSam(span.Begin)}
		part, ok := sect(whole, span)
		if !ok {
			return nil
		}
		return []Event[T]{{Whole: &whole, Part: part, Value: v}}
	})
}

// splitQueries wraps p so that a query crossing cycle boundaries is
// answered one cycle at a time, matching Tidal's own splitQueries helper.
func splitQueries[T any](p Pattern[T]) Pattern[T] {
	return func(span TimeSpan) []Event[T] {
		var out []Event[T]
		for _, s := range spanCycles(span) {
			out = append(out, p(s)...)
		}
		return out
	}
}

func withQueryTime[T any](f func(*big.Rat) *big.Rat, p Pattern[T]) Pattern[T] {
	return func(span TimeSpan) []Event[T] {
		return p(TimeSpan{Begin: f(span.Begin), End: f(span.End)})
	}
}

func withResultTime[T any](f func(*big.Rat) *big.Rat, p Pattern[T]) Pattern[T] {
	return func(span TimeSpan) []Event[T] {
		evs := p(span)
		out := make([]Event[T], len(evs))
		for i, e := range evs {
			ne := e
			if e.Whole != nil {
				w := TimeSpan{Begin: f(e.Whole.Begin), End: f(e.Whole.End)}
				ne.Whole = &w
			}
			ne.Part = TimeSpan{Begin: f(e.Part.Begin), End: f(e.Part.End)}
			out[i] = ne
		}
		return out
	}
}

// Fast speeds a pattern up by factor; Fast(0,...) is Silence.
func Fast[T any](factor *big.Rat, p Pattern[T]) Pattern[T] {
	if factor.Sign() == 0 {
		return Silence[T]()
	}
	mul := func(t *big.Rat) *big.Rat { return new(big.Rat).Mul(t, factor) }
	div := func(t *big.Rat) *big.Rat { return new(big.Rat).Quo(t, factor) }
	return withResultTime(div, withQueryTime(mul, p))
}

// Slow slows a pattern down by factor; Slow(0,...) is Silence.
func Slow[T any](factor *big.Rat, p Pattern[T]) Pattern[T] {
	if factor.Sign() == 0 {
		return Silence[T]()
	}
	return Fast(new(big.Rat).Inv(factor), p)
}

// RotL shifts a pattern earlier by t cycles.
func RotL[T any](t *big.Rat, p Pattern[T]) Pattern[T] {
	add := func(x *big.Rat) *big.Rat { return new(big.Rat).Add(x, t) }
	sub := func(x *big.Rat) *big.Rat { return new(big.Rat).Sub(x, t) }
	return withResultTime(sub, withQueryTime(add, p))
}

// RotR shifts a pattern later by t cycles.
func RotR[T any](t *big.Rat, p Pattern[T]) Pattern[T] {
	return RotL(new(big.Rat).Neg(t), p)
}

// fastGap squeezes p into the first 1/factor of every cycle, leaving the
// remainder of the cycle silent, re-anchoring at every cycle boundary.
func fastGap[T any](factor *big.Rat, p Pattern[T]) Pattern[T] {
	if factor.Sign() <= 0 {
		return Silence[T]()
	}
	r := factor
	one := big.NewRat(1, 1)
	if r.Cmp(one) < 0 {
		r = one
	}
	inner := func(span TimeSpan) []Event[T] {
		mungeQuery := func(t *big.Rat) *big.Rat {
			s := sam(t)
			cp := cyclePos(t)
			v := new(big.Rat).Mul(r, cp)
			v = ratMin(v, one)
			return new(big.Rat).Add(s, v)
		}
		aStart := mungeQuery(span.Begin)
		aEnd := mungeQuery(span.End)
		if aStart.Cmp(nextSam(span.Begin)) == 0 {
			return nil
		}
		evs := p(TimeSpan{Begin: aStart, End: aEnd})
		samPrime := sam(span.Begin)
		resultTime := func(t *big.Rat) *big.Rat {
			diff := new(big.Rat).Sub(t, samPrime)
			div := new(big.Rat).Quo(diff, r)
			return new(big.Rat).Add(samPrime, div)
		}
		out := make([]Event[T], len(evs))
		for i, e := range evs {
			ne := e
			if e.Whole != nil {
				w := TimeSpan{Begin: resultTime(e.Whole.Begin), End: resultTime(e.Whole.End)}
				ne.Whole = &w
			}
			ne.Part = TimeSpan{Begin: resultTime(e.Part.Begin), End: resultTime(e.Part.End)}
			out[i] = ne
		}
		return out
	}
	return splitQueries[T](inner)
}

// CompressArc fits p into the sub-span [s,e) of every cycle; s and e must
// satisfy 0<=s<e<=1, else the result is Silence.
func CompressArc[T any](s, e *big.Rat, p Pattern[T]) Pattern[T] {
	zero := big.NewRat(0, 1)
	one := big.NewRat(1, 1)
	if s.Cmp(e) > 0 || s.Cmp(zero) < 0 || e.Cmp(one) > 0 || s.Cmp(e) == 0 {
		return Silence[T]()
	}
	factor := new(big.Rat).Inv(new(big.Rat).Sub(e, s))
	return RotR(s, fastGap(factor, p))
}

// Stack layers patterns simultaneously.
func Stack[T any](pats []Pattern[T]) Pattern[T] {
	return func(span TimeSpan) []Event[T] {
		var out []Event[T]
		for _, p := range pats {
			out = append(out, p(span)...)
		}
		return out
	}
}

// Weighted pairs a pattern with its proportional share of the enclosing
// cycle, the unit TimeCat arranges.
type Weighted[T any] struct {
	Weight  *big.Rat
	Pattern Pattern[T]
}

// TimeCat lays patterns out sequentially, each occupying Weight/total of
// the cycle.
func TimeCat[T any](items []Weighted[T]) Pattern[T] {
	total := big.NewRat(0, 1)
	for _, it := range items {
		total = new(big.Rat).Add(total, it.Weight)
	}
	if total.Sign() == 0 {
		return Silence[T]()
	}
	pats := make([]Pattern[T], 0, len(items))
	acc := big.NewRat(0, 1)
	for _, it := range items {
		begin := new(big.Rat).Quo(acc, total)
		acc = new(big.Rat).Add(acc, it.Weight)
		end := new(big.Rat).Quo(acc, total)
		pats = append(pats, CompressArc(begin, end, it.Pattern))
	}
	return Stack(pats)
}

// FastFromList plays each value once per step, equally dividing the cycle.
func FastFromList[T any](vals []T) Pattern[T] {
	items := make([]Weighted[T], len(vals))
	for i, v := range vals {
		items[i] = Weighted[T]{Weight: big.NewRat(1, 1), Pattern: Pure(v)}
	}
	return TimeCat(items)
}

// WithEvents maps a function over every event a pattern produces.
func WithEvents[T, U any](p Pattern[T], f func(Event[T]) Event[U]) Pattern[U] {
	return func(span TimeSpan) []Event[U] {
		evs := p(span)
		out := make([]Event[U], len(evs))
		for i, e := range evs {
			out[i] = f(e)
		}
		return out
	}
}

// MapValues maps a pure function over every event's value, preserving
// timing and context.
func MapValues[T, U any](p Pattern[T], f func(T) U) Pattern[U] {
	return WithEvents(p, func(e Event[T]) Event[U] {
		return Event[U]{Whole: e.Whole, Part: e.Part, Value: f(e.Value), Context: e.Context}
	})
}

// InnerJoin flattens a pattern of patterns, keeping the inner pattern's own
// timing (whole) but clipping to the outer event's visible part — this is
// the "unwrap" spec.md calls for in CycleChoose and EnumFromTo.
func InnerJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	return func(span TimeSpan) []Event[T] {
		var out []Event[T]
		for _, oe := range pp(span) {
			for _, ie := range oe.Value(oe.Part) {
				part, ok := sect(ie.Part, oe.Part)
				if !ok {
					continue
				}
				ctx := append(cloneContext(oe.Context), ie.Context...)
				out = append(out, Event[T]{Whole: ie.Whole, Part: part, Value: ie.Value, Context: ctx})
			}
		}
		return out
	}
}

// Unwrap is InnerJoin under the name spec.md uses at the call sites.
func Unwrap[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	return InnerJoin(pp)
}

// sampleOnce queries p over span and returns the first event whose part
// begins at span's start (preferring an onset), falling back to the first
// event returned at all. Used by the few combinators (Segment, EnumFromTo,
// Euclid argument patterns) that need "the one value active here" rather
// than a full event stream.
func sampleOnce[T any](p Pattern[T], span TimeSpan) (T, []Event[T]) {
	evs := p(span)
	var zero T
	if len(evs) == 0 {
		return zero, nil
	}
	for _, e := range evs {
		if e.Part.Begin.Cmp(span.Begin) == 0 {
			return e.Value, evs
		}
	}
	return evs[0].Value, evs
}

// SampleOnce is the exported form, used by the mini package to resolve a
// polyrhythm's step-rate pattern to a single value.
func SampleOnce[T any](p Pattern[T], span TimeSpan) (T, []Event[T]) {
	return sampleOnce(p, span)
}

// Segment samples p into n equal-width slots per cycle, each slot's value
// being whatever p produces when queried over that whole slot.
func Segment[T any](n int, p Pattern[T]) Pattern[T] {
	if n < 1 {
		n = 1
	}
	return splitQueries(func(span TimeSpan) []Event[T] {
		c := sam(span.Begin)
		var out []Event[T]
		for i := 0; i < n; i++ {
			wBegin := new(big.Rat).Add(c, big.NewRat(int64(i), int64(n)))
			wEnd := new(big.Rat).Add(c, big.NewRat(int64(i+1), int64(n)))
			whole := TimeSpan{Begin: wBegin, End: wEnd}
			part, ok := sect(whole, span)
			if !ok {
				continue
			}
			v, evs := sampleOnce(p, whole)
			if evs == nil {
				continue
			}
			out = append(out, Event[T]{Whole: &whole, Part: part, Value: v})
		}
		return out
	})
}

// EnumFromTo is the compiled form of TPat's EnumFromTo node: each cycle,
// sample a and b once, expand to a list via fromTo, and play that list as
// equal steps across the cycle.
func EnumFromTo[T any](a, b Pattern[T], fromTo func(a, b T) []T) Pattern[T] {
	return splitQueries(func(span TimeSpan) []Event[T] {
		c := sam(span.Begin)
		cycleSpan := TimeSpan{Begin: c, End: nextSam(span.Begin)}
		av, aEvs := sampleOnce(a, cycleSpan)
		bv, bEvs := sampleOnce(b, cycleSpan)
		if aEvs == nil || bEvs == nil {
			return nil
		}
		vals := fromTo(av, bv)
		inner := FastFromList(vals)
		evs := inner(span)
		for i := range evs {
			evs[i].Context = append(cloneContext(aEvs[0].Context), bEvs[0].Context...)
		}
		return evs
	})
}
