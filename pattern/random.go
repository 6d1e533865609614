package pattern

import (
	"math"
	"math/big"
)

// Rand is a continuous signal: every query returns exactly one event
// spanning the query window whose value is a deterministic pseudo-random
// double in [0,1), a pure function of the window's midpoint. Because it
// depends on nothing but its argument, rotL(phase, Rand()) gives
// independent, reproducible streams for distinct phases — the mechanism
// spec.md's seed-to-phase multiplier (0.0001 per seed) relies on for
// determinism (spec.md §5, §8 property 7).
func Rand() Pattern[float64] {
	return func(span TimeSpan) []Event[float64] {
		mid := new(big.Rat).Add(span.Begin, span.End)
		mid.Quo(mid, big.NewRat(2, 1))
		return []Event[float64]{{Whole: nil, Part: span, Value: timeToRand(mid)}}
	}
}

func timeToRand(t *big.Rat) float64 {
	f, _ := t.Float64()
	bits := math.Float64bits(f)
	h := splitmix64(bits)
	return float64(h>>11) / float64(uint64(1)<<53)
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)
	return x
}

// DegradeByUsing probabilistically drops events from p: an event survives
// when the random value sampled over its part is >= amt, so amt is the
// drop probability. randPat is expected to be (a rotated) Rand().
func DegradeByUsing[T any](randPat Pattern[float64], amt float64, p Pattern[T]) Pattern[T] {
	return func(span TimeSpan) []Event[T] {
		evs := p(span)
		var out []Event[T]
		for _, e := range evs {
			rv, revs := sampleOnce(randPat, e.Part)
			if revs == nil {
				continue
			}
			if rv >= amt {
				out = append(out, e)
			}
		}
		return out
	}
}

// ChooseBy turns a [0,1) signal into a pattern of patterns, picking
// xs[floor(rand*len(xs))] at each sample. Combine with Unwrap/Segment to
// flatten it back into a Pattern[T].
func ChooseBy[T any](randPat Pattern[float64], xs []Pattern[T]) Pattern[Pattern[T]] {
	n := len(xs)
	return func(span TimeSpan) []Event[Pattern[T]] {
		if n == 0 {
			return nil
		}
		revs := randPat(span)
		out := make([]Event[Pattern[T]], 0, len(revs))
		for _, re := range revs {
			idx := int(re.Value * float64(n))
			if idx >= n {
				idx = n - 1
			}
			if idx < 0 {
				idx = 0
			}
			out = append(out, Event[Pattern[T]]{Whole: re.Whole, Part: re.Part, Value: xs[idx], Context: re.Context})
		}
		return out
	}
}
