package mini

import (
	"math/big"

	"github.com/cyclepattern/mini/pattern"
)

// resolveSizes implements spec.md §4.3: Elongate contributes its own ratio
// as weight, Repeat contributes N separate weight-1 copies of its child,
// anything else contributes weight 1.
func resolveSizes[T any](children []TPat[T]) []pattern.Weighted[T] {
	var out []pattern.Weighted[T]
	for _, ch := range children {
		switch n := ch.(type) {
		case *Elongate[T]:
			out = append(out, pattern.Weighted[T]{Weight: n.Ratio, Pattern: n.Inner.compile()})
		case *Repeat[T]:
			for i := 0; i < n.N; i++ {
				out = append(out, pattern.Weighted[T]{Weight: big.NewRat(1, 1), Pattern: n.Inner.compile()})
			}
		default:
			out = append(out, pattern.Weighted[T]{Weight: big.NewRat(1, 1), Pattern: ch.compile()})
		}
	}
	return out
}

func totalWeight[T any](items []pattern.Weighted[T]) *big.Rat {
	total := big.NewRat(0, 1)
	for _, it := range items {
		total = new(big.Rat).Add(total, it.Weight)
	}
	return total
}

func timeCatFrom[T any](items []pattern.Weighted[T]) pattern.Pattern[T] {
	return pattern.TimeCat(items)
}

// seqChild carries a polyrhythm branch's own weighted step list, so
// Polyrhythm.compile can read its step count without re-deriving it from
// an already-compiled Pattern (see ast.go Polyrhythm).
type seqChild[T any] struct {
	weighted []pattern.Weighted[T]
}
