package main

import (
	"fmt"
	"math/big"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cyclepattern/mini/mini"
	"github.com/cyclepattern/mini/pattern"
)

// leafKind dispatches a runtime leaf-type name (spec.md §6 "Supported T")
// to the concrete generic instantiation it needs: Go resolves type
// parameters at compile time, so a CLI taking the leaf type as a string
// argument has to enumerate the supported instantiations explicitly.
type leafKind struct {
	describe func(input string) (string, *mini.ParseError)
	events   func(input string, cycles int) ([]string, *mini.ParseError)
}

func formatEvents[T any](pat pattern.Pattern[T], cycles int, format func(T) string) []string {
	if cycles < 1 {
		cycles = 1
	}
	span := pattern.NewSpan(big.NewRat(0, 1), big.NewRat(int64(cycles), 1))
	var out []string
	for _, e := range pat(span) {
		out = append(out, fmt.Sprintf("(%s, %s, %s)", e.Part.Begin.RatString(), e.Part.End.RatString(), format(e.Value)))
	}
	return out
}

func newLeafKind[T any](leaf mini.Leaf[T], format func(T) string) leafKind {
	return leafKind{
		describe: func(input string) (string, *mini.ParseError) {
			return mini.DescribeBP(leaf, input)
		},
		events: func(input string, cycles int) ([]string, *mini.ParseError) {
			pat, err := mini.ParseBP(leaf, input)
			if err != nil {
				return nil, err
			}
			return formatEvents(pat, cycles, format), nil
		},
	}
}

var leafKinds = map[string]leafKind{
	"string":   newLeafKind[string](mini.StringLeaf{}, func(v string) string { return fmt.Sprintf("%q", v) }),
	"char":     newLeafKind[rune](mini.CharLeaf{}, func(v rune) string { return fmt.Sprintf("%q", v) }),
	"bool":     newLeafKind[bool](mini.BoolLeaf{}, func(v bool) string { return fmt.Sprintf("%v", v) }),
	"double":   newLeafKind[float64](mini.DoubleLeaf{}, func(v float64) string { return fmt.Sprintf("%g", v) }),
	"note":     newLeafKind[float64](mini.NoteLeaf{}, func(v float64) string { return fmt.Sprintf("%g", v) }),
	"int":      newLeafKind[int](mini.IntLeaf{}, func(v int) string { return fmt.Sprintf("%d", v) }),
	"integer":  newLeafKind[*big.Int](mini.IntegerLeaf{}, func(v *big.Int) string { return v.String() }),
	"rational": newLeafKind[*big.Rat](mini.RationalLeaf{}, func(v *big.Rat) string { return v.RatString() }),
	"colour":   newLeafKind[colorful.Color](mini.ColourLeaf{}, func(v colorful.Color) string { return v.Hex() }),
}

func supportedLeafKinds() []string {
	names := make([]string, 0, len(leafKinds))
	for n := range leafKinds {
		names = append(names, n)
	}
	return names
}
