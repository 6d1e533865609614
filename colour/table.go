// Package colour supplies the named-colour resolution spec.md treats as a
// fixed external collaborator. It is backed by github.com/lucasb-eyer/go-colorful
// (promoted here from the teacher's indirect dependency graph — see
// DESIGN.md) rather than a hand-rolled RGB struct, so that colour-valued
// patterns carry a real, interpolation-capable colour type.
package colour

import "github.com/lucasb-eyer/go-colorful"

// table is a small, closed set of named colours. Unlike chord and vocable
// names, which are open vocabularies the compiler accepts unconditionally,
// colour names are resolved at parse time against this fixed table; an
// unrecognised name is a parse error (see mini.ColourLeaf).
var table = map[string]string{
	"red":     "#FF0000",
	"green":   "#00FF00",
	"blue":    "#0000FF",
	"white":   "#FFFFFF",
	"black":   "#000000",
	"yellow":  "#FFFF00",
	"cyan":    "#00FFFF",
	"magenta": "#FF00FF",
	"orange":  "#FFA500",
	"purple":  "#800080",
	"pink":    "#FFC0CB",
	"grey":    "#808080",
	"gray":    "#808080",
	"brown":   "#A52A2A",
}

// Lookup resolves a colour name to a concrete colorful.Color.
func Lookup(name string) (colorful.Color, bool) {
	hex, ok := table[name]
	if !ok {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Names lists every resolvable colour name, in no fixed order, primarily for
// error messages ("expecting red or green or ...").
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	return names
}
