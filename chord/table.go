// Package chord supplies the chord-name-to-intervals table spec.md treats
// as a fixed external dictionary (the "chordTable" collaborator). It is
// intentionally a useful subset rather than the full chord vocabulary — see
// SPEC_FULL.md §1 for why a complete table is out of scope here.
package chord

// Table maps a chord name (as written after the `'` in mini-notation, e.g.
// "maj7") to a list of semitone offsets from the root.
var Table = map[string][]int{
	"major":   {0, 4, 7},
	"maj":     {0, 4, 7},
	"M":       {0, 4, 7},
	"minor":   {0, 3, 7},
	"min":     {0, 3, 7},
	"m":       {0, 3, 7},
	"aug":     {0, 4, 8},
	"plus":    {0, 4, 8},
	"dim":     {0, 3, 6},
	"dim7":    {0, 3, 6, 9},
	"major7":  {0, 4, 7, 11},
	"maj7":    {0, 4, 7, 11},
	"dom7":    {0, 4, 7, 10},
	"7":       {0, 4, 7, 10},
	"minor7":  {0, 3, 7, 10},
	"min7":    {0, 3, 7, 10},
	"m7":      {0, 3, 7, 10},
	"six":     {0, 4, 7, 9},
	"6":       {0, 4, 7, 9},
	"m6":      {0, 3, 7, 9},
	"min6":    {0, 3, 7, 9},
	"sus2":    {0, 2, 7},
	"sus4":    {0, 5, 7},
	"add9":    {0, 4, 7, 14},
	"major9":  {0, 4, 7, 11, 14},
	"maj9":    {0, 4, 7, 11, 14},
	"minor9":  {0, 3, 7, 10, 14},
	"min9":    {0, 3, 7, 10, 14},
	"m9":      {0, 3, 7, 10, 14},
	"one":     {0},
	"1":       {0},
	"five":    {0, 7},
	"5":       {0, 7},
}

// Lookup resolves a chord name, defaulting to the root-only interval [0]
// for anything unrecognised — spec.md §7: "unknown chord names default to
// [0]".
func Lookup(name string) []int {
	if ivs, ok := Table[name]; ok {
		return ivs
	}
	return []int{0}
}
