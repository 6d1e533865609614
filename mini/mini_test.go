package mini

import (
	"math/big"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cyclepattern/mini/pattern"
)

func cycle() pattern.TimeSpan {
	return pattern.NewSpan(big.NewRat(0, 1), big.NewRat(1, 1))
}

func values(evs []pattern.Event[string]) []string {
	out := make([]string, len(evs))
	for i, e := range evs {
		out[i] = e.Value
	}
	return out
}

func mustParse(t *testing.T, input string) pattern.Pattern[string] {
	t.Helper()
	pat, err := ParseBP[string](StringLeaf{}, input)
	if err != nil {
		t.Fatalf("ParseBP(%q) failed: %v", input, err)
	}
	return pat
}

func TestSimpleSequence(t *testing.T) {
	pat := mustParse(t, "bd sn hh")
	evs := pat(cycle())
	got := values(evs)
	want := []string{"bd", "sn", "hh"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestRestToken(t *testing.T) {
	pat := mustParse(t, "bd ~ sn")
	evs := pat(cycle())
	if len(evs) != 2 {
		t.Fatalf("expected 2 sounding events (rest silent), got %d", len(evs))
	}
}

func TestFastOperator(t *testing.T) {
	pat := mustParse(t, "bd*2")
	evs := pat(cycle())
	if len(evs) != 2 {
		t.Fatalf("bd*2 should yield 2 events per cycle, got %d", len(evs))
	}
}

func TestSlowOperator(t *testing.T) {
	pat := mustParse(t, "[bd sn]/2")
	evs := pat(pattern.NewSpan(big.NewRat(0, 1), big.NewRat(2, 1)))
	if len(evs) != 2 {
		t.Fatalf("[bd sn]/2 across 2 cycles should yield 2 events, got %d", len(evs))
	}
}

func TestElongateWeightsSteps(t *testing.T) {
	pat := mustParse(t, "bd@3 sn")
	evs := pat(cycle())
	var bd, sn pattern.Event[string]
	for _, e := range evs {
		if e.Value == "bd" {
			bd = e
		} else {
			sn = e
		}
	}
	if bd.Part.Begin.Cmp(big.NewRat(0, 1)) != 0 || bd.Part.End.Cmp(big.NewRat(3, 4)) != 0 {
		t.Errorf("bd@3 part = %v, want [0, 3/4)", bd.Part)
	}
	if sn.Part.Begin.Cmp(big.NewRat(3, 4)) != 0 || sn.Part.End.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("sn part = %v, want [3/4, 1)", sn.Part)
	}
}

func TestRepeatOperator(t *testing.T) {
	pat := mustParse(t, "bd!3 sn")
	evs := pat(cycle())
	if len(evs) != 4 {
		t.Fatalf("bd!3 sn should yield 4 steps, got %d", len(evs))
	}
}

func TestStackBrackets(t *testing.T) {
	pat := mustParse(t, "[bd, hh*2]")
	evs := pat(cycle())
	bdCount, hhCount := 0, 0
	for _, e := range evs {
		switch e.Value {
		case "bd":
			bdCount++
		case "hh":
			hhCount++
		}
	}
	if bdCount != 1 || hhCount != 2 {
		t.Fatalf("expected 1 bd and 2 hh, got %d bd and %d hh", bdCount, hhCount)
	}
}

func TestAlternationBrace(t *testing.T) {
	pat := mustParse(t, "<bd sn>")
	evs0 := pat(cycle())
	evs1 := pat(pattern.NewSpan(big.NewRat(1, 1), big.NewRat(2, 1)))
	if len(evs0) != 1 || len(evs1) != 1 {
		t.Fatalf("alternation should yield exactly one event per cycle")
	}
	if evs0[0].Value == evs1[0].Value {
		t.Errorf("alternation should differ between cycle 0 and cycle 1, both got %q", evs0[0].Value)
	}
}

func TestEuclidGrouping(t *testing.T) {
	pat := mustParse(t, "bd(3,8)")
	evs := pat(cycle())
	if len(evs) != 3 {
		t.Fatalf("bd(3,8) should yield 3 hits, got %d", len(evs))
	}
}

func TestDegradeIsStableWithinACycle(t *testing.T) {
	pat := mustParse(t, "[bd sn hh cp]?")
	a := pat(cycle())
	b := pat(cycle())
	if len(a) != len(b) {
		t.Fatalf("degrade should be deterministic for the same query, got %d vs %d", len(a), len(b))
	}
}

func TestFootSeparatesGroups(t *testing.T) {
	pat := mustParse(t, "bd sn . hh hh hh")
	evs := pat(cycle())
	if len(evs) != 5 {
		t.Fatalf("2 feet (2 steps + 3 steps) should yield 5 events, got %d", len(evs))
	}
	var bd pattern.Event[string]
	for _, e := range evs {
		if e.Value == "bd" {
			bd = e
		}
	}
	if bd.Part.Begin.Cmp(big.NewRat(0, 1)) != 0 || bd.Part.End.Cmp(big.NewRat(1, 4)) != 0 {
		t.Errorf("bd is the first of 2 steps within the first of 2 equal feet, part = %v, want [0, 1/4)", bd.Part)
	}
}

func TestEnumFromToExpandsIntRange(t *testing.T) {
	pat, err := ParseBP[int](IntLeaf{}, "1 .. 4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	evs := pat(cycle())
	if len(evs) != 4 {
		t.Fatalf("1 .. 4 should expand to 4 steps, got %d", len(evs))
	}
	for i, e := range evs {
		if e.Value != i+1 {
			t.Errorf("event %d = %d, want %d", i, e.Value, i+1)
		}
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	_, err := ParseBP[string](StringLeaf{}, "[bd sn")
	if err == nil {
		t.Fatal("expected a parse error for an unterminated bracket")
	}
	if err.Pos.Line == 0 {
		t.Errorf("expected a populated position, got %+v", err.Pos)
	}
	rendered := err.Render()
	if rendered == "" {
		t.Error("expected a non-empty rendered diagnostic")
	}
}

func TestColourLeafUnknownNameListsTable(t *testing.T) {
	_, err := ParseBP[colorful.Color](ColourLeaf{}, "zorple")
	if err == nil {
		t.Fatal("expected a parse error for an unknown colour name")
	}
	if len(err.Expected) == 0 {
		t.Fatal("expected the colour table's names in Expected")
	}
	found := false
	for _, name := range err.Expected {
		if name == "red" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected = %v, want it to include a known colour name", err.Expected)
	}
}

func TestDescribeBPRendersTree(t *testing.T) {
	desc, err := DescribeBP[string](StringLeaf{}, "bd sn")
	if err != nil {
		t.Fatalf("DescribeBP failed: %v", err)
	}
	if desc == "" {
		t.Error("expected a non-empty description")
	}
}

func TestChordExpansion(t *testing.T) {
	pat, err := ParseBP[float64](NoteLeaf{}, "c'maj")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	evs := pat(cycle())
	if len(evs) != 3 {
		t.Fatalf("c'maj should expand to 3 simultaneous notes, got %d", len(evs))
	}
	seen := map[float64]bool{}
	for _, e := range evs {
		seen[e.Value] = true
	}
	for _, want := range []float64{0, 4, 7} {
		if !seen[want] {
			t.Errorf("missing expected chord tone %v in %v", want, seen)
		}
	}
}
