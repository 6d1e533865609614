package pattern

import (
	"math/big"
	"testing"
)

func r(a, b int64) *big.Rat { return big.NewRat(a, b) }

func wholeCycle() TimeSpan { return NewSpan(r(0, 1), r(1, 1)) }

func TestPureOnePerCycle(t *testing.T) {
	p := Pure("bd")
	evs := p(NewSpan(r(0, 1), r(2, 1)))
	if len(evs) != 2 {
		t.Fatalf("expected 2 events across 2 cycles, got %d", len(evs))
	}
	for i, e := range evs {
		if e.Value != "bd" {
			t.Errorf("event %d: got value %v", i, e.Value)
		}
		if !e.HasOnset() {
			t.Errorf("event %d: expected onset", i)
		}
	}
	if evs[0].Part.Begin.Cmp(r(0, 1)) != 0 || evs[0].Part.End.Cmp(r(1, 1)) != 0 {
		t.Errorf("event 0 part = %v", evs[0].Part)
	}
	if evs[1].Part.Begin.Cmp(r(1, 1)) != 0 || evs[1].Part.End.Cmp(r(2, 1)) != 0 {
		t.Errorf("event 1 part = %v", evs[1].Part)
	}
}

func TestFastDoublesDensity(t *testing.T) {
	p := Fast(r(2, 1), Pure("x"))
	evs := p(wholeCycle())
	if len(evs) != 2 {
		t.Fatalf("fast 2 of pure should yield 2 events per cycle, got %d", len(evs))
	}
}

func TestFastZeroIsSilence(t *testing.T) {
	p := Fast(r(0, 1), Pure("x"))
	if evs := p(wholeCycle()); len(evs) != 0 {
		t.Fatalf("fast 0 should be silent, got %d events", len(evs))
	}
}

func TestSlowIsInverseFast(t *testing.T) {
	p := Slow(r(2, 1), Pure("x"))
	evs := p(NewSpan(r(0, 1), r(2, 1)))
	if len(evs) != 1 {
		t.Fatalf("slow 2 of pure should yield 1 event across 2 cycles, got %d", len(evs))
	}
}

func TestTimeCatDividesCycleByWeight(t *testing.T) {
	pat := TimeCat([]Weighted[string]{
		{Weight: r(1, 1), Pattern: Pure("a")},
		{Weight: r(3, 1), Pattern: Pure("b")},
	})
	evs := pat(wholeCycle())
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	byVal := map[string]Event[string]{}
	for _, e := range evs {
		byVal[e.Value] = e
	}
	a, b := byVal["a"], byVal["b"]
	if a.Part.Begin.Cmp(r(0, 1)) != 0 || a.Part.End.Cmp(r(1, 4)) != 0 {
		t.Errorf("a part = %v, want [0, 1/4)", a.Part)
	}
	if b.Part.Begin.Cmp(r(1, 4)) != 0 || b.Part.End.Cmp(r(1, 1)) != 0 {
		t.Errorf("b part = %v, want [1/4, 1)", b.Part)
	}
}

func TestStackLayersSimultaneously(t *testing.T) {
	pat := Stack([]Pattern[string]{Pure("a"), Pure("b")})
	evs := pat(wholeCycle())
	if len(evs) != 2 {
		t.Fatalf("expected 2 simultaneous events, got %d", len(evs))
	}
}

func TestRotLShiftsEarlier(t *testing.T) {
	pat := FastFromList([]string{"a", "b", "c", "d"})
	shifted := RotL(r(1, 4), pat)
	evs := shifted(wholeCycle())
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d", len(evs))
	}
	var first Event[string]
	for _, e := range evs {
		if e.Part.Begin.Sign() == 0 {
			first = e
		}
	}
	if first.Value != "b" {
		t.Errorf("rotL(1/4) value at time 0 = %v, want b", first.Value)
	}
}

func TestSegmentSamplesContinuousSignal(t *testing.T) {
	pat := Segment(4, Pure(9))
	evs := pat(wholeCycle())
	if len(evs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(evs))
	}
	for _, e := range evs {
		if e.Value != 9 {
			t.Errorf("segment value = %d, want 9", e.Value)
		}
	}
}

func TestInnerJoinClipsToOuterPart(t *testing.T) {
	inner := FastFromList([]int{1, 2})
	outer := Pure(inner)
	pat := InnerJoin[int](outer)
	evs := pat(wholeCycle())
	if len(evs) != 2 {
		t.Fatalf("expected 2 inner events, got %d", len(evs))
	}
}

func TestEnumFromToExpandsRange(t *testing.T) {
	fromTo := func(a, b int) []int {
		out := make([]int, 0, b-a+1)
		for v := a; v <= b; v++ {
			out = append(out, v)
		}
		return out
	}
	pat := EnumFromTo(Pure(1), Pure(3), fromTo)
	evs := pat(wholeCycle())
	if len(evs) != 3 {
		t.Fatalf("expected 3 events for 1 .. 3, got %d", len(evs))
	}
	want := []int{1, 2, 3}
	for i, e := range evs {
		if e.Value != want[i] {
			t.Errorf("event %d = %d, want %d", i, e.Value, want[i])
		}
	}
}

func TestCompressArcRejectsInvalidBounds(t *testing.T) {
	p := CompressArc(r(3, 4), r(1, 4), Pure("x"))
	if evs := p(wholeCycle()); len(evs) != 0 {
		t.Fatalf("compressArc with begin>end should be silent, got %d events", len(evs))
	}
}
