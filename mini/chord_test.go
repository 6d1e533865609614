package mini

import "testing"

func identity(v int) int { return v }

func TestExpandChordAppliesRootOffset(t *testing.T) {
	got := expandChord(2, "maj", nil, identity)
	want := []int{2, 6, 9}
	if len(got) != len(want) {
		t.Fatalf("expandChord = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestExpandChordUnknownNameDefaultsToRoot(t *testing.T) {
	got := expandChord(5, "nonsense", nil, identity)
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("unknown chord name should default to [root], got %v", got)
	}
}

func TestInvertModifierRotatesLowestUp(t *testing.T) {
	got := invertModifier([]int{0, 4, 7})
	want := []int{4, 7, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("invert = %v, want %v", got, want)
		}
	}
}

func TestDropModifierLowersVoice(t *testing.T) {
	got := dropModifier([]int{0, 4, 7, 11}, 2)
	if len(got) != 3 {
		t.Fatalf("drop 2 of a 4-note chord should yield 3 notes, got %v", got)
	}
	if got[2] != -5 {
		t.Fatalf("dropped voice should be lowered by an octave, got %v", got)
	}
}

func TestOpenModifierIdentityOnTriadOrSmaller(t *testing.T) {
	got := openModifier([]int{0, 4})
	if len(got) != 2 || got[0] != 0 || got[1] != 4 {
		t.Fatalf("open on 2 notes should be identity, got %v", got)
	}
}

func TestRangeModifierCapsLength(t *testing.T) {
	got := rangeModifier([]int{0, 4, 7}, 5)
	if len(got) != 5 {
		t.Fatalf("range(5) should produce exactly 5 notes, got %d", len(got))
	}
	want := []int{0, 4, 7, 12, 16}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d want %d", i, got[i], want[i])
		}
	}
}
