package chord

import "testing"

func TestLookupKnownChord(t *testing.T) {
	got := Lookup("maj7")
	want := []int{0, 4, 7, 11}
	if len(got) != len(want) {
		t.Fatalf("Lookup(maj7) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lookup(maj7)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLookupUnknownDefaultsToRoot(t *testing.T) {
	got := Lookup("not-a-chord")
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("Lookup of unknown name = %v, want [0]", got)
	}
}

func TestAliasesAgree(t *testing.T) {
	aliases := [][2]string{{"maj", "major"}, {"min", "minor"}, {"m7", "min7"}}
	for _, pair := range aliases {
		a, b := Lookup(pair[0]), Lookup(pair[1])
		if len(a) != len(b) {
			t.Fatalf("%s and %s disagree: %v vs %v", pair[0], pair[1], a, b)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s[%d]=%d != %s[%d]=%d", pair[0], i, a[i], pair[1], i, b[i])
			}
		}
	}
}
