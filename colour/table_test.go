package colour

import "testing"

func TestLookupKnownColour(t *testing.T) {
	c, ok := Lookup("red")
	if !ok {
		t.Fatal("expected red to resolve")
	}
	hex := c.Hex()
	if hex != "#ff0000" {
		t.Errorf("red hex = %s, want #ff0000", hex)
	}
}

func TestLookupUnknownColourFails(t *testing.T) {
	if _, ok := Lookup("not-a-colour"); ok {
		t.Fatal("expected unknown colour name to fail")
	}
}

func TestNamesCoversTable(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected a non-empty colour table")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["red"] || !seen["blue"] {
		t.Errorf("Names() missing expected entries: %v", names)
	}
}
