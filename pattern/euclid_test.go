package pattern

import "testing"

func TestBjorklundKnownRhythms(t *testing.T) {
	cases := []struct {
		k, n, rot int
		want      string
	}{
		{3, 8, 0, "x..x..x."},
		{2, 5, 0, "x.x.."},
		{4, 4, 0, "xxxx"},
		{0, 4, 0, "...."},
	}
	for _, c := range cases {
		got := renderPulses(Bjorklund(c.k, c.n, c.rot))
		if got != c.want {
			t.Errorf("Bjorklund(%d,%d,%d) = %q, want %q", c.k, c.n, c.rot, got, c.want)
		}
	}
}

func renderPulses(pulses []bool) string {
	out := make([]byte, len(pulses))
	for i, on := range pulses {
		if on {
			out[i] = 'x'
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

func TestBjorklundRotation(t *testing.T) {
	base := Bjorklund(3, 8, 0)
	rotated := Bjorklund(3, 8, 1)
	want := rotate(append([]bool{}, base...), 1)
	if len(rotated) != len(want) {
		t.Fatalf("length mismatch")
	}
	for i := range want {
		if rotated[i] != want[i] {
			t.Errorf("rotated[%d] = %v, want %v", i, rotated[i], want[i])
		}
	}
}

func TestDoEuclidGatesInnerPattern(t *testing.T) {
	pat := DoEuclid(Pure(3), Pure(8), Pure(0), Pure("bd"))
	evs := pat(wholeCycle())
	count := 0
	for _, e := range evs {
		if e.Value == "bd" {
			count++
		}
	}
	if count != 3 {
		t.Fatalf("expected 3 hits for (3,8,0), got %d", count)
	}
}

func TestDoEuclidBoolEmitsHitsAndRests(t *testing.T) {
	pat := DoEuclidBool(Pure(3), Pure(8), Pure(0))
	evs := pat(wholeCycle())
	if len(evs) != 8 {
		t.Fatalf("expected 8 steps, got %d", len(evs))
	}
	hits := 0
	for _, e := range evs {
		if e.Value {
			hits++
		}
	}
	if hits != 3 {
		t.Fatalf("expected 3 true steps, got %d", hits)
	}
}
