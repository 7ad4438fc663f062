package attacks

import "testing"

func TestDistanceCorners(t *testing.T) {
	a1 := NewSquare(0, 0)
	h8 := NewSquare(7, 7)
	if d := Distance(a1, h8); d != 7 {
		t.Fatalf("Distance(a1, h8) = %d, want 7", d)
	}
	if d := Distance(h8, a1); d != 7 {
		t.Fatalf("Distance(h8, a1) = %d, want 7", d)
	}
}

func TestDistanceReflexive(t *testing.T) {
	for s := Square(0); s < 64; s++ {
		if d := Distance(s, s); d != 0 {
			t.Fatalf("Distance(%s, %s) = %d, want 0", SquareName(s), SquareName(s), d)
		}
	}
}

func TestDistanceMatchesFormula(t *testing.T) {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	for s1 := Square(0); s1 < 64; s1++ {
		for s2 := Square(0); s2 < 64; s2++ {
			fd := abs(FileOf(s1) - FileOf(s2))
			rd := abs(RankOf(s1) - RankOf(s2))
			want := fd
			if rd > fd {
				want = rd
			}
			if got := Distance(s1, s2); got != want {
				t.Fatalf("Distance(%s, %s) = %d, want %d", SquareName(s1), SquareName(s2), got, want)
			}
		}
	}
}

func TestSafeDestinationRejectsWraparound(t *testing.T) {
	h4 := NewSquare(7, 3)
	if bb := safeDestination(h4, east); bb != 0 {
		t.Fatalf("east step from h4 should leave the board, got %s", SquareName(Lsb(bb)))
	}
	a4 := NewSquare(0, 3)
	if bb := safeDestination(a4, west); bb != 0 {
		t.Fatalf("west step from a4 should leave the board, got %s", SquareName(Lsb(bb)))
	}
	// Knight step wrapping from the g-file: g1 + 6 would be a2 numerically.
	g1 := NewSquare(6, 0)
	if bb := safeDestination(g1, -10); bb != 0 {
		t.Fatalf("knight step -10 from g1 should be rejected, got %s", SquareName(Lsb(bb)))
	}
	e4 := NewSquare(4, 3)
	if bb := safeDestination(e4, northEast); bb != SquareBB(NewSquare(5, 4)) {
		t.Fatalf("northEast from e4 should reach f5")
	}
}

func TestSquareNameRoundTrip(t *testing.T) {
	for s := Square(0); s < 64; s++ {
		got, err := ParseSquare(SquareName(s))
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", SquareName(s), err)
		}
		if got != s {
			t.Fatalf("round trip of %s gave %s", SquareName(s), SquareName(got))
		}
	}
	for _, bad := range []string{"", "e", "e9", "i4", "44", "e4 "} {
		if _, err := ParseSquare(bad); err == nil {
			t.Fatalf("ParseSquare(%q) should fail", bad)
		}
	}
}
