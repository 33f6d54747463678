package core

import "testing"

func TestCoordKeyRoundTrip(t *testing.T) {
	tests := []struct {
		coord Coord
		key   string
	}{
		{C(0, 0), "0,0"},
		{C(12, -7), "12,-7"},
		{C(-3, 41), "-3,41"},
		{C(-1, -1), "-1,-1"},
	}

	for _, tt := range tests {
		if got := tt.coord.Key(); got != tt.key {
			t.Errorf("Key(%v) = %q, want %q", tt.coord, got, tt.key)
		}
		parsed, err := ParseKey(tt.key)
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", tt.key, err)
		}
		if parsed != tt.coord {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.key, parsed, tt.coord)
		}
	}
}

func TestCoordKeyNoCollisions(t *testing.T) {
	// Signed coordinates must never share a key (e.g. (1,-2) vs (-1,2)).
	seen := make(map[string]Coord)
	for i := -5; i <= 5; i++ {
		for j := -5; j <= 5; j++ {
			key := C(i, j).Key()
			if prev, ok := seen[key]; ok {
				t.Fatalf("key collision: %v and %v both map to %q", prev, C(i, j), key)
			}
			seen[key] = C(i, j)
		}
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, key := range []string{"", "12", "a,b", "1,", ",2", "1,2,3"} {
		if _, err := ParseKey(key); err == nil {
			t.Errorf("ParseKey(%q) succeeded, want error", key)
		}
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{C(0, 0), C(0, 0), 0},
		{C(0, 0), C(1, 1), 1},
		{C(0, 0), C(2, -1), 2},
		{C(-3, 4), C(1, 4), 4},
		{C(5, 5), C(2, 9), 4},
	}

	for _, tt := range tests {
		if got := tt.a.Chebyshev(tt.b); got != tt.want {
			t.Errorf("Chebyshev(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Chebyshev(tt.a); got != tt.want {
			t.Errorf("Chebyshev(%v, %v) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestPointCell(t *testing.T) {
	tests := []struct {
		p    Point
		want Coord
	}{
		{Point{0, 0}, C(0, 0)},
		{Point{0.4, 0.4}, C(0, 0)},
		{Point{0.6, -0.6}, C(1, -1)},
		{Point{-2.5, 2.5}, C(-3, 3)}, // math.Round halves away from zero
	}

	for _, tt := range tests {
		if got := tt.p.Cell(); got != tt.want {
			t.Errorf("Cell(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRegionBoundsNormalized(t *testing.T) {
	nwse := Region{A: Point{-2, -3}, B: Point{4, 5}}
	senw := Region{A: Point{4, 5}, B: Point{-2, -3}}

	minI1, maxI1, minJ1, maxJ1 := nwse.Bounds()
	minI2, maxI2, minJ2, maxJ2 := senw.Bounds()

	if minI1 != minI2 || maxI1 != maxI2 || minJ1 != minJ2 || maxJ1 != maxJ2 {
		t.Errorf("corner order changed bounds: (%d..%d, %d..%d) vs (%d..%d, %d..%d)",
			minI1, maxI1, minJ1, maxJ1, minI2, maxI2, minJ2, maxJ2)
	}
	if minI1 != -2 || maxI1 != 4 || minJ1 != -3 || maxJ1 != 5 {
		t.Errorf("unexpected bounds (%d..%d, %d..%d)", minI1, maxI1, minJ1, maxJ1)
	}
}

func TestRegionBoundsZeroArea(t *testing.T) {
	r := Region{A: Point{1.2, 1.2}, B: Point{1.2, 1.2}}
	minI, maxI, minJ, maxJ := r.Bounds()
	if minI != 1 || maxI != 1 || minJ != 1 || maxJ != 1 {
		t.Errorf("zero-area bounds = (%d..%d, %d..%d), want single cell (1,1)", minI, maxI, minJ, maxJ)
	}
}

func TestRegionAround(t *testing.T) {
	r := RegionAround(Point{0, 0}, 4, 6)
	minI, maxI, minJ, maxJ := r.Bounds()
	if maxI-minI+1 < 4 || maxJ-minJ+1 < 6 {
		t.Errorf("region around origin too small: rows %d cols %d", maxI-minI+1, maxJ-minJ+1)
	}
}

func TestIntentDelta(t *testing.T) {
	tests := []struct {
		in         Intent
		dLat, dLng float64
	}{
		{IntentMoveNorth, -1, 0},
		{IntentMoveSouth, 1, 0},
		{IntentMoveWest, 0, -1},
		{IntentMoveEast, 0, 1},
		{IntentToggleView, 0, 0},
		{IntentNone, 0, 0},
	}

	for _, tt := range tests {
		dLat, dLng := tt.in.Delta(1)
		if dLat != tt.dLat || dLng != tt.dLng {
			t.Errorf("%v.Delta(1) = (%v, %v), want (%v, %v)", tt.in, dLat, dLng, tt.dLat, tt.dLng)
		}
	}
}
