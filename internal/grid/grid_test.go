package grid

import "testing"

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected int
	}{
		{name: "same cell", a: Coord{1, 1}, b: Coord{1, 1}, expected: 0},
		{name: "orthogonal neighbor", a: Coord{0, 0}, b: Coord{0, 1}, expected: 1},
		{name: "diagonal", a: Coord{0, 0}, b: Coord{1, 1}, expected: 2},
		{name: "negative direction", a: Coord{4, 3}, b: Coord{1, 0}, expected: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := tc.a.Manhattan(tc.b); d != tc.expected {
				t.Errorf("Manhattan() = %d, expected %d", d, tc.expected)
			}
		})
	}
}

func TestNeighbors4(t *testing.T) {
	a := Coord{2, 2}
	for _, n := range a.Neighbors4() {
		if a.Manhattan(n) != 1 {
			t.Errorf("%v should be one step from %v", n, a)
		}
	}
}

func TestLessIsRowMajor(t *testing.T) {
	if !(Coord{0, 5}).Less(Coord{1, 0}) {
		t.Error("row should dominate column ordering")
	}
	if !(Coord{1, 0}).Less(Coord{1, 1}) {
		t.Error("column should break ties within a row")
	}
	if (Coord{1, 1}).Less(Coord{1, 1}) {
		t.Error("Less must be strict")
	}
}
