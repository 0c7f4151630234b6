package cloth

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestBuildGridCountsAndOrder(t *testing.T) {
	ps, cs, err := BuildGrid(3, 4, 10)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if len(ps) != 12 {
		t.Fatalf("particles = %d, want 12", len(ps))
	}
	if want := 3*3 + 4*2; len(cs) != want {
		t.Fatalf("constraints = %d, want %d", len(cs), want)
	}
	// right neighbour first, then down neighbour
	if cs[0].A != 0 || cs[0].B != 1 {
		t.Fatalf("first constraint = %d-%d, want 0-1", cs[0].A, cs[0].B)
	}
	if cs[1].A != 0 || cs[1].B != 4 {
		t.Fatalf("second constraint = %d-%d, want 0-4", cs[1].A, cs[1].B)
	}
	for i, c := range cs {
		if !c.Active || c.RestLength != 10 {
			t.Fatalf("constraint %d = %+v, want active with rest 10", i, c)
		}
	}
}

func TestBuildGridPinsTopRowOnly(t *testing.T) {
	ps, _, err := BuildGrid(3, 3, 5)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	for i, p := range ps {
		if want := i < 3; p.Pinned != want {
			t.Fatalf("particle %d pinned=%v, want %v", i, p.Pinned, want)
		}
		if p.Position != p.PreviousPosition {
			t.Fatalf("particle %d starts with implied velocity", i)
		}
	}
	if ps[5].Position != (r2.Vec{X: 10, Y: 5}) {
		t.Fatalf("particle (1,2) at %v, want {10 5}", ps[5].Position)
	}
}

func TestBuildGridSingleParticle(t *testing.T) {
	ps, cs, err := BuildGrid(1, 1, 10)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if len(ps) != 1 || len(cs) != 0 {
		t.Fatalf("got %d particles, %d constraints; want 1, 0", len(ps), len(cs))
	}
}

func TestBuildGridRejectsBadParams(t *testing.T) {
	cases := []struct {
		rows, cols int
		spacing    float64
	}{
		{0, 3, 10},
		{3, 0, 10},
		{-1, 3, 10},
		{3, 3, -1},
	}
	for _, tc := range cases {
		_, _, err := BuildGrid(tc.rows, tc.cols, tc.spacing)
		if !errors.Is(err, ErrInvalidGrid) {
			t.Fatalf("BuildGrid(%d, %d, %v) err = %v, want ErrInvalidGrid", tc.rows, tc.cols, tc.spacing, err)
		}
	}
}

func TestRecenterCentersLatticeWithoutVelocity(t *testing.T) {
	ps, _, err := BuildGrid(10, 10, 10)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	ps[42].PreviousPosition = r2.Vec{X: -3, Y: 8}

	origin := Recenter(ps, 100, 100, 10, 10, 10)

	if origin != (r2.Vec{X: 5, Y: 5}) {
		t.Fatalf("origin = %v, want {5 5}", origin)
	}
	if ps[0].Position != (r2.Vec{X: 5, Y: 5}) || ps[99].Position != (r2.Vec{X: 95, Y: 95}) {
		t.Fatalf("corners at %v and %v", ps[0].Position, ps[99].Position)
	}
	for i, p := range ps {
		if p.PreviousPosition != p.Position {
			t.Fatalf("particle %d has injected velocity after recenter", i)
		}
	}
}

func TestRecenterMovesPinnedParticles(t *testing.T) {
	ps, _, err := BuildGrid(2, 2, 10)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	Recenter(ps, 50, 50, 10, 2, 2)
	if ps[0].Position != (r2.Vec{X: 20, Y: 20}) {
		t.Fatalf("pinned particle at %v, want {20 20}", ps[0].Position)
	}
}
