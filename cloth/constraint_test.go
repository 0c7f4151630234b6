package cloth

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func length(ps []Particle, c Constraint) float64 {
	return r2.Norm(r2.Sub(ps[c.B].Position, ps[c.A].Position))
}

func TestNewConstraintRestLength(t *testing.T) {
	ps := []Particle{NewParticle(0, 0, false), NewParticle(3, 4, false)}
	c := NewConstraint(ps, 0, 1)
	if c.RestLength != 5 || !c.Active {
		t.Fatalf("constraint = %+v, want rest 5 and active", c)
	}
}

func TestSatisfyReducesError(t *testing.T) {
	ps := []Particle{NewParticle(0, 0, false), NewParticle(15, 2, false)}
	c := Constraint{A: 0, B: 1, RestLength: 10, Active: true}

	before := math.Abs(length(ps, c) - c.RestLength)
	c.Satisfy(ps)
	after := math.Abs(length(ps, c) - c.RestLength)

	if after >= before {
		t.Fatalf("error did not shrink: before=%f after=%f", before, after)
	}
}

func TestSatisfyCompressedConstraintPushesApart(t *testing.T) {
	ps := []Particle{NewParticle(0, 0, false), NewParticle(4, 0, false)}
	c := Constraint{A: 0, B: 1, RestLength: 10, Active: true}

	c.Satisfy(ps)

	if ps[0].Position.X >= 0 || ps[1].Position.X <= 4 {
		t.Fatalf("expected endpoints to separate, got %v and %v", ps[0].Position, ps[1].Position)
	}
}

func TestSatisfyPinnedEndpointStays(t *testing.T) {
	ps := []Particle{NewParticle(0, 0, true), NewParticle(20, 0, false)}
	c := Constraint{A: 0, B: 1, RestLength: 10, Active: true}

	c.Satisfy(ps)

	if ps[0].Position != (r2.Vec{}) {
		t.Fatalf("pinned endpoint moved to %v", ps[0].Position)
	}
	if ps[1].Position != (r2.Vec{X: 15, Y: 0}) {
		t.Fatalf("free endpoint = %v, want {15 0}", ps[1].Position)
	}
}

func TestSatisfyBothPinnedIsNoop(t *testing.T) {
	ps := []Particle{NewParticle(0, 0, true), NewParticle(20, 0, true)}
	c := Constraint{A: 0, B: 1, RestLength: 10, Active: true}
	c.Satisfy(ps)
	if ps[0].Position != (r2.Vec{}) || ps[1].Position != (r2.Vec{X: 20}) {
		t.Fatalf("pinned endpoints moved: %v %v", ps[0].Position, ps[1].Position)
	}
}

func TestSatisfyInactiveIsNoop(t *testing.T) {
	ps := []Particle{NewParticle(0, 0, false), NewParticle(25, 3, false)}
	ps[1].PreviousPosition = r2.Vec{X: 24, Y: 2}
	c := Constraint{A: 0, B: 1, RestLength: 10, Active: false}
	before := []Particle{ps[0], ps[1]}
	cBefore := c

	c.Satisfy(ps)

	if ps[0] != before[0] || ps[1] != before[1] || c != cBefore {
		t.Fatalf("inactive constraint changed state")
	}
}

func TestSatisfyZeroLengthIsNoop(t *testing.T) {
	ps := []Particle{NewParticle(7, 7, false), NewParticle(7, 7, false)}
	c := Constraint{A: 0, B: 1, RestLength: 10, Active: true}

	c.Satisfy(ps)

	for i, p := range ps {
		if p.Position != (r2.Vec{X: 7, Y: 7}) || math.IsNaN(p.Position.X) {
			t.Fatalf("particle %d moved on zero-length constraint: %v", i, p.Position)
		}
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	c := Constraint{A: 0, B: 1, RestLength: 1, Active: true}
	c.Deactivate()
	c.Deactivate()
	if c.Active {
		t.Fatalf("expected constraint to stay inactive")
	}
}
