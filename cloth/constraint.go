package cloth

import "gonum.org/v1/gonum/spatial/r2"

// Constraint links two particles by index. A torn constraint stays in its
// slice so that relaxation order and indices never shift.
type Constraint struct {
	A, B       int
	RestLength float64
	Active     bool
}

func NewConstraint(particles []Particle, a, b int) Constraint {
	return Constraint{
		A:          a,
		B:          b,
		RestLength: r2.Norm(r2.Sub(particles[b].Position, particles[a].Position)),
		Active:     true,
	}
}

// Satisfy moves both endpoints halfway toward the rest length. A pinned
// endpoint does not move.
func (c *Constraint) Satisfy(particles []Particle) {
	if !c.Active {
		return
	}
	p1 := &particles[c.A]
	p2 := &particles[c.B]

	delta := r2.Sub(p2.Position, p1.Position)
	current := r2.Norm(delta)
	if current == 0 {
		return
	}

	difference := (current - c.RestLength) / current
	correction := r2.Scale(0.5*difference, delta)

	if !p1.Pinned {
		p1.Position = r2.Add(p1.Position, correction)
	}
	if !p2.Pinned {
		p2.Position = r2.Sub(p2.Position, correction)
	}
}

func (c *Constraint) Deactivate() {
	c.Active = false
}
