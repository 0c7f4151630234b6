package cloth

import "gonum.org/v1/gonum/spatial/r2"

// Step advances one frame: gravity, integration and clamping for every
// particle, then RelaxationPasses sweeps over constraints in creation order.
func Step(particles []Particle, constraints []Constraint, dt, width, height, gravity float64) {
	g := r2.Vec{Y: gravity}
	for i := range particles {
		p := &particles[i]
		p.ApplyForce(g)
		p.Integrate(dt)
		p.ClampToBounds(width, height)
	}

	for pass := 0; pass < RelaxationPasses; pass++ {
		for i := range constraints {
			constraints[i].Satisfy(particles)
		}
	}
}
