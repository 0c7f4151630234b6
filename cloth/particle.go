package cloth

import "gonum.org/v1/gonum/spatial/r2"

// Particle is a Verlet point mass. Velocity is implied by
// Position - PreviousPosition, so edits to Position made by the solver carry
// into the next frame.
type Particle struct {
	Position         r2.Vec
	PreviousPosition r2.Vec
	Acceleration     r2.Vec
	Pinned           bool
}

func NewParticle(x, y float64, pinned bool) Particle {
	pos := r2.Vec{X: x, Y: y}
	return Particle{Position: pos, PreviousPosition: pos, Pinned: pinned}
}

func (p *Particle) ApplyForce(f r2.Vec) {
	if p.Pinned {
		return
	}
	p.Acceleration = r2.Add(p.Acceleration, f)
}

func (p *Particle) Integrate(dt float64) {
	if p.Pinned {
		return
	}
	velocity := r2.Sub(p.Position, p.PreviousPosition)
	p.PreviousPosition = p.Position
	p.Position = r2.Add(p.Position, r2.Add(velocity, r2.Scale(dt*dt, p.Acceleration)))
	p.Acceleration = r2.Vec{}
}

// ClampToBounds keeps the particle inside [0,width]x[0,height]. It applies to
// pinned particles as well.
func (p *Particle) ClampToBounds(width, height float64) {
	if p.Position.X < 0 {
		p.Position.X = 0
	}
	if p.Position.X > width {
		p.Position.X = width
	}
	if p.Position.Y < 0 {
		p.Position.Y = 0
	}
	if p.Position.Y > height {
		p.Position.Y = height
	}
}
