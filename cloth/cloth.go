package cloth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Params configures a Cloth.
type Params struct {
	Rows      int
	Cols      int
	Spacing   float64
	Gravity   float64
	TimeStep  float64
	Tolerance float64
}

func DefaultParams() Params {
	return Params{
		Rows:      Rows,
		Cols:      Cols,
		Spacing:   RestDistance,
		Gravity:   Gravity,
		TimeStep:  TimeStep,
		Tolerance: ClickTolerance,
	}
}

func (p Params) Validate() error {
	if p.TimeStep <= 0 || math.IsNaN(p.TimeStep) || math.IsInf(p.TimeStep, 0) {
		return fmt.Errorf("%w: time step must be finite and > 0, got %v", ErrInvalidGrid, p.TimeStep)
	}
	if math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return fmt.Errorf("%w: gravity must be finite, got %v", ErrInvalidGrid, p.Gravity)
	}
	if math.IsNaN(p.Tolerance) {
		return fmt.Errorf("%w: tolerance is NaN", ErrInvalidGrid)
	}
	return nil
}

// Cloth owns the particle arena and constraint list for one simulation.
// It is not safe for concurrent use; exactly one goroutine should drive it.
// The viewport starts at ViewWidth x ViewHeight until Resize is called.
type Cloth struct {
	Params      Params
	Frame       int
	Width       float64
	Height      float64
	Particles   []Particle
	Constraints []Constraint
}

func New(params Params) (*Cloth, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	particles, constraints, err := BuildGrid(params.Rows, params.Cols, params.Spacing)
	if err != nil {
		return nil, err
	}
	return &Cloth{
		Params:      params,
		Width:       ViewWidth,
		Height:      ViewHeight,
		Particles:   particles,
		Constraints: constraints,
	}, nil
}

// Resize records the viewport and recenters the lattice in it.
func (c *Cloth) Resize(width, height float64) r2.Vec {
	c.Width = width
	c.Height = height
	return Recenter(c.Particles, width, height, c.Params.Spacing, c.Params.Rows, c.Params.Cols)
}

func (c *Cloth) Step() {
	c.Frame++
	Step(c.Particles, c.Constraints, c.Params.TimeStep, c.Width, c.Height, c.Params.Gravity)
}

// Tear deactivates the constraint nearest to point within Params.Tolerance.
func (c *Cloth) Tear(point r2.Vec) (int, bool) {
	i, ok := QueryTear(c.Particles, c.Constraints, point, c.Params.Tolerance)
	if ok {
		c.Constraints[i].Deactivate()
	}
	return i, ok
}

func (c *Cloth) ActiveConstraints() int {
	n := 0
	for i := range c.Constraints {
		if c.Constraints[i].Active {
			n++
		}
	}
	return n
}

// Endpoints returns the current positions of a constraint's two particles.
func (c *Cloth) Endpoints(i int) (r2.Vec, r2.Vec) {
	con := &c.Constraints[i]
	return c.Particles[con.A].Position, c.Particles[con.B].Position
}
