package cloth

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var ErrInvalidGrid = errors.New("invalid grid configuration")

// BuildGrid lays out rows*cols particles row-major with row 0 pinned, then
// links every particle to its right and down neighbours.
func BuildGrid(rows, cols int, spacing float64) ([]Particle, []Constraint, error) {
	if rows < 1 {
		return nil, nil, fmt.Errorf("%w: rows must be >= 1, got %d", ErrInvalidGrid, rows)
	}
	if cols < 1 {
		return nil, nil, fmt.Errorf("%w: cols must be >= 1, got %d", ErrInvalidGrid, cols)
	}
	if spacing < 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return nil, nil, fmt.Errorf("%w: spacing must be finite and >= 0, got %v", ErrInvalidGrid, spacing)
	}

	particles := make([]Particle, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			particles = append(particles, NewParticle(float64(col)*spacing, float64(row)*spacing, row == 0))
		}
	}

	constraints := make([]Constraint, 0, rows*(cols-1)+cols*(rows-1))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if col < cols-1 {
				constraints = append(constraints, NewConstraint(particles, i, i+1))
			}
			if row < rows-1 {
				constraints = append(constraints, NewConstraint(particles, i, i+cols))
			}
		}
	}
	return particles, constraints, nil
}

// Recenter moves the lattice to the middle of the viewport and returns its
// top-left origin. PreviousPosition is reset so the move carries no velocity.
func Recenter(particles []Particle, width, height, spacing float64, rows, cols int) r2.Vec {
	origin := r2.Vec{
		X: (width - float64(cols-1)*spacing) / 2,
		Y: (height - float64(rows-1)*spacing) / 2,
	}
	i := 0
	for row := 0; row < rows && i < len(particles); row++ {
		for col := 0; col < cols && i < len(particles); col++ {
			p := &particles[i]
			p.Position = r2.Vec{X: origin.X + float64(col)*spacing, Y: origin.Y + float64(row)*spacing}
			p.PreviousPosition = p.Position
			i++
		}
	}
	return origin
}
