package cloth

import "gonum.org/v1/gonum/spatial/r2"

// QueryTear returns the index of the constraint whose segment is nearest to
// point, if that distance is strictly below tolerance. Torn constraints are
// scanned too; ties go to the lower index.
func QueryTear(particles []Particle, constraints []Constraint, point r2.Vec, tolerance float64) (int, bool) {
	nearest := -1
	minDist := tolerance
	for i := range constraints {
		c := &constraints[i]
		d := SegmentDistance(point, particles[c.A].Position, particles[c.B].Position)
		if d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest, nearest >= 0
}

// SegmentDistance is the distance from p to the closest point of segment ab.
// A zero-length segment degrades to the distance to a.
func SegmentDistance(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	ap := r2.Sub(p, a)

	abab := r2.Dot(ab, ab)
	if abab == 0 {
		return r2.Norm(ap)
	}

	t := r2.Dot(ab, ap) / abab
	switch {
	case t < 0:
		return r2.Norm(ap)
	case t > 1:
		return r2.Norm(r2.Sub(p, b))
	}
	proj := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm(r2.Sub(p, proj))
}
