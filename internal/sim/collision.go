package sim

import "math"

// ResolveCollisions applies an equal-mass elastic impulse to every pair of
// overlapping objects that is not already separating. Positions are left
// untouched. It returns the number of impulses applied.
func ResolveCollisions(objs []Object, radius float64) int {
	minDist := 2 * radius
	hits := 0

	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			a, b := &objs[i], &objs[j]

			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Hypot(dx, dy)
			if dist >= minDist {
				continue
			}

			// Coincident centers: no direction to push along, pick +X
			nx, ny := 1.0, 0.0
			if dist > 0 {
				nx, ny = dx/dist, dy/dist
			}

			rel := (b.DX-a.DX)*nx + (b.DY-a.DY)*ny
			if rel > 0 {
				continue
			}

			// Equal unit masses: -2*rel/2
			impulse := -rel
			a.DX -= impulse * nx
			a.DY -= impulse * ny
			b.DX += impulse * nx
			b.DY += impulse * ny
			hits++
		}
	}
	return hits
}
