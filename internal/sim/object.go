package sim

import "math"

// Object is a ball moving inside the arena.
type Object struct {
	X, Y   float64
	DX, DY float64 // displacement per frame
	Target bool
}

// Speed is the magnitude of the per-frame displacement.
func (o *Object) Speed() float64 {
	return math.Hypot(o.DX, o.DY)
}

// Turn rotates the velocity by angle radians and keeps its magnitude.
func (o *Object) Turn(angle float64) {
	if angle == 0 {
		return
	}
	speed := o.Speed()
	heading := math.Atan2(o.DY, o.DX) + angle
	o.DX = speed * math.Cos(heading)
	o.DY = speed * math.Sin(heading)
}

// bounce reflects the object off any wall it crossed and pulls it back
// inside [lo, hi] on that axis.
func (o *Object) bounce(lo, hi float64) {
	if o.X < lo || o.X > hi {
		o.DX = -o.DX
		o.X = clamp(o.X, lo, hi)
	}
	if o.Y < lo || o.Y > hi {
		o.DY = -o.DY
		o.Y = clamp(o.Y, lo, hi)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
