// Package sim implements the moving-ball physics of the tracking exercise:
// population, per-frame integration with heading jitter, wall reflection and
// pairwise elastic collisions.
package sim

import (
	"math"
	"math/rand/v2"
)

// Simulation owns the objects of one run and the parameters that shaped them.
type Simulation struct {
	params  Params
	objects []Object
	rng     *rand.Rand
	frame   uint64
}

// New validates p and returns a populated simulation drawing randomness from rng.
func New(p Params, rng *rand.Rand) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Simulation{params: p, rng: rng}
	s.Reset()
	return s, nil
}

// NewSeeded is New with a deterministic PCG source.
func NewSeeded(p Params, seed uint64) (*Simulation, error) {
	return New(p, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Params returns the current parameters.
func (s *Simulation) Params() Params { return s.params }

// Objects exposes the live object slice. Callers must not resize it.
func (s *Simulation) Objects() []Object { return s.objects }

// Frame is the number of steps taken since the last reset.
func (s *Simulation) Frame() uint64 { return s.frame }

// SetParams applies p, repopulating the arena when any field other than the
// jitter changed. It reports whether a reset happened.
func (s *Simulation) SetParams(p Params) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	reset := s.params.Repopulates(p)
	s.params = p
	if reset {
		s.Reset()
	}
	return reset, nil
}

// Reset discards every object and samples a fresh population. The first
// Targets objects are the targets.
func (s *Simulation) Reset() {
	p := s.params
	lo, hi := p.Radius, p.ArenaSize-p.Radius

	objs := make([]Object, p.Count())
	for i := range objs {
		objs[i] = Object{
			X:      s.uniform(lo, hi),
			Y:      s.uniform(lo, hi),
			DX:     s.uniform(-p.Speed, p.Speed),
			DY:     s.uniform(-p.Speed, p.Speed),
			Target: i < p.Targets,
		}
	}
	s.objects = objs
	s.frame = 0
}

// Step advances every object one frame and then resolves collisions on the
// new positions.
func (s *Simulation) Step() {
	p := s.params
	lo, hi := p.Radius, p.ArenaSize-p.Radius
	jitter := p.JitterDegrees * math.Pi / 180

	for i := range s.objects {
		o := &s.objects[i]
		if jitter > 0 {
			o.Turn(s.uniform(-jitter, jitter))
		}
		o.X += o.DX
		o.Y += o.DY
		o.bounce(lo, hi)
	}

	ResolveCollisions(s.objects, p.Radius)
	s.frame++
}

// Snapshot copies the objects, for comparisons across frames.
func (s *Simulation) Snapshot() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// uniform samples [lo, hi).
func (s *Simulation) uniform(lo, hi float64) float64 {
	return s.rng.Float64()*(hi-lo) + lo
}
