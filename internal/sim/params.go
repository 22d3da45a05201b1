package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every Params.Validate failure.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Params are the tunable knobs of a simulation run.
type Params struct {
	Radius        float64 // object radius in pixels
	Speed         float64 // bound for initial velocity components
	Targets       int
	Distractors   int
	ArenaSize     float64 // side of the square arena
	JitterDegrees float64 // max heading change per frame, symmetric
}

// Count is the number of objects a reset produces.
func (p Params) Count() int {
	return p.Targets + p.Distractors
}

// Validate reports the first constraint the parameters break.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"radius", p.Radius},
		{"speed", p.Speed},
		{"arena", p.ArenaSize},
		{"jitter", p.JitterDegrees},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}

	switch {
	case p.Radius <= 0:
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidParams, p.Radius)
	case p.Speed < 0:
		return fmt.Errorf("%w: speed %v must not be negative", ErrInvalidParams, p.Speed)
	case p.Targets < 0:
		return fmt.Errorf("%w: targets %d must not be negative", ErrInvalidParams, p.Targets)
	case p.Distractors < 0:
		return fmt.Errorf("%w: distractors %d must not be negative", ErrInvalidParams, p.Distractors)
	case p.ArenaSize <= 0:
		return fmt.Errorf("%w: arena size %v must be positive", ErrInvalidParams, p.ArenaSize)
	case p.ArenaSize < 2*p.Radius:
		return fmt.Errorf("%w: arena size %v cannot fit radius %v", ErrInvalidParams, p.ArenaSize, p.Radius)
	case p.JitterDegrees < 0:
		return fmt.Errorf("%w: jitter %v must not be negative", ErrInvalidParams, p.JitterDegrees)
	}
	return nil
}

// Repopulates reports whether moving from p to next requires a fresh set of
// objects. Only the jitter magnitude can change in place.
func (p Params) Repopulates(next Params) bool {
	return p.Radius != next.Radius ||
		p.Speed != next.Speed ||
		p.Targets != next.Targets ||
		p.Distractors != next.Distractors ||
		p.ArenaSize != next.ArenaSize
}
