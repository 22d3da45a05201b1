// Package control binds user input to the simulation: parameter sliders,
// pause, the highlight click, and the per-frame update.
package control

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/object-tracking/internal/highlight"
	"github.com/iburimskiy/object-tracking/internal/log"
	"github.com/iburimskiy/object-tracking/internal/sim"
)

// ErrRejected is wrapped by Set when an input value cannot be applied.
var ErrRejected = errors.New("input rejected")

// Cues receives highlight edges, typically to play a sound.
type Cues interface {
	HighlightStarted()
	HighlightEnded()
}

// Controller owns the running simulation and everything that mutates it.
type Controller struct {
	sim     *sim.Simulation
	timer   *highlight.Timer
	cues    Cues
	sliders []*Slider

	paused  bool
	resized bool
}

// New wires a controller to s and t. cues may be nil.
func New(s *sim.Simulation, t *highlight.Timer, cues Cues) *Controller {
	c := &Controller{
		sim:     s,
		timer:   t,
		cues:    cues,
		sliders: defaultSliders(),
	}
	// Parameters from elsewhere may sit off the slider grid; pull them onto
	// it so every label describes the live state.
	p := s.Params()
	for _, sl := range c.sliders {
		sl.Value = sl.Clamp(get(p, sl.Field))
		p = set(p, sl.Field, sl.Value)
	}
	if p != s.Params() {
		if _, err := s.SetParams(p); err != nil {
			log.Warn("parameters left off slider range", "err", err)
			for _, sl := range c.sliders {
				sl.Value = get(s.Params(), sl.Field)
			}
		} else {
			log.Info("parameters clamped to slider ranges", "objects", len(s.Objects()))
		}
	}
	return c
}

// Simulation returns the driven simulation.
func (c *Controller) Simulation() *sim.Simulation { return c.sim }

// Timer returns the highlight timer.
func (c *Controller) Timer() *highlight.Timer { return c.timer }

// Sliders returns the sliders in display order.
func (c *Controller) Sliders() []*Slider { return c.sliders }

// Slider returns the slider bound to f, or nil.
func (c *Controller) Slider(f Field) *Slider {
	for _, sl := range c.sliders {
		if sl.Field == f {
			return sl
		}
	}
	return nil
}

// Set applies an input value to field f. The value is snapped into the
// slider's range; every field except the jitter repopulates the arena.
func (c *Controller) Set(f Field, v float64) error {
	sl := c.Slider(f)
	if sl == nil {
		return fmt.Errorf("%w: unknown field %v", ErrRejected, f)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v=%v is not a number", ErrRejected, f, v)
	}
	v = sl.Clamp(v)

	prev := c.sim.Params()
	next := set(prev, f, v)
	if next == prev {
		sl.Value = v
		return nil
	}

	reset, err := c.sim.SetParams(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}
	sl.Value = v
	if next.ArenaSize != prev.ArenaSize {
		c.resized = true
	}

	l := log.With("field", f.String(), "value", v)
	if reset {
		l.Info("objects reinitialized", "objects", len(c.sim.Objects()))
	} else {
		l.Debug("parameter updated")
	}
	return nil
}

// SetFraction applies a slider drag at knob position frac in [0, 1].
func (c *Controller) SetFraction(f Field, frac float64) error {
	sl := c.Slider(f)
	if sl == nil {
		return fmt.Errorf("%w: unknown field %v", ErrRejected, f)
	}
	return c.Set(f, sl.ValueAt(frac))
}

// TogglePause flips the pause flag and returns the new value.
func (c *Controller) TogglePause() bool {
	c.paused = !c.paused
	log.Debug("pause toggled", "paused", c.paused)
	return c.paused
}

// Paused reports whether stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Reseed repopulates the arena with the current parameters.
func (c *Controller) Reseed() {
	c.sim.Reset()
	log.Info("objects reshuffled", "objects", len(c.sim.Objects()))
}

// Resized reports a pending arena size change and clears it.
func (c *Controller) Resized() bool {
	r := c.resized
	c.resized = false
	return r
}

// Click starts a highlight window unless one is already running.
func (c *Controller) Click(now time.Time) bool {
	if !c.timer.Click(now) {
		return false
	}
	log.Info("highlight started", "targets", c.sim.Params().Targets)
	if c.cues != nil {
		c.cues.HighlightStarted()
	}
	return true
}

// Frame is called once per tick. Objects only move while unpaused; the
// highlight window closes on wall-clock time either way.
func (c *Controller) Frame(now time.Time) {
	if !c.paused {
		c.sim.Step()
	}
	if c.timer.Update(now) {
		log.Info("highlight ended")
		if c.cues != nil {
			c.cues.HighlightEnded()
		}
	}
}

func get(p sim.Params, f Field) float64 {
	switch f {
	case FieldTargets:
		return float64(p.Targets)
	case FieldDistractors:
		return float64(p.Distractors)
	case FieldSpeed:
		return p.Speed
	case FieldJitter:
		return p.JitterDegrees
	case FieldArenaSize:
		return p.ArenaSize
	case FieldRadius:
		return p.Radius
	}
	return 0
}

func set(p sim.Params, f Field, v float64) sim.Params {
	switch f {
	case FieldTargets:
		p.Targets = int(v)
	case FieldDistractors:
		p.Distractors = int(v)
	case FieldSpeed:
		p.Speed = v
	case FieldJitter:
		p.JitterDegrees = v
	case FieldArenaSize:
		p.ArenaSize = v
	case FieldRadius:
		p.Radius = v
	}
	return p
}
