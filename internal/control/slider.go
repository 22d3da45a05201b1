package control

import (
	"fmt"
	"math"

	"github.com/iburimskiy/object-tracking/internal/config"
)

// Field names a tunable simulation parameter.
type Field int

const (
	FieldTargets Field = iota
	FieldDistractors
	FieldSpeed
	FieldJitter
	FieldArenaSize
	FieldRadius
)

func (f Field) String() string {
	switch f {
	case FieldTargets:
		return "targets"
	case FieldDistractors:
		return "distractors"
	case FieldSpeed:
		return "speed"
	case FieldJitter:
		return "jitter"
	case FieldArenaSize:
		return "arena"
	case FieldRadius:
		return "radius"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Slider is a range input bound to one parameter, with its display label.
type Slider struct {
	Field Field
	Label string
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

// Text is the label shown next to the slider.
func (s *Slider) Text() string {
	return fmt.Sprintf("%s: %s", s.Label, formatValue(s.Value))
}

// Clamp snaps v to the slider's step grid inside [Min, Max].
func (s *Slider) Clamp(v float64) float64 {
	return s.Range().Clamp(v)
}

// Range is the slider's interval and step grid.
func (s *Slider) Range() config.Range {
	return config.Range{Min: s.Min, Max: s.Max, Step: s.Step}
}

// Fraction is the knob position in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// ValueAt maps a knob position in [0, 1] to a snapped value.
func (s *Slider) ValueAt(frac float64) float64 {
	frac = math.Min(math.Max(frac, 0), 1)
	return s.Clamp(s.Min + frac*(s.Max-s.Min))
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func newSlider(f Field, label string, r config.Range) *Slider {
	return &Slider{Field: f, Label: label, Min: r.Min, Max: r.Max, Step: r.Step}
}

// defaultSliders builds the panel in display order.
func defaultSliders() []*Slider {
	return []*Slider{
		newSlider(FieldTargets, "Targets", config.TargetsRange),
		newSlider(FieldDistractors, "Distractors", config.DistractorsRange),
		newSlider(FieldSpeed, "Speed", config.SpeedRange),
		newSlider(FieldJitter, "Direction change (deg)", config.JitterRange),
		newSlider(FieldArenaSize, "Wall size", config.ArenaSizeRange),
		newSlider(FieldRadius, "Ball size", config.RadiusRange),
	}
}
