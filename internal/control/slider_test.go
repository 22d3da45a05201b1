package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliderClamp(t *testing.T) {
	s := &Slider{Min: 200, Max: 1200, Step: 10}

	tests := []struct {
		in, want float64
	}{
		{200, 200},
		{204, 200},
		{205, 210},
		{1199, 1200},
		{5000, 1200},
		{-1, 200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Clamp(tt.in), "clamp(%v)", tt.in)
	}
}

func TestSliderFraction(t *testing.T) {
	s := &Slider{Min: 0, Max: 20, Step: 1, Value: 5}
	assert.Equal(t, 0.25, s.Fraction())

	assert.Equal(t, 0.0, s.ValueAt(-0.5))
	assert.Equal(t, 10.0, s.ValueAt(0.5))
	assert.Equal(t, 20.0, s.ValueAt(1.5))

	flat := &Slider{Min: 3, Max: 3}
	assert.Zero(t, flat.Fraction())
}

func TestSliderText(t *testing.T) {
	s := &Slider{Label: "Speed", Value: 5}
	assert.Equal(t, "Speed: 5", s.Text())

	s.Value = 2.5
	assert.Equal(t, "Speed: 2.5", s.Text())
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "arena", FieldArenaSize.String())
	assert.Equal(t, "Field(9)", Field(9).String())
}
