package game

import (
	"image"
	"image/color"
	"time"

	"github.com/iburimskiy/object-tracking/internal/config"
	"github.com/iburimskiy/object-tracking/internal/highlight"
)

var (
	arenaColor     = color.RGBA{A: 255}
	objectColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	highlightColor = color.RGBA{R: 255, A: 255}

	panelColor       = color.RGBA{R: 24, G: 28, B: 36, A: 255}
	trackColor       = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	trackFillColor   = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	knobColor        = color.RGBA{R: 220, G: 225, B: 235, A: 255}
	knobActiveColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor       = color.RGBA{R: 200, G: 205, B: 215, A: 255}
	errorLabelColor  = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	pausedLabelColor = color.RGBA{R: 255, G: 200, B: 80, A: 255}
)

// screenSize is the logical screen for an arena of the given side: the
// control panel followed by the arena.
func screenSize(arena float64) (int, int) {
	side := int(arena)
	h := side
	if h < config.PanelMinHeight {
		h = config.PanelMinHeight
	}
	return side + config.PanelWidth, h
}

// arenaRect is where the arena canvas lands on screen.
func arenaRect(arena float64) image.Rectangle {
	side := int(arena)
	return image.Rect(config.PanelWidth, 0, config.PanelWidth+side, side)
}

// sliderTrack is the clickable track rectangle of the i-th slider.
func sliderTrack(i int) image.Rectangle {
	x := config.PanelPadding
	y := config.SliderTop + i*config.SliderSpacing + 8
	return image.Rect(x, y, x+config.PanelWidth-2*config.PanelPadding, y+config.SliderHeight)
}

// trackFraction maps a cursor x onto [0, 1] along r.
func trackFraction(r image.Rectangle, x int) float64 {
	if r.Dx() == 0 {
		return 0
	}
	return clamp01(float64(x-r.Min.X) / float64(r.Dx()))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatElapsed is the timer readout, blank before the first click.
func formatElapsed(t *highlight.Timer, now time.Time) string {
	d, ok := t.Elapsed(now)
	if !ok {
		return "-"
	}
	return highlight.FormatElapsed(d)
}
