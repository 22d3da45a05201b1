package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/object-tracking/internal/config"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) Draw(screen *ebiten.Image) {
	arena := g.ctrl.Simulation().Params().ArenaSize
	canvas := g.arenaCanvas(int(arena))

	g.drawArena(canvas)
	g.drawObjects(canvas)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(arenaRect(arena).Min.X), 0)
	screen.DrawImage(canvas, op)

	g.drawPanel(screen)
}

// arenaCanvas returns a cleared drawing surface of side x side pixels.
func (g *Game) arenaCanvas(side int) *ebiten.Image {
	if g.canvas != nil && g.canvas.Bounds().Dx() == side {
		g.canvas.Clear()
		return g.canvas
	}
	if g.canvas != nil {
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(side, side)
	return g.canvas
}

func (g *Game) drawArena(canvas *ebiten.Image) {
	side := float32(canvas.Bounds().Dx())
	drawRoundedRect(canvas, 0, 0, side, side, config.ArenaCornerRadius, arenaColor)
}

func (g *Game) drawObjects(canvas *ebiten.Image) {
	s := g.ctrl.Simulation()
	radius := float32(s.Params().Radius)
	highlighting := g.ctrl.Timer().Highlighting()

	for _, o := range s.Objects() {
		clr := objectColor
		if highlighting && o.Target {
			clr = highlightColor
		}
		vector.DrawFilledCircle(canvas, float32(o.X), float32(o.Y), radius, clr, true)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	_, h := g.ScreenSize()
	vector.DrawFilledRect(screen, 0, 0, config.PanelWidth, float32(h), panelColor, false)

	face := basicfont.Face7x13
	left := config.PanelPadding

	for i, sl := range g.ctrl.Sliders() {
		track := sliderTrack(i)
		text.Draw(screen, sl.Text(), face, left, track.Min.Y-6, labelColor)
		g.drawSlider(screen, track, sl.Fraction(), sl == g.dragging)
	}

	y := config.SliderTop + len(g.ctrl.Sliders())*config.SliderSpacing + 10
	line := func(s string, clr color.Color) {
		text.Draw(screen, s, face, left, y, clr)
		y += 18
	}

	now := g.now()
	line("Time: "+formatElapsed(g.ctrl.Timer(), now), labelColor)
	line(fmt.Sprintf("Highlight: %s", g.ctrl.Timer().State()), labelColor)
	if g.ctrl.Paused() {
		line("PAUSED", pausedLabelColor)
	} else {
		line(fmt.Sprintf("Frame: %d", g.ctrl.Simulation().Frame()), labelColor)
	}
	switch {
	case g.player == nil:
		line("Cues: unavailable", labelColor)
	case g.player.Muted():
		line("Cues: muted", labelColor)
	default:
		line("Cues: on", labelColor)
	}

	y += 10
	for _, help := range []string{
		"Click arena: show targets",
		"Space: pause / resume",
		"R: reshuffle balls",
		"M: mute cues",
		"O: open cue sound",
		"Esc/Q: quit",
	} {
		line(help, trackFillColor)
	}

	if g.lastErr != nil {
		y += 10
		line("Error: "+g.lastErr.Error(), errorLabelColor)
	}
}

func (g *Game) drawSlider(screen *ebiten.Image, track image.Rectangle, frac float64, active bool) {
	x, y := float32(track.Min.X), float32(track.Min.Y)
	w, h := float32(track.Dx()), float32(track.Dy())

	vector.DrawFilledRect(screen, x, y+h/2-2, w, 4, trackColor, false)
	vector.DrawFilledRect(screen, x, y+h/2-2, w*float32(frac), 4, trackFillColor, false)

	knob := knobColor
	if active {
		knob = knobActiveColor
	}
	vector.DrawFilledCircle(screen, x+w*float32(frac), y+h/2, h/2+1, knob, true)
}

// drawRoundedRect fills a rectangle with quadratic corners of radius r.
func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.QuadTo(x+w, y, x+w, y+r)
	path.LineTo(x+w, y+h-r)
	path.QuadTo(x+w, y+h, x+w-r, y+h)
	path.LineTo(x+r, y+h)
	path.QuadTo(x, y+h, x, y+h-r)
	path.LineTo(x, y+r)
	path.QuadTo(x, y, x+r, y)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
