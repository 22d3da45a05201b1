// Package game runs the tracking exercise inside an Ebitengine window.
package game

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/object-tracking/internal/control"
	"github.com/iburimskiy/object-tracking/internal/cue"
	"github.com/iburimskiy/object-tracking/internal/log"
)

// Game implements ebiten.Game on top of a control.Controller.
type Game struct {
	ctrl   *control.Controller
	player *cue.Player // nil when audio is unavailable
	now    func() time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	// slider being dragged, if any
	dragging *control.Slider

	// arena drawing surface, recreated when the arena size changes
	canvas *ebiten.Image

	lastErr error
}

// New returns a game driving ctrl. player may be nil.
func New(ctrl *control.Controller, player *cue.Player) *Game {
	return &Game{
		ctrl:    ctrl,
		player:  player,
		now:     time.Now,
		prevKey: map[ebiten.Key]bool{},
	}
}

// ScreenSize is the window size for the current arena.
func (g *Game) ScreenSize() (int, int) {
	return screenSize(g.ctrl.Simulation().Params().ArenaSize)
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	now := g.now()

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if justPressed(ebiten.KeyR) {
		g.ctrl.Reseed()
	}
	if justPressed(ebiten.KeyM) && g.player != nil {
		log.Info("cues muted", "muted", g.player.ToggleMute())
	}
	if justPressed(ebiten.KeyO) {
		g.setErr(g.openCueFileDialog())
	}

	g.handleMouse(now)

	g.ctrl.Frame(now)

	if g.ctrl.Resized() {
		ebiten.SetWindowSize(g.ScreenSize())
	}
	return nil
}

func (g *Game) handleMouse(now time.Time) {
	mx, my := ebiten.CursorPosition()
	arena := g.ctrl.Simulation().Params().ArenaSize
	cursor := image.Pt(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cursor.In(arenaRect(arena)) {
			g.ctrl.Click(now)
		}
		for i, sl := range g.ctrl.Sliders() {
			// a few pixels of slack around the thin track
			if cursor.In(sliderTrack(i).Inset(-4)) {
				g.dragging = sl
			}
		}
	}

	if g.dragging != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		for i, sl := range g.ctrl.Sliders() {
			if sl == g.dragging {
				g.setErr(g.ctrl.SetFraction(sl.Field, trackFraction(sliderTrack(i), mx)))
			}
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = nil
	}
}

func (g *Game) setErr(err error) {
	if err == nil {
		return
	}
	log.Warn("input failed", "err", err)
	g.lastErr = err
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

func (g *Game) openCueFileDialog() error {
	if g.player == nil {
		return errors.New("audio cues are disabled")
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Open Cue Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := g.player.Load(filename); err != nil {
		return err
	}
	log.Info("cue sound loaded", "file", filename)
	g.lastErr = nil
	return nil
}
