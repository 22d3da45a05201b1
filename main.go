package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/object-tracking/internal/config"
	"github.com/iburimskiy/object-tracking/internal/control"
	"github.com/iburimskiy/object-tracking/internal/cue"
	"github.com/iburimskiy/object-tracking/internal/game"
	"github.com/iburimskiy/object-tracking/internal/highlight"
	"github.com/iburimskiy/object-tracking/internal/log"
	"github.com/iburimskiy/object-tracking/internal/sim"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	log.Init(cfg.LogLevel)
	log.Info("starting", cfg.Summary()...)

	var s *sim.Simulation
	if cfg.Seed != 0 {
		s, err = sim.NewSeeded(cfg.Params, cfg.Seed)
	} else {
		s, err = sim.New(cfg.Params, nil)
	}
	if err != nil {
		log.Error("create simulation", "err", err)
		os.Exit(1)
	}

	player := newCuePlayer(cfg)

	var cues control.Cues
	if player != nil {
		cues = player
	}
	ctrl := control.New(s, highlight.NewTimer(config.TargetTime), cues)
	g := game.New(ctrl, player)

	ebiten.SetWindowSize(g.ScreenSize())
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game stopped", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title("Multiple Object Tracking"))
		os.Exit(1)
	}
}

// newCuePlayer returns nil when cues are disabled or audio is unavailable.
func newCuePlayer(cfg config.Config) *cue.Player {
	if !cfg.Cues {
		return nil
	}
	player, err := cue.NewPlayer(cue.Options{
		SampleRate: beep.SampleRate(config.CueSampleRate),
		StartFreq:  config.CueStartFreq,
		EndFreq:    config.CueEndFreq,
		Duration:   config.CueDuration,
	})
	if err != nil {
		log.Warn("audio cues disabled", "err", err)
		return nil
	}
	if cfg.CueFile != "" {
		if err := player.Load(cfg.CueFile); err != nil {
			log.Warn("cue file ignored", "file", cfg.CueFile, "err", err)
		}
	}
	return player
}
