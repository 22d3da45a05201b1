// Package cue plays short sounds when a highlight window opens and closes.
package cue

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat is returned for sound files that are not wav, mp3 or flac.
var ErrUnsupportedFormat = errors.New("unsupported sound format")

// Options configure a Player.
type Options struct {
	SampleRate beep.SampleRate
	StartFreq  float64
	EndFreq    float64
	Duration   time.Duration
}

// Player turns highlight edges into sounds. A zero Player is silent.
type Player struct {
	opts  Options
	play  func(beep.Streamer)
	muted bool

	// decoded sound replacing the start tone, if any
	sample *beep.Buffer
}

// NewPlayer initializes the speaker and returns a player using it.
func NewPlayer(opts Options) (*Player, error) {
	bufferSize := opts.SampleRate.N(time.Second / 20)
	if err := speaker.Init(opts.SampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newPlayer(opts, func(s beep.Streamer) { speaker.Play(s) }), nil
}

func newPlayer(opts Options, play func(beep.Streamer)) *Player {
	return &Player{opts: opts, play: play}
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool { return p == nil || p.muted }

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.muted = !p.muted
	return p.muted
}

// HighlightStarted plays the start cue, or the loaded sound file.
func (p *Player) HighlightStarted() {
	if p.Muted() {
		return
	}
	if p.sample != nil {
		p.play(p.sample.Streamer(0, p.sample.Len()))
		return
	}
	p.play(Beep(p.opts.StartFreq, p.opts.Duration, p.opts.SampleRate))
}

// HighlightEnded plays the end cue.
func (p *Player) HighlightEnded() {
	if p.Muted() {
		return
	}
	p.play(Beep(p.opts.EndFreq, p.opts.Duration, p.opts.SampleRate))
}

// Load decodes the sound file at path and uses it as the start cue from now on.
func (p *Player) Load(path string) error {
	buf, err := LoadFile(path, p.opts.SampleRate)
	if err != nil {
		return err
	}
	p.sample = buf
	return nil
}

// LoadFile decodes a wav, mp3 or flac file into memory at the given rate.
func LoadFile(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	format.SampleRate = rate
	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

func decode(r io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(r)
	case ".mp3":
		return mp3.Decode(r)
	case ".flac":
		return flac.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
