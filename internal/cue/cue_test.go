package cue

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(44100)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	samples := drain(Tone(440, 100*time.Millisecond, rate))

	require.Len(t, samples, rate.N(100*time.Millisecond))
	for _, s := range samples {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Equal(t, s[0], s[1])
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(Envelope(Tone(440, d, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate))

	require.NotEmpty(t, samples)
	assert.Zero(t, samples[0][0], "attack starts silent")
	last := samples[len(samples)-1][0]
	assert.InDelta(t, 0, last, 0.01, "release ends near silence")
}

func TestBeepIsQuieterThanTone(t *testing.T) {
	d := 50 * time.Millisecond
	peak := func(ss [][2]float64) float64 {
		var m float64
		for _, s := range ss {
			if s[0] > m {
				m = s[0]
			}
		}
		return m
	}
	assert.Less(t, peak(drain(Beep(440, d, rate))), peak(drain(Tone(440, d, rate))))
}

func TestPlayerCuesAndMute(t *testing.T) {
	var played []beep.Streamer
	p := newPlayer(Options{SampleRate: rate, StartFreq: 880, EndFreq: 440, Duration: 20 * time.Millisecond},
		func(s beep.Streamer) { played = append(played, s) })

	p.HighlightStarted()
	p.HighlightEnded()
	require.Len(t, played, 2)

	assert.True(t, p.ToggleMute())
	p.HighlightStarted()
	p.HighlightEnded()
	assert.Len(t, played, 2)

	assert.False(t, p.ToggleMute())
	p.HighlightEnded()
	assert.Len(t, played, 3)
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.True(t, p.Muted())
	assert.NotPanics(t, func() {
		p.HighlightStarted()
		p.HighlightEnded()
	})
}

func TestLoadFileResamplesWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	src := beep.SampleRate(22050)
	format := beep.Format{SampleRate: src, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, Tone(440, 200*time.Millisecond, src), format))
	require.NoError(t, f.Close())

	buf, err := LoadFile(path, rate)
	require.NoError(t, err)
	assert.Equal(t, rate, buf.Format().SampleRate)
	assert.InDelta(t, rate.N(200*time.Millisecond), buf.Len(), 64)
}

func TestPlayerLoadReplacesStartCue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, Tone(660, 30*time.Millisecond, rate), format))
	require.NoError(t, f.Close())

	var played []beep.Streamer
	p := newPlayer(Options{SampleRate: rate, StartFreq: 880, EndFreq: 440, Duration: 10 * time.Millisecond},
		func(s beep.Streamer) { played = append(played, s) })
	require.NoError(t, p.Load(path))

	p.HighlightStarted()
	require.Len(t, played, 1)
	assert.Len(t, drain(played[0]), rate.N(30*time.Millisecond))
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.wav"), rate)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	_, err = LoadFile(path, rate)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
