package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/object-tracking/internal/sim"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	cfg, err := load([]string{"-env-file", missing}, envOf(nil))
	require.NoError(t, err)

	want := Default()
	want.EnvFile = missing
	assert.Equal(t, want, cfg)
	assert.Equal(t, 12, cfg.Params.Count())
}

func TestLoadPrecedence(t *testing.T) {
	path := writeEnvFile(t, "MOT_RADIUS=15\nMOT_TARGETS=2\nMOT_DISTRACTORS=3\nMOT_CUES=false\n")
	env := envOf(map[string]string{
		EnvTargets: "5",
		EnvJitter:  "12.5",
	})

	cfg, err := load([]string{"-env-file", path, "-distractors", "9"}, env)
	require.NoError(t, err)

	assert.Equal(t, 15.0, cfg.Params.Radius, "from file")
	assert.Equal(t, 5, cfg.Params.Targets, "environment beats file")
	assert.Equal(t, 9, cfg.Params.Distractors, "flag beats file")
	assert.Equal(t, 12.5, cfg.Params.JitterDegrees)
	assert.False(t, cfg.Cues)
	assert.Equal(t, float64(DefaultArenaSize), cfg.Params.ArenaSize)
}

func TestLoadRejectsBadEnvValue(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	_, err := load([]string{"-env-file", missing}, envOf(map[string]string{EnvSpeed: "fast"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSpeed)
}

func TestLoadRejectsInvalidParams(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	_, err := load([]string{"-env-file", missing, "-arena", "10", "-radius", "20"}, envOf(nil))
	require.ErrorIs(t, err, sim.ErrInvalidParams)
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	_, err := load([]string{"-bogus"}, envOf(nil))
	require.Error(t, err)
}

func TestDefaultWithinSliderRanges(t *testing.T) {
	p := Default().Params
	assert.True(t, p.Radius >= MinRadius && p.Radius <= MaxRadius)
	assert.True(t, p.Speed >= MinSpeed && p.Speed <= MaxSpeed)
	assert.True(t, p.Targets >= MinTargets && p.Targets <= MaxTargets)
	assert.True(t, p.Distractors >= MinDistractors && p.Distractors <= MaxDistractors)
	assert.True(t, p.ArenaSize >= MinArenaSize && p.ArenaSize <= MaxArenaSize)
	assert.True(t, p.JitterDegrees >= MinJitter && p.JitterDegrees <= MaxJitter)
	assert.NoError(t, p.Validate())
}

func TestLoadClampsToSliderRanges(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	cfg, err := load([]string{"-env-file", missing, "-targets", "100", "-arena", "805", "-radius", "1"}, envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, MaxTargets, cfg.Params.Targets)
	assert.Equal(t, 810.0, cfg.Params.ArenaSize, "snapped to the wall size step")
	assert.Equal(t, float64(MinRadius), cfg.Params.Radius)
	assert.Equal(t, cfg.Params, ClampParams(cfg.Params))
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{200, 200},
		{804, 800},
		{805, 810},
		{5000, 1200},
		{-1, 200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ArenaSizeRange.Clamp(tt.in), "clamp(%v)", tt.in)
	}
	assert.Equal(t, 2.5, Range{Min: 0, Max: 5}.Clamp(2.5), "no step keeps fractions")
}
