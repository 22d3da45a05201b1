package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/iburimskiy/object-tracking/internal/highlight"
	"github.com/iburimskiy/object-tracking/internal/sim"
)

const (
	WindowTitle = "Multiple Object Tracking - Click: show targets, Space: pause, R: reshuffle, Esc/Q: quit"

	// Highlight window after a click
	TargetTime = highlight.TargetTime

	// Arena drawing
	ArenaCornerRadius = 20

	// Control panel to the left of the arena
	PanelWidth     = 280
	PanelMinHeight = 600
	PanelPadding   = 20
	SliderHeight   = 12
	SliderSpacing  = 48
	SliderTop      = 40

	// Defaults for the simulation
	DefaultRadius      = 10
	DefaultSpeed       = 5
	DefaultTargets     = 4
	DefaultDistractors = 8
	DefaultArenaSize   = 800
	DefaultJitter      = 0

	// Slider ranges
	MinRadius, MaxRadius           = 2, 50
	MinSpeed, MaxSpeed             = 0, 20
	MinTargets, MaxTargets         = 0, 20
	MinDistractors, MaxDistractors = 0, 40
	MinArenaSize, MaxArenaSize     = 200, 1200
	ArenaSizeStep                  = 10
	MinJitter, MaxJitter           = 0, 180

	// Audio cues
	CueSampleRate = 44100
	CueStartFreq  = 880
	CueEndFreq    = 440
	CueDuration   = 120 * time.Millisecond
)

// Range is the accepted interval and step grid of one tunable parameter.
type Range struct {
	Min, Max, Step float64
}

// Clamp snaps v to the step grid inside [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Ranges shared by the startup config and the sliders.
var (
	RadiusRange      = Range{Min: MinRadius, Max: MaxRadius, Step: 1}
	SpeedRange       = Range{Min: MinSpeed, Max: MaxSpeed, Step: 1}
	TargetsRange     = Range{Min: MinTargets, Max: MaxTargets, Step: 1}
	DistractorsRange = Range{Min: MinDistractors, Max: MaxDistractors, Step: 1}
	ArenaSizeRange   = Range{Min: MinArenaSize, Max: MaxArenaSize, Step: ArenaSizeStep}
	JitterRange      = Range{Min: MinJitter, Max: MaxJitter, Step: 1}
)

// ClampParams pulls every field of p onto its slider range.
func ClampParams(p sim.Params) sim.Params {
	p.Radius = RadiusRange.Clamp(p.Radius)
	p.Speed = SpeedRange.Clamp(p.Speed)
	p.Targets = int(TargetsRange.Clamp(float64(p.Targets)))
	p.Distractors = int(DistractorsRange.Clamp(float64(p.Distractors)))
	p.ArenaSize = ArenaSizeRange.Clamp(p.ArenaSize)
	p.JitterDegrees = JitterRange.Clamp(p.JitterDegrees)
	return p
}

// Environment variable names.
const (
	EnvRadius      = "MOT_RADIUS"
	EnvSpeed       = "MOT_SPEED"
	EnvTargets     = "MOT_TARGETS"
	EnvDistractors = "MOT_DISTRACTORS"
	EnvArenaSize   = "MOT_ARENA"
	EnvJitter      = "MOT_JITTER"
	EnvSeed        = "MOT_SEED"
	EnvCues        = "MOT_CUES"
	EnvCueFile     = "MOT_CUE_FILE"
	EnvLogLevel    = "MOT_LOG_LEVEL"
)

// Config is the resolved startup configuration.
type Config struct {
	Params   sim.Params
	Seed     uint64 // 0 picks a random seed
	Cues     bool
	CueFile  string
	LogLevel string
	EnvFile  string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Params: sim.Params{
			Radius:        DefaultRadius,
			Speed:         DefaultSpeed,
			Targets:       DefaultTargets,
			Distractors:   DefaultDistractors,
			ArenaSize:     DefaultArenaSize,
			JitterDegrees: DefaultJitter,
		},
		Cues:     true,
		LogLevel: "info",
		EnvFile:  ".env",
	}
}

// Load resolves the configuration from defaults, the env file, the process
// environment and args, later sources winning.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("object-tracking", flag.ContinueOnError)
	fset.Float64Var(&cfg.Params.Radius, "radius", cfg.Params.Radius, "object radius in pixels")
	fset.Float64Var(&cfg.Params.Speed, "speed", cfg.Params.Speed, "max initial velocity component per frame")
	fset.IntVar(&cfg.Params.Targets, "targets", cfg.Params.Targets, "number of targets")
	fset.IntVar(&cfg.Params.Distractors, "distractors", cfg.Params.Distractors, "number of distractors")
	fset.Float64Var(&cfg.Params.ArenaSize, "arena", cfg.Params.ArenaSize, "arena side length in pixels")
	fset.Float64Var(&cfg.Params.JitterDegrees, "jitter", cfg.Params.JitterDegrees, "max random heading change per frame in degrees")
	fset.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 for time based)")
	fset.BoolVar(&cfg.Cues, "cues", cfg.Cues, "play audio cues when highlighting starts and ends")
	fset.StringVar(&cfg.CueFile, "cue-file", cfg.CueFile, "wav/mp3/flac file to play instead of synthesized cues")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fset.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "dotenv file read before the environment")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	fileVals, err := godotenv.Read(cfg.EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", cfg.EnvFile, err)
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	explicit := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	// Flags given on the command line win over the environment
	for _, b := range []struct {
		flag, env string
	}{
		{"radius", EnvRadius},
		{"speed", EnvSpeed},
		{"targets", EnvTargets},
		{"distractors", EnvDistractors},
		{"arena", EnvArenaSize},
		{"jitter", EnvJitter},
		{"seed", EnvSeed},
		{"cues", EnvCues},
		{"cue-file", EnvCueFile},
		{"log-level", EnvLogLevel},
	} {
		if explicit[b.flag] {
			continue
		}
		v, ok := get(b.env)
		if !ok {
			continue
		}
		if err := fset.Set(b.flag, v); err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", b.env, v, err)
		}
	}

	if err := cfg.Params.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Params = ClampParams(cfg.Params)
	return cfg, nil
}

// Summary lists the configuration as slog attributes.
func (c Config) Summary() []any {
	return []any{
		"radius", c.Params.Radius,
		"speed", c.Params.Speed,
		"targets", c.Params.Targets,
		"distractors", c.Params.Distractors,
		"arena", c.Params.ArenaSize,
		"jitter", c.Params.JitterDegrees,
		"seed", c.Seed,
		"cues", c.Cues,
		"cue_file", c.CueFile,
	}
}
