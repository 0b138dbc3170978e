// Package config holds the command-line settings for a run.
package config

import (
	"flag"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/game/text"
)

// Backends lists the display backends by flag name
var Backends = []string{"tui", "tcell", "ebiten"}

// Config is everything main needs to start a session
type Config struct {
	Backend  string
	Seed     int64 // 0 picks a seed from the clock
	Tick     time.Duration
	Sound    bool
	Mouse    bool
	LogPath  string
	LogLevel string
	Language string
	DumpDir  string // when set, a state dump and screenshot are written here on exit
}

// Default returns the settings used when no flags are given
func Default() Config {
	return Config{
		Backend:  "tui",
		Tick:     30 * time.Millisecond,
		Sound:    true,
		Mouse:    true,
		LogLevel: "info",
		Language: text.DefaultLanguage,
	}
}

// BindFlags registers every setting on fs, using the current values as defaults
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "display backend: "+strings.Join(Backends, ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = from clock)")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.BoolVar(&c.Mouse, "mouse", c.Mouse, "mouse look")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "write logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.Language, "lang", c.Language, "UI language")
	fs.StringVar(&c.DumpDir, "dump-dir", c.DumpDir, "write a state dump and screenshot to this directory on exit")
}

// Validate reports the first setting that cannot be used
func (c Config) Validate() error {
	if !slices.Contains(Backends, c.Backend) {
		return errors.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(Backends, ", "))
	}
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %v", c.Tick)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log-level")
	}
	if !slices.Contains(text.Languages(), c.Language) {
		return errors.Errorf("unknown language %q (have %s)", c.Language, strings.Join(text.Languages(), ", "))
	}
	return nil
}

// Parse reads args (without the program name) over the defaults
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("torchmaze", flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolveSeed returns Seed, or a clock-derived seed when it is zero
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Fields returns the settings as log fields
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"backend":  c.Backend,
		"seed":     c.Seed,
		"tick":     c.Tick,
		"sound":    c.Sound,
		"mouse":    c.Mouse,
		"lang":     c.Language,
		"dump_dir": c.DumpDir,
	}
}
