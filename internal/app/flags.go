package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gpgpu-life/pkg/life"
)

// Config represents the command-line parameters shared by the commands.
type Config struct {
	Life     life.Config
	Pattern  string
	Seed     int64
	TPS      int
	GPS      float64
	LogLevel slog.Level
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Life:     life.DefaultConfig(),
		Pattern:  "random",
		Seed:     42,
		TPS:      60,
		LogLevel: slog.LevelInfo,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Life.Bind(fs)
	fs.StringVar(&c.Pattern, "pattern", c.Pattern,
		"initial generation: "+strings.Join(life.PatternNames(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.GPS, "gps", c.GPS, "generations per second; 0 advances one generation per tick")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Validate checks the configuration before anything is allocated.
func (c *Config) Validate() error {
	if err := c.Life.Validate(); err != nil {
		return err
	}
	if _, err := life.LookupPattern(c.Pattern); err != nil {
		return err
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", life.ErrInvalidConfiguration, c.TPS)
	}
	if c.GPS < 0 {
		return fmt.Errorf("%w: gps must not be negative, got %v", life.ErrInvalidConfiguration, c.GPS)
	}
	return nil
}

// Logger builds a text logger at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
