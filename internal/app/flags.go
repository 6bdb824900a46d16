package app

import (
	"bytes"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"squarevolution/internal/core"
)

// Config represents the command-line and file parameters for the sandbox.
type Config struct {
	File string `yaml:"-"`

	Pattern     string  `yaml:"pattern"`
	Seed        int64   `yaml:"seed"`
	SoupSize    int     `yaml:"soup_size"`
	SoupDensity float64 `yaml:"soup_density"`

	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	CellSize       float64 `yaml:"cell_size"`
	StepsPerSecond float64 `yaml:"steps_per_second"`
	TPS            int     `yaml:"tps"`

	HUD     bool `yaml:"hud"`
	Overlay bool `yaml:"overlay"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:        "empty",
		Seed:           42,
		SoupSize:       64,
		SoupDensity:    0.35,
		Width:          1280,
		Height:         720,
		CellSize:       32,
		StepsPerSecond: core.DefaultStepsPerSecond,
		TPS:            60,
		HUD:            true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML file with sandbox settings; explicit flags win")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern placed at the origin")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.IntVar(&c.SoupSize, "soup-size", c.SoupSize, "edge length of the random soup")
	fs.Float64Var(&c.SoupDensity, "soup-density", c.SoupDensity, "fraction of live cells in the random soup")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.Float64Var(&c.CellSize, "cell-size", c.CellSize, "cell edge in pixels at zoom 1")
	fs.Float64Var(&c.StepsPerSecond, "sps", c.StepsPerSecond, "generations per second while running")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "outline active chunks")
}

// LoadFile reads YAML settings from path into c. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to decode YAML from file: %+v", path)
	}
	return nil
}

// Resolve applies c.File, if any, underneath the flags that were set
// explicitly on fs.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	return c.ResolveWith(explicit, fs.Set)
}

// ResolveWith loads c.File and then re-applies the explicit flag values
// through set, so precedence is defaults < file < flags.
func (c *Config) ResolveWith(explicit map[string]string, set func(name, value string) error) error {
	if c.File != "" {
		file := c.File
		if err := c.LoadFile(file); err != nil {
			return err
		}
		c.File = file
		for name, value := range explicit {
			if err := set(name, value); err != nil {
				return errors.Wrapf(err, "[ResolveWith] failed to re-apply flag -%s", name)
			}
		}
	}
	return c.Validate()
}

// Validate rejects settings the sandbox cannot run with.
func (c *Config) Validate() error {
	if _, ok := core.Patterns()[c.Pattern]; !ok {
		return errors.Errorf("[Validate] unknown pattern %q (known: %v)", c.Pattern, core.PatternNames())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.StepsPerSecond <= 0 {
		return errors.Errorf("[Validate] steps per second must be positive, got %v", c.StepsPerSecond)
	}
	if c.SoupDensity < 0 || c.SoupDensity > 1 {
		return errors.Errorf("[Validate] soup density must be within [0, 1], got %v", c.SoupDensity)
	}
	return nil
}

// PatternConfig returns the flag-style map handed to pattern factories.
func (c *Config) PatternConfig() map[string]string {
	return map[string]string{
		"size":    strconv.Itoa(c.SoupSize),
		"density": strconv.FormatFloat(c.SoupDensity, 'f', -1, 64),
	}
}
