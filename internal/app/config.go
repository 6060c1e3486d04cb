package app

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lifeloop/internal/driver"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	Sim     string `yaml:"sim"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Scale   int    `yaml:"scale"`
	TPS     int    `yaml:"tps"`
	Seed    int64  `yaml:"seed"`
	OnError string `yaml:"on_error"`
	Frames  uint64 `yaml:"frames"`
	Plain   bool   `yaml:"plain"`

	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Width:   64,
		Height:  64,
		Scale:   6,
		TPS:     10,
		Seed:    42,
		OnError: "halt",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.StringVar(&c.OnError, "on-error", c.OnError, "frame failure policy: halt or continue")
	fs.Uint64Var(&c.Frames, "frames", c.Frames, "stop after this many frames (0 = run forever)")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "append frames instead of repainting in place")
	fs.StringVar(&c.File, "config", c.File, "path to a YAML config file")
}

// LoadFile overlays values from a YAML file onto the config.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Resolve loads the YAML file referenced by the -config flag, if any.
// Flags set explicitly on the command line win over file values.
// Call after fs has been parsed.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	for name, val := range set {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// Policy maps the on-error setting onto a driver error policy.
func (c *Config) Policy() (driver.ErrorPolicy, error) {
	switch c.OnError {
	case "", "halt":
		return driver.HaltOnError, nil
	case "continue":
		return driver.LogAndContinue, nil
	}
	return driver.HaltOnError, fmt.Errorf("unknown on-error policy %q", c.OnError)
}

// SimParams returns the registry configuration map for the selected sim.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"w": fmt.Sprintf("%d", c.Width),
		"h": fmt.Sprintf("%d", c.Height),
	}
}
