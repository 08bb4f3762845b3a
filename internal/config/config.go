package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tsunami/internal/wave"
)

// DefaultMaxCells bounds grid_size*timesteps for one run. The solver has no
// escape point inside its loops, so the host refuses oversized runs up front.
const DefaultMaxCells = 50_000_000

type Config struct {
	Params   wave.Params `yaml:"params"`
	MaxCells int         `yaml:"max_cells"`
}

func DefaultConfig() *Config {
	return &Config{
		Params:   wave.DefaultParams(),
		MaxCells: DefaultMaxCells,
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Overlay(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay applies the keys present in a YAML file on top of cfg.
func Overlay(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CheckBudget refuses parameter sets that would allocate more than MaxCells
// samples. A non-positive MaxCells disables the check.
func (c *Config) CheckBudget() error {
	if c.MaxCells <= 0 {
		return nil
	}
	if c.Params.GridSize > 0 && c.Params.Timesteps > c.MaxCells/c.Params.GridSize {
		return fmt.Errorf("run of %d x %d cells exceeds max_cells %d", c.Params.Timesteps, c.Params.GridSize, c.MaxCells)
	}
	return nil
}
