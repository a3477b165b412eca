package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kyeongh0324/two-body-problem/internal/orbit"
)

const (
	DefaultG               = 3700.0
	DefaultPrimaryMass     = 1000.0
	DefaultSecondaryMass   = 1.0
	DefaultPrimaryRadius   = 20.0
	DefaultSecondaryRadius = 5.0
	DefaultSeparation      = 150.0
	DefaultDt              = 0.01
	DefaultTrailCapacity   = 1000
	DefaultDuration        = 30.0
	DefaultFrameRate       = 60
	DefaultKickMagnitude   = 30.0
)

type Config struct {
	G               float64    `yaml:"g"`
	PrimaryMass     float64    `yaml:"primary_mass"`
	SecondaryMass   float64    `yaml:"secondary_mass"`
	PrimaryRadius   float64    `yaml:"primary_radius"`
	SecondaryRadius float64    `yaml:"secondary_radius"`
	Separation      float64    `yaml:"separation"`
	Dt              float64    `yaml:"dt"`
	TrailCapacity   int        `yaml:"trail_capacity"`
	Duration        float64    `yaml:"duration"`
	FrameRate       int        `yaml:"frame_rate"`
	Kick            KickConfig `yaml:"kick"`
}

// KickConfig holds the starting values for the interactive kick
// controls; the live view adjusts them at runtime.
type KickConfig struct {
	AngleDeg  float64 `yaml:"angle"`
	Magnitude float64 `yaml:"magnitude"`
}

func DefaultConfig() *Config {
	return &Config{
		G:               DefaultG,
		PrimaryMass:     DefaultPrimaryMass,
		SecondaryMass:   DefaultSecondaryMass,
		PrimaryRadius:   DefaultPrimaryRadius,
		SecondaryRadius: DefaultSecondaryRadius,
		Separation:      DefaultSeparation,
		Dt:              DefaultDt,
		TrailCapacity:   DefaultTrailCapacity,
		Duration:        DefaultDuration,
		FrameRate:       DefaultFrameRate,
		Kick: KickConfig{
			Magnitude: DefaultKickMagnitude,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Orbit converts the file-level config into the session config
// consumed by the core.
func (c *Config) Orbit() orbit.Config {
	return orbit.Config{
		G:               c.G,
		PrimaryMass:     c.PrimaryMass,
		SecondaryMass:   c.SecondaryMass,
		PrimaryRadius:   c.PrimaryRadius,
		SecondaryRadius: c.SecondaryRadius,
		Separation:      c.Separation,
		Dt:              c.Dt,
		TrailCapacity:   c.TrailCapacity,
	}
}
