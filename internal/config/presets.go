package config

// Presets are named starting configurations for the simulator. Each
// inherits the defaults and overrides what makes it interesting.
var Presets = map[string]func() *Config{
	"circular": func() *Config {
		return DefaultConfig()
	},
	"tight": func() *Config {
		cfg := DefaultConfig()
		cfg.Separation = 60
		cfg.Dt = 0.005
		return cfg
	},
	"distant": func() *Config {
		cfg := DefaultConfig()
		cfg.Separation = 300
		cfg.Duration = 60
		return cfg
	},
	"heavy": func() *Config {
		cfg := DefaultConfig()
		cfg.PrimaryMass = 5000
		cfg.PrimaryRadius = 30
		cfg.Dt = 0.005
		return cfg
	},
	"grazing": func() *Config {
		// Starts barely outside the collision guard; a retrograde kick
		// ends it quickly.
		cfg := DefaultConfig()
		cfg.Separation = 40
		cfg.Dt = 0.002
		return cfg
	},
}

func GetPreset(name string) *Config {
	mk, ok := Presets[name]
	if !ok {
		return nil
	}
	return mk()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
