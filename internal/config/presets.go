package config

import (
	"sort"

	"github.com/san-kum/tsunami/internal/wave"
)

var Presets = map[string]wave.Params{
	"default": wave.DefaultParams(),
	"undamped": {
		ICenter: 25, GridSize: 100, Timesteps: 100, Dt: 1, Dx: 1, C: 1, Decay: 0,
	},
	"heavy": {
		ICenter: 25, GridSize: 100, Timesteps: 200, Dt: 1, Dx: 1, C: 1, Decay: 0.3,
	},
	"courant-limit": {
		ICenter: 5, GridSize: 10, Timesteps: 5, Dt: 1, Dx: 1, C: 1, Decay: 0,
	},
	"fine": {
		ICenter: 250, GridSize: 1000, Timesteps: 2000, Dt: 0.5, Dx: 1, C: 1, Decay: 0.01,
	},
	"slow": {
		ICenter: 50, GridSize: 100, Timesteps: 400, Dt: 1, Dx: 1, C: 0.25, Decay: 0.005,
	},
}

// GetPreset returns the named parameter set and whether it exists.
func GetPreset(name string) (wave.Params, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
