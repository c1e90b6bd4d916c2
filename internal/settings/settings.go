// Package settings loads and saves sandbox preferences.
package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the default location of the settings file, relative to the
// working directory.
const Path = "config/sandbox.yaml"

// Prefs holds the user-tunable sandbox preferences.
type Prefs struct {
	// SpawnDensity and SpawnSize set the mass and radius of spawned
	// bodies. Mass is density times size squared.
	SpawnDensity float32 `yaml:"spawn_density"`
	SpawnSize    float32 `yaml:"spawn_size"`

	ShowHUD      bool `yaml:"show_hud"`
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`

	// SymmetricGravity applies every attraction to both bodies of a
	// pair instead of only the earlier-spawned one.
	SymmetricGravity bool `yaml:"symmetric_gravity"`
}

// Default returns the stock preferences.
func Default() Prefs {
	return Prefs{
		SpawnDensity: 1.0,
		SpawnSize:    50.0,
		ShowHUD:      true,
	}
}

// Load reads preferences from path. A missing or unreadable file is not
// an error; the defaults are returned so the sandbox always starts.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}

	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}

	// Backfill fields the file left out or zeroed.
	def := Default()
	if p.SpawnDensity <= 0 {
		p.SpawnDensity = def.SpawnDensity
	}
	if p.SpawnSize <= 0 {
		p.SpawnSize = def.SpawnSize
	}

	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Exists reports whether a settings file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
