// Package manifest handles befuddle.toml interpreter configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a befuddle.toml configuration.
type Manifest struct {
	Field FieldConfig `toml:"field"`
	Run   RunConfig   `toml:"run"`
	Image ImageConfig `toml:"image"`

	// Dir is the directory containing the befuddle.toml file (set at load time).
	Dir string `toml:"-"`
}

// FieldConfig sets the playfield dimensions.
type FieldConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// RunConfig controls the execution loop.
type RunConfig struct {
	Renderer string `toml:"renderer"`
	DelayMS  int    `toml:"delay-ms"`
	Trace    bool   `toml:"trace"`
}

// ImageConfig configures field image output.
type ImageConfig struct {
	Output string `toml:"output"`
}

// Default returns the configuration used when no befuddle.toml exists:
// the classic 80x25 field with the line renderer.
func Default() *Manifest {
	return &Manifest{
		Field: FieldConfig{Width: 80, Height: 25},
		Run:   RunConfig{Renderer: "line"},
	}
}

// Load parses a befuddle.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "befuddle.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Field.Width == 0 {
		m.Field.Width = 80
	}
	if m.Field.Height == 0 {
		m.Field.Height = 25
	}
	if m.Run.Renderer == "" {
		m.Run.Renderer = "line"
	}

	switch m.Run.Renderer {
	case "line", "terminal", "none":
	default:
		return nil, fmt.Errorf("%s: unknown renderer %q", path, m.Run.Renderer)
	}
	if m.Field.Width <= 0 || m.Field.Height <= 0 {
		return nil, fmt.Errorf("%s: invalid field size %dx%d", path, m.Field.Width, m.Field.Height)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a befuddle.toml file,
// then loads and returns the manifest. Returns Default() if no
// manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "befuddle.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return Default(), nil
		}
		dir = parent
	}
}

// ImageOutputPath returns the configured image output path resolved
// against the manifest directory, or "" when unset.
func (m *Manifest) ImageOutputPath() string {
	if m.Image.Output == "" || m.Dir == "" || filepath.IsAbs(m.Image.Output) {
		return m.Image.Output
	}
	return filepath.Join(m.Dir, m.Image.Output)
}
