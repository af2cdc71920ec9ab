// Package config loads and writes the spirvcfg YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"spirvcfg/internal/render"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = ".spirvcfg.yaml"

// Config is the on-disk configuration.
type Config struct {
	Name  string       `yaml:"name"`
	Theme render.Theme `yaml:"theme"`
	Prune bool         `yaml:"prune"` // drop blocks unreachable from the entry
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Name:  "spirvcfg",
		Theme: render.Mono,
	}
}

// RenderOptions returns the render options described by c.
func (c Config) RenderOptions() render.Options {
	return render.Options{Theme: c.Theme, Prune: c.Prune}
}

// Load reads the configuration at path. Fields absent from the file keep
// their defaults. A missing file yields Default without error; any other
// read or decode failure is returned.
func Load(path string) (Config, error) {
	config := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		// An empty file decodes to io.EOF and means "all defaults".
		if errors.Is(err, io.EOF) {
			return config, nil
		}
		return config, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return config, nil
}

// Write stores c as YAML at path, replacing any existing file.
func Write(path string, c Config) error {
	d, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
