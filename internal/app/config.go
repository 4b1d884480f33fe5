package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"buildprep/internal/domain"
)

// ConfigFilename is looked up in the project root when no --config is given.
const ConfigFilename = "buildprep.toml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Root       string        // absolute project root
	OutDir     string        // relative to Root, e.g. dist
	Runtime    string        // interpreter that executes the sources, e.g. tsx
	Sources    []string      // source directories relative to Root
	Extensions []string      // file extensions listed in the manifest
	Manifest   bool          // write build-manifest.json on build
	Debounce   string        // watch debounce, e.g. 250ms
	Interval   time.Duration // parsed Debounce
}

// fileConfig is the on-disk TOML shape; nil fields keep their defaults.
type fileConfig struct {
	OutDir     *string  `toml:"out_dir"`
	Runtime    *string  `toml:"runtime"`
	Sources    []string `toml:"sources"`
	Extensions []string `toml:"extensions"`
	Manifest   *bool    `toml:"manifest"`
	Debounce   *string  `toml:"debounce"`
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.OutDir != nil {
		cfg.OutDir = *fc.OutDir
	}
	if fc.Runtime != nil {
		cfg.Runtime = *fc.Runtime
	}
	if fc.Sources != nil {
		cfg.Sources = fc.Sources
	}
	if fc.Extensions != nil {
		cfg.Extensions = fc.Extensions
	}
	if fc.Manifest != nil {
		cfg.Manifest = *fc.Manifest
	}
	if fc.Debounce != nil {
		cfg.Debounce = *fc.Debounce
	}
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig(root string) Config {
	return Config{
		Root:       root,
		OutDir:     "dist",
		Runtime:    "tsx",
		Sources:    []string{"server"},
		Extensions: []string{".ts", ".tsx", ".js", ".mjs", ".json"},
		Debounce:   "250ms",
		Interval:   250 * time.Millisecond,
	}
}

// LoadConfig reads the TOML config for root.
//
// With path empty, <root>/buildprep.toml is used if present; a missing
// default file yields DefaultConfig. An explicit path must exist.
func LoadConfig(root, path string) (Config, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Config{}, fmt.Errorf("resolve root %q: %w", root, err)
	}
	cfg := DefaultConfig(abs)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(abs, ConfigFilename)
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	defer f.Close()

	var fc fileConfig
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
	}
	fc.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalises the config and rejects inconsistent values.
func (c *Config) Validate() error {
	if c.Root == "" || !filepath.IsAbs(c.Root) {
		return fmt.Errorf("%w: root must be absolute, got %q", domain.ErrInvalidConfig, c.Root)
	}

	out, err := relInside("out_dir", c.OutDir)
	if err != nil {
		return err
	}
	c.OutDir = out

	if strings.TrimSpace(c.Runtime) == "" {
		return fmt.Errorf("%w: runtime must not be empty", domain.ErrInvalidConfig)
	}

	for i, s := range c.Sources {
		src, err := relInside("sources", s)
		if err != nil {
			return err
		}
		c.Sources[i] = src
	}

	for i, ext := range c.Extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}

	if c.Debounce != "" {
		d, err := time.ParseDuration(c.Debounce)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: debounce %q", domain.ErrInvalidConfig, c.Debounce)
		}
		c.Interval = d
	}
	return nil
}

// Layout resolves the absolute project paths.
func (c Config) Layout() domain.Layout {
	return domain.Layout{
		Root:   c.Root,
		OutDir: filepath.Join(c.Root, c.OutDir),
	}
}

// relInside cleans p and requires it to name a path strictly below the root.
func relInside(key, p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidConfig, key)
	}
	if filepath.IsAbs(p) {
		return "", fmt.Errorf("%w: %s must be relative, got %q", domain.ErrInvalidConfig, key, p)
	}
	clean := filepath.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s %q escapes the project root", domain.ErrInvalidConfig, key, p)
	}
	return clean, nil
}
