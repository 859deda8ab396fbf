package styleguide

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultLayout = "default.html.tmpl"

var (
	// ErrNoContentDir is returned when a Config doesn't say where the
	// site's content lives.
	ErrNoContentDir = errors.New("content_dir is required")

	// ErrNoLayoutDir is returned when a Config doesn't say where the
	// site's layouts live.
	ErrNoLayoutDir = errors.New("layout_dir is required")

	// ErrIncompleteNavEntry is returned when a nav entry is missing its
	// name or its path.
	ErrIncompleteNavEntry = errors.New("nav entries need a name and a path")
)

// NavEntry is a link in the site's top navigation.
type NavEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Config describes a style guide site.
type Config struct {
	// Title is the name of the site.
	Title string `yaml:"title"`

	// Stylesheets are the names of the stylesheets every page links to.
	Stylesheets []string `yaml:"stylesheets"`

	// Nav is the site's top navigation, in display order.
	Nav []NavEntry `yaml:"nav"`

	// ContentDir is the directory holding the site's Markdown Items.
	ContentDir string `yaml:"content_dir"`

	// LayoutDir is the directory holding the site's html/template
	// layouts.
	LayoutDir string `yaml:"layout_dir"`

	// Layout is the layout, relative to LayoutDir, Items are rendered
	// with unless their layout attribute says otherwise. It defaults to
	// default.html.tmpl.
	Layout string `yaml:"layout"`
}

// Validate checks that the Config describes a usable site, filling in
// defaults for anything optional that's missing.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return ErrNoContentDir
	}
	if c.LayoutDir == "" {
		return ErrNoLayoutDir
	}
	for pos, entry := range c.Nav {
		if entry.Name == "" || entry.Path == "" {
			return fmt.Errorf("nav entry %d: %w", pos, ErrIncompleteNavEntry)
		}
	}
	if c.Layout == "" {
		c.Layout = defaultLayout
	}
	return nil
}

// ParseConfig decodes and validates a YAML Config.
func ParseConfig(in io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(in).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the Config at path. Relative content and layout
// directories are resolved against the directory the file is in.
func LoadConfig(path string) (Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	file, err := os.Open(absPath) // #nosec G304
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file %q: %w", absPath, err)
	}
	defer file.Close() //nolint:errcheck

	cfg, err := ParseConfig(file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", absPath, err)
	}
	base := filepath.Dir(absPath)
	if !filepath.IsAbs(cfg.ContentDir) {
		cfg.ContentDir = filepath.Join(base, cfg.ContentDir)
	}
	if !filepath.IsAbs(cfg.LayoutDir) {
		cfg.LayoutDir = filepath.Join(base, cfg.LayoutDir)
	}
	return cfg, nil
}
