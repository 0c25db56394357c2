// Package config handles loading, validating, and managing the screenshot
// generator configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/aellingwood/storeshots/internal/render"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "storeshots.yaml"

// SupportedFormats lists the output encodings the generator can write.
var SupportedFormats = []string{"png", "webp", "jpeg"}

// Config is the top-level generator configuration.
type Config struct {
	Output    string      `yaml:"output"    mapstructure:"output"`
	Fonts     FontsConfig `yaml:"fonts"     mapstructure:"fonts"`
	Platforms []Platform  `yaml:"platforms" mapstructure:"platforms"`
	Formats   []string    `yaml:"formats"   mapstructure:"formats"`
	Quality   int         `yaml:"quality"   mapstructure:"quality"`
	Copy      string      `yaml:"copy"      mapstructure:"copy"`
	Cache     bool        `yaml:"cache"     mapstructure:"cache"`
	Jobs      int         `yaml:"jobs"      mapstructure:"jobs"`
}

// FontsConfig locates the font files for each text role.
type FontsConfig struct {
	Dir      string `yaml:"dir"      mapstructure:"dir"`
	Title    string `yaml:"title"    mapstructure:"title"`
	Subtitle string `yaml:"subtitle" mapstructure:"subtitle"`
	Label    string `yaml:"label"    mapstructure:"label"`
	Step     string `yaml:"step"     mapstructure:"step"`
	Num      string `yaml:"num"      mapstructure:"num"`
}

// Files returns the per-role font file names.
func (f FontsConfig) Files() render.FontFiles {
	return render.FontFiles{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Label:    f.Label,
		Step:     f.Step,
		Num:      f.Num,
	}
}

// Platform is a target screen profile.
type Platform struct {
	Name   string `yaml:"name"   mapstructure:"name"`
	Width  int    `yaml:"width"  mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
}

// Size returns the platform size formatted as WxH.
func (p Platform) Size() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// DefaultPlatforms returns the three store profiles: iPhone 6.7", a common
// Android phone, and a Retina Mac display.
func DefaultPlatforms() []Platform {
	return []Platform{
		{Name: "ios", Width: 1290, Height: 2796},
		{Name: "android", Width: 1080, Height: 2400},
		{Name: "macos", Width: 2880, Height: 1800},
	}
}

// Default returns a Config populated with default values.
func Default() *Config {
	files := render.DefaultFontFiles()
	return &Config{
		Output: "screenshots",
		Fonts: FontsConfig{
			Dir:      "fonts",
			Title:    files.Title,
			Subtitle: files.Subtitle,
			Label:    files.Label,
			Step:     files.Step,
			Num:      files.Num,
		},
		Platforms: DefaultPlatforms(),
		Formats:   []string{"png"},
		Quality:   95,
		Cache:     true,
		Jobs:      1,
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and returns
// a Config with defaults applied first and file values overlaid on top.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "yaml", "yml":
		v.SetConfigType("yaml")
	case "toml":
		v.SetConfigType("toml")
	default:
		// Default to yaml if unrecognised.
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Lists in the file replace the defaults rather than merging with them.
	if v.IsSet("platforms") {
		cfg.Platforms = nil
	}
	if v.IsSet("formats") {
		cfg.Formats = nil
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads configPath. When the file does not exist and the
// path was not given explicitly, the defaults are returned instead.
func LoadOrDefault(configPath string, explicit bool) (*Config, error) {
	if !explicit {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
	}
	return Load(configPath)
}

// Validate checks the Config for common errors.
// It returns a descriptive error if:
//   - Output is empty
//   - no platforms are configured, or a platform has an empty or
//     duplicate name or a non-positive size
//   - a format is not supported
//   - Quality is outside 1-100
//   - Jobs is less than 1
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("config: output is required")
	}

	if len(c.Platforms) == 0 {
		return fmt.Errorf("config: at least one platform is required")
	}
	seen := make(map[string]bool)
	for i, p := range c.Platforms {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("config: platform %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("config: duplicate platform %q", p.Name)
		}
		seen[p.Name] = true
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("config: platform %q has invalid size %s", p.Name, p.Size())
		}
	}

	if len(c.Formats) == 0 {
		return fmt.Errorf("config: at least one format is required")
	}
	for _, f := range c.Formats {
		if !slices.Contains(SupportedFormats, NormalizeFormat(f)) {
			return fmt.Errorf("config: unsupported format %q (want one of %s)", f, strings.Join(SupportedFormats, ", "))
		}
	}

	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("config: quality must be between 1 and 100 (got %d)", c.Quality)
	}

	if c.Jobs < 1 {
		return fmt.Errorf("config: jobs must be at least 1 (got %d)", c.Jobs)
	}

	return nil
}

// NormalizeFormat lowercases a format name and maps "jpg" to "jpeg".
func NormalizeFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "jpg" {
		return "jpeg"
	}
	return f
}

// SelectPlatforms returns the configured platforms whose names are in
// names, in configuration order. An empty names list selects every
// platform. Unknown names are an error.
func (c *Config) SelectPlatforms(names []string) ([]Platform, error) {
	if len(names) == 0 {
		return c.Platforms, nil
	}
	for _, n := range names {
		if !slices.ContainsFunc(c.Platforms, func(p Platform) bool { return p.Name == n }) {
			return nil, fmt.Errorf("unknown platform %q", n)
		}
	}
	var out []Platform
	for _, p := range c.Platforms {
		if slices.Contains(names, p.Name) {
			out = append(out, p)
		}
	}
	return out, nil
}

// WithOverrides applies CLI flag overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is returned
// for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "output":
			if s, ok := val.(string); ok && s != "" {
				c.Output = s
			}
		case "fonts":
			if s, ok := val.(string); ok && s != "" {
				c.Fonts.Dir = s
			}
		case "copy":
			if s, ok := val.(string); ok && s != "" {
				c.Copy = s
			}
		case "formats":
			if f, ok := val.([]string); ok && len(f) > 0 {
				c.Formats = f
			}
		case "quality":
			if n, ok := val.(int); ok && n > 0 {
				c.Quality = n
			}
		case "jobs":
			if n, ok := val.(int); ok && n > 0 {
				c.Jobs = n
			}
		case "cache":
			if b, ok := val.(bool); ok {
				c.Cache = b
			}
		}
	}
	return c
}
