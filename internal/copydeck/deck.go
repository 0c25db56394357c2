// Package copydeck holds the marketing text shown in the screenshot scenes
// and loads overrides from YAML, TOML, or JSON files.
package copydeck

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Item is a named entry with a short description, used for export options
// and steps.
type Item struct {
	Name        string `yaml:"name"        toml:"name"        json:"name"`
	Description string `yaml:"description" toml:"description" json:"description"`
}

// Heading is a title with a subtitle.
type Heading struct {
	Title    string `yaml:"title"    toml:"title"    json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
}

// HeroCopy is the text of the hero scene.
type HeroCopy struct {
	Title    string `yaml:"title"    toml:"title"    json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Tagline  string `yaml:"tagline"  toml:"tagline"  json:"tagline"`
}

// ExportCopy is the text of the export scene.
type ExportCopy struct {
	Title    string `yaml:"title"    toml:"title"    json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Options  []Item `yaml:"options"  toml:"options"  json:"options"`
}

// ProjectsCopy is the text of the project grid scene. Label is a format
// string with a single %d receiving the layer count.
type ProjectsCopy struct {
	Title    string `yaml:"title"    toml:"title"    json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Label    string `yaml:"label"    toml:"label"    json:"label"`
}

// StepsCopy is the text of the step-by-step scene.
type StepsCopy struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Steps []Item `yaml:"steps" toml:"steps" json:"steps"`
}

// Deck is every user-visible string across the scenes.
type Deck struct {
	Hero     HeroCopy     `yaml:"hero"     toml:"hero"     json:"hero"`
	Viewer   Heading      `yaml:"viewer"   toml:"viewer"   json:"viewer"`
	Export   ExportCopy   `yaml:"export"   toml:"export"   json:"export"`
	Projects ProjectsCopy `yaml:"projects" toml:"projects" json:"projects"`
	Steps    StepsCopy    `yaml:"steps"    toml:"steps"    json:"steps"`
}

// Default returns the stock copy.
func Default() *Deck {
	return &Deck{
		Hero: HeroCopy{
			Title:    "See What's Hidden",
			Subtitle: "AI-powered layer extraction",
			Tagline:  "Layers",
		},
		Viewer: Heading{
			Title:    "Explore in 3D",
			Subtitle: "Navigate layers in dimensional space",
		},
		Export: ExportCopy{
			Title:    "Export Anywhere",
			Subtitle: "PNG, ZIP, or Layers Pack",
			Options: []Item{
				{Name: "PNG", Description: "Transparent layers"},
				{Name: "ZIP", Description: "All layers packaged"},
				{Name: "Pack", Description: "Editable format"},
			},
		},
		Projects: ProjectsCopy{
			Title:    "Your Projects",
			Subtitle: "Saved in the cloud",
			Label:    "%d layers",
		},
		Steps: StepsCopy{
			Title: "Three Simple Steps",
			Steps: []Item{
				{Name: "Import", Description: "Choose any image"},
				{Name: "Extract", Description: "AI finds layers"},
				{Name: "Export", Description: "Save & share"},
			},
		},
	}
}

// Load reads a copy deck from path and overlays it on Default. Keys absent
// from the file keep their default; lists present in the file replace the
// default list. The format is chosen by extension: .yaml, .yml, .toml, or
// .json.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading copy deck: %w", err)
	}

	d := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("copy deck %s: unsupported format %q", path, ext)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validating copy deck %s: %w", path, err)
	}
	return d, nil
}

// Validate reports missing titles, empty option and step lists, and a
// malformed project label.
func (d *Deck) Validate() error {
	var errs []error
	titles := map[string]string{
		"hero":     d.Hero.Title,
		"viewer":   d.Viewer.Title,
		"export":   d.Export.Title,
		"projects": d.Projects.Title,
		"steps":    d.Steps.Title,
	}
	for _, scene := range []string{"hero", "viewer", "export", "projects", "steps"} {
		if strings.TrimSpace(titles[scene]) == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", scene))
		}
	}
	if len(d.Export.Options) == 0 {
		errs = append(errs, errors.New("export: at least one option is required"))
	}
	if len(d.Steps.Steps) == 0 {
		errs = append(errs, errors.New("steps: at least one step is required"))
	}
	if strings.Count(d.Projects.Label, "%d") != 1 || strings.Count(d.Projects.Label, "%") != 1 {
		errs = append(errs, fmt.Errorf("projects: label must contain exactly one %%d (got %q)", d.Projects.Label))
	}
	return errors.Join(errs...)
}

// ProjectLabel returns the caption for a project card with n layers.
func (d *Deck) ProjectLabel(n int) string {
	return fmt.Sprintf(d.Projects.Label, n)
}

// Fingerprint returns a stable hash of the deck contents.
func (d *Deck) Fingerprint() string {
	data, err := json.Marshal(d)
	if err != nil {
		// Deck holds only strings and slices; Marshal cannot fail.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// YAML returns the deck encoded as YAML.
func (d *Deck) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
