package copydeck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDeck writes content to name inside a temp dir and returns the path.
func writeDeck(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.Hero.Title != "See What's Hidden" {
		t.Errorf("Hero.Title = %q", d.Hero.Title)
	}
	if d.Hero.Tagline != "Layers" {
		t.Errorf("Hero.Tagline = %q", d.Hero.Tagline)
	}
	if len(d.Export.Options) != 3 {
		t.Errorf("Export.Options = %d, want 3", len(d.Export.Options))
	}
	if len(d.Steps.Steps) != 3 {
		t.Errorf("Steps.Steps = %d, want 3", len(d.Steps.Steps))
	}
	if err := d.Validate(); err != nil {
		t.Errorf("default deck invalid: %v", err)
	}
}

func TestProjectLabel(t *testing.T) {
	if got := Default().ProjectLabel(5); got != "5 layers" {
		t.Errorf("ProjectLabel(5) = %q", got)
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "copy.yaml",
			content: `hero:
  title: "Peel It Apart"
steps:
  steps:
    - name: One
      description: First
`,
		},
		{
			name: "toml",
			file: "copy.toml",
			content: `[hero]
title = "Peel It Apart"

[[steps.steps]]
name = "One"
description = "First"
`,
		},
		{
			name:    "json",
			file:    "copy.json",
			content: `{"hero": {"title": "Peel It Apart"}, "steps": {"steps": [{"name": "One", "description": "First"}]}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load(writeDeck(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if d.Hero.Title != "Peel It Apart" {
				t.Errorf("Hero.Title = %q", d.Hero.Title)
			}
			// Untouched keys keep their defaults.
			if d.Hero.Subtitle != "AI-powered layer extraction" {
				t.Errorf("Hero.Subtitle = %q, want default", d.Hero.Subtitle)
			}
			if d.Steps.Title != "Three Simple Steps" {
				t.Errorf("Steps.Title = %q, want default", d.Steps.Title)
			}
			// Lists in the file replace the default list.
			if len(d.Steps.Steps) != 1 || d.Steps.Steps[0].Name != "One" {
				t.Errorf("Steps.Steps = %+v", d.Steps.Steps)
			}
			if len(d.Export.Options) != 3 {
				t.Errorf("Export.Options = %d, want default 3", len(d.Export.Options))
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unsupported extension", "copy.txt", "hello", "unsupported format"},
		{"bad yaml", "copy.yaml", "hero: [unclosed", "parsing"},
		{"empty title", "copy.yaml", "viewer:\n  title: \"\"\n", "viewer: title is required"},
		{"no options", "copy.json", `{"export": {"options": []}}`, "at least one option"},
		{"bad label", "copy.toml", "[projects]\nlabel = \"layers\"\n", "exactly one %d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDeck(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFingerprint(t *testing.T) {
	a, b := Default(), Default()
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical decks have different fingerprints")
	}
	b.Hero.Tagline = "Other"
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("fingerprint ignores tagline change")
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	data, err := Default().YAML()
	if err != nil {
		t.Fatal(err)
	}
	path := writeDeck(t, "copy.yaml", string(data))
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Fingerprint() != Default().Fingerprint() {
		t.Error("YAML output does not load back to the default deck")
	}
}
