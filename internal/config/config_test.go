package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testdataPath returns the absolute path to a file inside the testdata
// directory, relative to this test file's location on disk.
func testdataPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// ---------------------------------------------------------------------------
// TestDefault
// ---------------------------------------------------------------------------

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "screenshots" {
		t.Errorf("Output: got %q, want %q", cfg.Output, "screenshots")
	}
	if cfg.Fonts.Dir != "fonts" {
		t.Errorf("Fonts.Dir: got %q, want %q", cfg.Fonts.Dir, "fonts")
	}
	if cfg.Fonts.Title != "InstrumentSans-Bold.ttf" {
		t.Errorf("Fonts.Title: got %q", cfg.Fonts.Title)
	}
	if cfg.Fonts.Num != "GeistMono-Bold.ttf" {
		t.Errorf("Fonts.Num: got %q", cfg.Fonts.Num)
	}
	if cfg.Quality != 95 {
		t.Errorf("Quality: got %d, want %d", cfg.Quality, 95)
	}
	if !cfg.Cache {
		t.Error("Cache: got false, want true")
	}
	if cfg.Jobs != 1 {
		t.Errorf("Jobs: got %d, want %d", cfg.Jobs, 1)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "png" {
		t.Errorf("Formats: got %v, want [png]", cfg.Formats)
	}

	want := []Platform{
		{Name: "ios", Width: 1290, Height: 2796},
		{Name: "android", Width: 1080, Height: 2400},
		{Name: "macos", Width: 2880, Height: 1800},
	}
	if len(cfg.Platforms) != len(want) {
		t.Fatalf("Platforms: got %d, want %d", len(cfg.Platforms), len(want))
	}
	for i, p := range want {
		if cfg.Platforms[i] != p {
			t.Errorf("Platforms[%d]: got %+v, want %+v", i, cfg.Platforms[i], p)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestLoad
// ---------------------------------------------------------------------------

func TestLoadMinimal(t *testing.T) {
	cfg, err := Load(testdataPath("config/minimal.yaml"))
	if err != nil {
		t.Fatalf("Load minimal config: %v", err)
	}

	if cfg.Output != "out/shots" {
		t.Errorf("Output: got %q, want %q", cfg.Output, "out/shots")
	}

	// Defaults should still be filled in
	if len(cfg.Platforms) != 3 {
		t.Errorf("Platforms: got %d, want 3", len(cfg.Platforms))
	}
	if cfg.Fonts.Dir != "fonts" {
		t.Errorf("Fonts.Dir: got %q, want %q", cfg.Fonts.Dir, "fonts")
	}
	if cfg.Quality != 95 {
		t.Errorf("Quality: got %d, want 95", cfg.Quality)
	}
	if !cfg.Cache {
		t.Error("Cache: got false, want true")
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(testdataPath("config/full.yaml"))
	if err != nil {
		t.Fatalf("Load full config: %v", err)
	}

	if cfg.Output != "build/store" {
		t.Errorf("Output: got %q", cfg.Output)
	}
	if cfg.Copy != "marketing/copy.yaml" {
		t.Errorf("Copy: got %q", cfg.Copy)
	}
	if cfg.Quality != 80 {
		t.Errorf("Quality: got %d, want 80", cfg.Quality)
	}
	if cfg.Cache {
		t.Error("Cache: got true, want false")
	}
	if cfg.Jobs != 3 {
		t.Errorf("Jobs: got %d, want 3", cfg.Jobs)
	}

	files := cfg.Fonts.Files()
	if cfg.Fonts.Dir != "assets/fonts" || files.Title != "Inter-Bold.ttf" || files.Step != "Inter-SemiBold.ttf" {
		t.Errorf("Fonts: got %+v", cfg.Fonts)
	}

	// Lists replace the defaults entirely.
	if len(cfg.Platforms) != 2 {
		t.Fatalf("Platforms: got %d, want 2", len(cfg.Platforms))
	}
	if cfg.Platforms[1] != (Platform{Name: "ipad", Width: 2048, Height: 2732}) {
		t.Errorf("Platforms[1]: got %+v", cfg.Platforms[1])
	}
	if strings.Join(cfg.Formats, ",") != "png,webp" {
		t.Errorf("Formats: got %v", cfg.Formats)
	}
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(testdataPath("config/full.toml"))
	if err != nil {
		t.Fatalf("Load toml config: %v", err)
	}
	if cfg.Output != "build/store" {
		t.Errorf("Output: got %q", cfg.Output)
	}
	if cfg.Jobs != 2 {
		t.Errorf("Jobs: got %d, want 2", cfg.Jobs)
	}
	if len(cfg.Platforms) != 1 || cfg.Platforms[0].Name != "macos" {
		t.Errorf("Platforms: got %+v", cfg.Platforms)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "jpeg" {
		t.Errorf("Formats: got %v", cfg.Formats)
	}
	// Unset font files keep their defaults.
	if cfg.Fonts.Dir != "assets/fonts" || cfg.Fonts.Title != "InstrumentSans-Bold.ttf" {
		t.Errorf("Fonts: got %+v", cfg.Fonts)
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(testdataPath("config/invalid.yaml"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid size") {
		t.Errorf("error %q should mention invalid size", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(testdataPath("config/nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), DefaultPath)

	cfg, err := LoadOrDefault(missing, false)
	if err != nil {
		t.Fatalf("implicit missing config: %v", err)
	}
	if cfg.Output != "screenshots" {
		t.Errorf("Output: got %q, want default", cfg.Output)
	}

	if _, err := LoadOrDefault(missing, true); err == nil {
		t.Error("explicit missing config should fail")
	}

	cfg, err = LoadOrDefault(testdataPath("config/minimal.yaml"), false)
	if err != nil {
		t.Fatalf("existing config: %v", err)
	}
	if cfg.Output != "out/shots" {
		t.Errorf("Output: got %q, want %q", cfg.Output, "out/shots")
	}
}

// ---------------------------------------------------------------------------
// TestValidate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty output", func(c *Config) { c.Output = " " }, "output is required"},
		{"no platforms", func(c *Config) { c.Platforms = nil }, "at least one platform"},
		{"unnamed platform", func(c *Config) { c.Platforms[0].Name = "" }, "has no name"},
		{"duplicate platform", func(c *Config) { c.Platforms[1].Name = "ios" }, "duplicate platform"},
		{"zero height", func(c *Config) { c.Platforms[2].Height = 0 }, "invalid size"},
		{"no formats", func(c *Config) { c.Formats = nil }, "at least one format"},
		{"unknown format", func(c *Config) { c.Formats = []string{"gif"} }, "unsupported format"},
		{"quality too high", func(c *Config) { c.Quality = 101 }, "quality"},
		{"quality zero", func(c *Config) { c.Quality = 0 }, "quality"},
		{"zero jobs", func(c *Config) { c.Jobs = 0 }, "jobs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}

	t.Run("jpg alias accepted", func(t *testing.T) {
		cfg := Default()
		cfg.Formats = []string{"PNG", "jpg"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestNormalizeFormat(t *testing.T) {
	tests := map[string]string{
		"png":   "png",
		" PNG ": "png",
		"jpg":   "jpeg",
		"JPEG":  "jpeg",
		"webp":  "webp",
	}
	for in, want := range tests {
		if got := NormalizeFormat(in); got != want {
			t.Errorf("NormalizeFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestSelectPlatforms
// ---------------------------------------------------------------------------

func TestSelectPlatforms(t *testing.T) {
	cfg := Default()

	all, err := cfg.SelectPlatforms(nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("SelectPlatforms(nil) = %v, %v", all, err)
	}

	// Result follows config order, not argument order.
	got, err := cfg.SelectPlatforms([]string{"macos", "ios"})
	if err != nil {
		t.Fatalf("SelectPlatforms: %v", err)
	}
	if len(got) != 2 || got[0].Name != "ios" || got[1].Name != "macos" {
		t.Errorf("SelectPlatforms: got %+v", got)
	}

	if _, err := cfg.SelectPlatforms([]string{"windows"}); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestPlatformSize(t *testing.T) {
	if got := (Platform{Name: "ios", Width: 1290, Height: 2796}).Size(); got != "1290x2796" {
		t.Errorf("Size() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestWithOverrides
// ---------------------------------------------------------------------------

func TestWithOverrides(t *testing.T) {
	cfg := Default()

	result := cfg.WithOverrides(map[string]any{
		"output":  "dist",
		"fonts":   "/opt/fonts",
		"copy":    "copy.toml",
		"formats": []string{"webp"},
		"jobs":    4,
		"quality": 70,
		"cache":   false,
	})

	// WithOverrides returns the same pointer
	if result != cfg {
		t.Error("WithOverrides should return the same config pointer")
	}

	if cfg.Output != "dist" {
		t.Errorf("Output: got %q, want %q", cfg.Output, "dist")
	}
	if cfg.Fonts.Dir != "/opt/fonts" {
		t.Errorf("Fonts.Dir: got %q", cfg.Fonts.Dir)
	}
	if cfg.Copy != "copy.toml" {
		t.Errorf("Copy: got %q", cfg.Copy)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "webp" {
		t.Errorf("Formats: got %v", cfg.Formats)
	}
	if cfg.Jobs != 4 {
		t.Errorf("Jobs: got %d, want 4", cfg.Jobs)
	}
	if cfg.Quality != 70 {
		t.Errorf("Quality: got %d, want 70", cfg.Quality)
	}
	if cfg.Cache {
		t.Error("Cache: got true, want false")
	}

	// Zero values leave the config untouched.
	cfg.WithOverrides(map[string]any{"output": "", "jobs": 0, "formats": []string{}})
	if cfg.Output != "dist" || cfg.Jobs != 4 || len(cfg.Formats) != 1 {
		t.Errorf("zero overrides changed config: %+v", cfg)
	}
}
