// Package scaffold writes a starter project: a config file and a copy deck
// holding the stock values, ready to be edited.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aellingwood/storeshots/internal/config"
	"github.com/aellingwood/storeshots/internal/copydeck"
)

// CopyFile is the copy deck file name written by Init.
const CopyFile = "copy.yaml"

const configHeader = `# storeshots configuration.
# Paths are relative to the directory the command runs in.
# Supported formats: png, webp, jpeg.
`

const copyHeader = `# Text shown in the screenshot scenes. Remove any key to keep its default.
`

// Init writes storeshots.yaml and copy.yaml into dir, creating dir and an
// empty fonts directory when needed. It refuses to overwrite existing
// files and returns the paths it created.
func Init(dir string) ([]string, error) {
	cfgPath := filepath.Join(dir, config.DefaultPath)
	copyPath := filepath.Join(dir, CopyFile)
	for _, p := range []string{cfgPath, copyPath} {
		if _, err := os.Stat(p); err == nil {
			return nil, fmt.Errorf("%s already exists", p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking %s: %w", p, err)
		}
	}

	cfg := config.Default()
	cfg.Copy = CopyFile

	cfgData, err := ConfigYAML(cfg)
	if err != nil {
		return nil, err
	}
	copyData, err := copydeck.Default().YAML()
	if err != nil {
		return nil, fmt.Errorf("encoding copy deck: %w", err)
	}

	fontsDir := filepath.Join(dir, cfg.Fonts.Dir)
	if err := os.MkdirAll(fontsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %q: %w", fontsDir, err)
	}

	files := []struct {
		path   string
		header string
		data   []byte
	}{
		{cfgPath, configHeader, cfgData},
		{copyPath, copyHeader, copyData},
	}
	var created []string
	for _, f := range files {
		if err := os.WriteFile(f.path, append([]byte(f.header), f.data...), 0o644); err != nil {
			return created, fmt.Errorf("writing %s: %w", f.path, err)
		}
		created = append(created, f.path)
	}
	return created, nil
}

// ConfigYAML encodes cfg as YAML with two-space indentation.
func ConfigYAML(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
