// Package output encodes rendered screenshots to disk and keeps a render
// cache so unchanged screenshots are not re-rendered across runs.
package output

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// cacheManifestVersion is bumped when the cache format or the renderer
// output changes.
const cacheManifestVersion = "1"

// Cache records which screenshots were written with which inputs. All
// methods are safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	dir      string        // e.g. .storeshots/cache/
	manifest CacheManifest // loaded from manifest.json
}

// CacheManifest is the top-level structure persisted as manifest.json.
type CacheManifest struct {
	Version string                 `json:"version"`
	Entries map[string]*CacheEntry `json:"entries"` // keyed by platform/template
}

// CacheEntry records the inputs and outputs of a single screenshot.
type CacheEntry struct {
	Fingerprint string   `json:"fingerprint"`
	Files       []string `json:"files"`
}

// NewCache creates a Cache rooted at cacheDir. If a manifest.json already
// exists there it is loaded; otherwise an empty manifest is initialised.
func NewCache(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	c := &Cache{
		dir: cacheDir,
		manifest: CacheManifest{
			Version: cacheManifestVersion,
			Entries: make(map[string]*CacheEntry),
		},
	}

	manifestPath := filepath.Join(cacheDir, "manifest.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading cache manifest: %w", err)
	}

	var m CacheManifest
	if err := json.Unmarshal(data, &m); err != nil {
		// Corrupt manifest, start fresh.
		return c, nil
	}
	if m.Version != cacheManifestVersion {
		// Stale manifest from another version.
		return c, nil
	}
	if m.Entries == nil {
		m.Entries = make(map[string]*CacheEntry)
	}
	c.manifest = m
	return c, nil
}

// Lookup reports whether key was last written with the given fingerprint
// to exactly the given files, and all of them are still present and
// non-empty.
func (c *Cache) Lookup(key, fingerprint string, files []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.manifest.Entries[key]
	if !ok || entry.Fingerprint != fingerprint || len(files) == 0 {
		return false
	}
	if !slices.Equal(entry.Files, files) {
		return false
	}
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil || info.Size() == 0 {
			return false
		}
	}
	return true
}

// Store adds or updates the entry for key and persists the manifest.
func (c *Cache) Store(key, fingerprint string, files []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.manifest.Entries[key] = &CacheEntry{
		Fingerprint: fingerprint,
		Files:       files,
	}
	return c.saveManifest()
}

// Len returns the number of entries in the manifest.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.manifest.Entries)
}

// saveManifest writes the current manifest to manifest.json in the cache
// directory. The caller must hold c.mu.
func (c *Cache) saveManifest() error {
	data, err := json.MarshalIndent(c.manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling cache manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(c.dir, "manifest.json"), data, 0o644)
}

// Fingerprint returns the SHA-256 hex digest of parts, each terminated by a
// NUL byte so that ("ab", "c") and ("a", "bc") differ.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
