package build

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CleanDir removes the directory at dir and recreates it as an empty directory.
// If dir does not exist, it is simply created.
func CleanDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// DirSize calculates the total size in bytes of all files in dir, recursively.
// If dir does not exist, it returns 0.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil && os.IsNotExist(err) {
		return 0, nil
	}
	return total, err
}

// resolvePath joins p onto root unless p is already absolute.
func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// checkCleanTarget refuses to clean dir when it is, or contains, any of the
// protected paths. Empty entries are ignored.
func checkCleanTarget(dir string, protected []string) error {
	dir = filepath.Clean(dir)
	for _, p := range protected {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return fmt.Errorf("refusing to clean %s: it contains %s", dir, p)
		}
	}
	return nil
}
