// Package images resolves logical image references to files on disk, converts
// HEIC sources to JPEG, and indexes gallery directories into display-ready
// image lists.
package images

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extPriority is the probe order for extension-less references. WebP first is
// a deliberate bandwidth optimization; the order must not change or resolved
// output stops being reproducible.
var extPriority = []string{".webp", ".jpg", ".jpeg", ".png", ".gif"}

// Resolver maps author-supplied image names to files under per-category
// directories. Resolve is read-only; directory creation happens once in
// EnsureLayout.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver rooted at the image asset directory
// (e.g. "static/images").
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// EnsureLayout creates the category directories. Call once at startup;
// idempotent.
func (r *Resolver) EnsureLayout(categories ...string) error {
	for _, cat := range categories {
		if err := os.MkdirAll(filepath.Join(r.root, cat), 0o755); err != nil {
			return fmt.Errorf("create image dir %s: %w", cat, err)
		}
	}
	return nil
}

// Resolve returns the filename that exists for the logical name within the
// category. An explicit extension that exists on disk is pinned; otherwise
// the base name is probed against extPriority in order. When nothing matches
// the original name comes back unchanged so the caller renders a broken-image
// placeholder instead of failing the page. Empty input resolves to "".
func (r *Resolver) Resolve(name, category string) string {
	if name == "" {
		return ""
	}
	dir := filepath.Join(r.root, category)

	if strings.Contains(name, ".") {
		if fileExists(filepath.Join(dir, name)) {
			return name
		}
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, ext := range extPriority {
		candidate := base + ext
		if fileExists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
	return name
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
