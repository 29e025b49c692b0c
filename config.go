package sitegen

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/devopsjogja/sitegen/images"
)

// Content and image category names are fixed; authors drop files into these
// directories and the engine finds them.
const (
	blogCategory    = "blog"
	eventCategory   = "event"
	galleryCategory = "gallery"
	convertedSubdir = "converted"
)

// SiteConfig holds all configuration for a sitegen site.
type SiteConfig struct {
	Name        string // Site name (default "Community Site")
	URL         string // Canonical absolute base URL (default "http://localhost:3008")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr       string // Listen address for serve mode (default ":3008")
	ContentDir string // Markdown and YAML content root (default "content")
	StaticDir  string // Static asset root (default "static")
	OutputDir  string // Static build output tree (default "dist")

	CalendarAPIURL string // External calendar API used by the schedule page
	MetricsEnabled bool   // Expose Prometheus metrics at /metrics in serve mode
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Community Site"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3008"
	}
	if c.Addr == "" {
		c.Addr = ":3008"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
}

func (c SiteConfig) blogContentDir() string {
	return filepath.Join(c.ContentDir, blogCategory)
}

func (c SiteConfig) eventContentDir() string {
	return filepath.Join(c.ContentDir, eventCategory)
}

func (c SiteConfig) dataPath(name string) string {
	return filepath.Join(c.ContentDir, name)
}

func (c SiteConfig) imagesRoot() string {
	return filepath.Join(c.StaticDir, "images")
}

func (c SiteConfig) galleryDir() string {
	return filepath.Join(c.imagesRoot(), galleryCategory)
}

func (c SiteConfig) convertedDir() string {
	return filepath.Join(c.galleryDir(), convertedSubdir)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithAssetFS installs a fallback filesystem for static assets. Files in the
// site's static directory always win; the fallback fills in whatever the site
// does not provide, such as the default stylesheet.
func WithAssetFS(fsys fs.FS) Option {
	return func(a *App) {
		a.assetFS = fsys
	}
}

// WithHEICDecoder installs a HEIC decoder. Without one, HEIC gallery sources
// are skipped rather than failing the build.
func WithHEICDecoder(decode images.DecodeFunc) Option {
	return func(a *App) {
		a.heicDecode = decode
	}
}

// WithClock overrides the time source used for upcoming/past event
// partitioning. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithLogger sets the structured logger used by the pipeline.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}
