package images

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// supportedExts covers every gallery source format. Lookup is on the
// lowercased extension, which also covers .HEIC shot straight off a phone.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
}

// Image is one display-ready gallery entry.
type Image struct {
	Path           string // relative to the static asset root, slash-separated
	Filename       string
	Alt            string // human-readable, derived from the filename
	OriginalFormat string // upper-cased source format tag, e.g. "HEIC"
}

// Indexer scans a gallery directory and produces a deterministic image list,
// transcoding HEIC sources on the way through.
type Indexer struct {
	staticRoot string
	trans      *Transcoder
	caser      cases.Caser
	log        *slog.Logger
}

// NewIndexer creates an Indexer. Paths in emitted Images are made relative
// to staticRoot. A nil logger falls back to slog.Default.
func NewIndexer(staticRoot string, trans *Transcoder, log *slog.Logger) *Indexer {
	if log == nil {
		log = slog.Default()
	}
	return &Indexer{
		staticRoot: staticRoot,
		trans:      trans,
		caser:      cases.Title(language.English),
		log:        log,
	}
}

// Index enumerates supported image files in dir, non-recursively. Exactly one
// Image is emitted per source file; HEIC sources map to their converted JPEG
// sibling and are skipped entirely when conversion is impossible. Anything
// inside the transcoder's output directory is never treated as a source, so
// converted output cannot feed back into the scan. The result is sorted
// ascending by filename for reproducible builds.
func (ix *Indexer) Index(dir string) ([]Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read gallery dir %s: %w", dir, err)
	}

	var out []Image
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if ix.trans.Contains(path) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !supportedExts[ext] {
			continue
		}

		if ext == ".heic" {
			converted, err := ix.trans.Transcode(path)
			if err != nil {
				if errors.Is(err, ErrHEICUnavailable) {
					ix.log.Info("skipping HEIC image, no decoder installed", "file", e.Name())
				} else {
					ix.log.Warn("skipping HEIC image", "file", e.Name(), "error", err)
				}
				continue
			}
			out = append(out, Image{
				Path:           ix.relPath(converted),
				Filename:       filepath.Base(converted),
				Alt:            ix.altText(e.Name()),
				OriginalFormat: "HEIC",
			})
			continue
		}

		out = append(out, Image{
			Path:           ix.relPath(path),
			Filename:       e.Name(),
			Alt:            ix.altText(e.Name()),
			OriginalFormat: strings.ToUpper(strings.TrimPrefix(ext, ".")),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out, nil
}

func (ix *Indexer) relPath(path string) string {
	rel, err := filepath.Rel(ix.staticRoot, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// altText turns "summer-meetup_2024.jpg" into "Summer Meetup 2024".
func (ix *Indexer) altText(filename string) string {
	base, _, _ := strings.Cut(filename, ".")
	spaced := strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return ix.caser.String(spaced)
}
