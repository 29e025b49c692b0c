// Package content parses markdown documents with YAML front-matter into
// display-ready records and loads standalone YAML data documents.
//
// A Parser holds only configuration (the markdown renderer); it never caches
// parsed content, so repeated builds and requests are independent.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the single accepted front-matter date format.
const DateLayout = "2006-01-02"

// ErrNotFound is returned when no document matches a requested slug.
var ErrNotFound = errors.New("content: document not found")

// Document is one parsed content file. Immutable after parse; one per
// source file.
type Document struct {
	Slug  string         // derived from the source filename, unique per directory
	Title string         // front-matter title, or title-cased filename
	Date  string         // YYYY-MM-DD, empty when absent or unparsable
	Image string         // optional logical image reference from front-matter
	Body  string         // body rendered to HTML
	Meta  map[string]any // raw front-matter fields
}

// Summary returns the optional front-matter summary field.
func (d Document) Summary() string {
	return metaString(d.Meta, "summary")
}

// HasDate reports whether the document carries a valid date.
func (d Document) HasDate() bool {
	return d.Date != ""
}

// Time returns the parsed date. ok is false for unknown dates.
func (d Document) Time() (time.Time, bool) {
	if d.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Parser turns a directory of markdown files into a Collection.
type Parser struct {
	md    goldmark.Markdown
	caser cases.Caser
	log   *slog.Logger
}

// NewParser creates a Parser. A nil logger falls back to slog.Default.
func NewParser(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		caser: cases.Title(language.English),
		log:   log,
	}
}

// ParseAll parses every markdown file in dir into a Collection sorted by
// date descending (unknown dates last). A missing directory yields an empty
// collection. A document with broken front-matter or an invalid date is
// included with degraded fields; a single bad file never hides the rest.
func (p *Parser) ParseAll(dir string) (*Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return newCollection(nil), nil
		}
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		doc, err := p.ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			p.log.Warn("skipping unreadable document", "path", e.Name(), "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return newCollection(docs), nil
}

// ParseFile parses a single markdown file. The only error condition is an
// unreadable file; malformed front-matter degrades instead of failing.
func (p *Parser) ParseFile(path string) (Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		// Broken front-matter: render the whole file as body and derive
		// everything else from the filename.
		p.log.Warn("unparsable front-matter", "path", path, "error", err)
		meta = map[string]any{}
		body = source
	}

	var html bytes.Buffer
	if err := p.md.Convert(body, &html); err != nil {
		return Document{}, fmt.Errorf("render markdown: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc := Document{
		Slug:  Slugify(base),
		Title: p.titleFor(meta, base),
		Date:  p.dateFor(meta, path),
		Image: metaString(meta, "image"),
		Body:  html.String(),
		Meta:  meta,
	}
	return doc, nil
}

func (p *Parser) titleFor(meta map[string]any, base string) string {
	if t := metaString(meta, "title"); t != "" {
		return t
	}
	spaced := strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return p.caser.String(spaced)
}

// dateFor validates the front-matter date against DateLayout. Unparsable
// values are a content-authoring defect: they are logged as a warning and
// treated as unknown rather than failing the document.
func (p *Parser) dateFor(meta map[string]any, path string) string {
	raw, ok := meta["date"]
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case string:
		if _, err := time.Parse(DateLayout, v); err != nil {
			p.log.Warn("invalid front-matter date", "path", path, "date", v)
			return ""
		}
		return v
	case time.Time:
		return v.Format(DateLayout)
	default:
		p.log.Warn("invalid front-matter date", "path", path, "date", fmt.Sprint(raw))
		return ""
	}
}

func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// sortDocuments orders docs by date descending with unknown dates last.
// Ties break on slug so output is stable across runs.
func sortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		switch {
		case a.HasDate() != b.HasDate():
			return a.HasDate()
		case a.Date != b.Date:
			return a.Date > b.Date
		default:
			return a.Slug < b.Slug
		}
	})
}
