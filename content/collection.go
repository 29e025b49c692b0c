package content

import (
	"sort"
	"time"
)

// Collection is an ordered set of documents from one content directory,
// sorted by date descending with unknown dates last.
type Collection struct {
	docs []Document
}

func newCollection(docs []Document) *Collection {
	sortDocuments(docs)
	return &Collection{docs: docs}
}

// Len returns the number of documents.
func (c *Collection) Len() int {
	return len(c.docs)
}

// All returns every document, newest first.
func (c *Collection) All() []Document {
	return c.docs
}

// Latest returns the first n documents of the descending-date order.
// n <= 0 returns everything.
func (c *Collection) Latest(n int) []Document {
	if n <= 0 || n >= len(c.docs) {
		return c.docs
	}
	return c.docs[:n]
}

// BySlug returns the document with the given slug, or ErrNotFound.
func (c *Collection) BySlug(slug string) (Document, error) {
	for _, d := range c.docs {
		if d.Slug == slug {
			return d, nil
		}
	}
	return Document{}, ErrNotFound
}

// Upcoming returns documents dated today or later, soonest first, capped at
// n (n <= 0 means no cap). Documents without a known date never appear here.
func (c *Collection) Upcoming(now time.Time, n int) []Document {
	today := now.Format(DateLayout)
	var out []Document
	for _, d := range c.docs {
		if d.HasDate() && d.Date >= today {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Slug < out[j].Slug
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Past returns documents dated strictly before today, newest first.
// Documents without a known date are excluded.
func (c *Collection) Past(now time.Time) []Document {
	today := now.Format(DateLayout)
	var out []Document
	for _, d := range c.docs {
		if d.HasDate() && d.Date < today {
			out = append(out, d)
		}
	}
	return out
}
