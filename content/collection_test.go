package content

import (
	"errors"
	"testing"
	"time"
)

func dated(slug, date string) Document {
	return Document{Slug: slug, Title: slug, Date: date}
}

func TestLatestCapsAndPreservesOrder(t *testing.T) {
	coll := newCollection([]Document{
		dated("a", "2024-01-01"),
		dated("b", "2024-03-01"),
		dated("c", "2024-02-01"),
		{Slug: "d", Title: "d"},
	})

	got := coll.Latest(2)
	if len(got) != 2 || got[0].Slug != "b" || got[1].Slug != "c" {
		t.Fatalf("Latest(2) = %v", slugs(got))
	}
	if len(coll.Latest(0)) != 4 {
		t.Fatalf("Latest(0) should return everything")
	}
	if len(coll.Latest(10)) != 4 {
		t.Fatalf("Latest beyond length should return everything")
	}
}

func TestBySlug(t *testing.T) {
	coll := newCollection([]Document{dated("known", "2024-01-01")})

	doc, err := coll.BySlug("known")
	if err != nil {
		t.Fatalf("BySlug(known): %v", err)
	}
	if doc.Slug != "known" {
		t.Fatalf("got %q", doc.Slug)
	}

	if _, err := coll.BySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("BySlug(missing) = %v, want ErrNotFound", err)
	}
}

func TestUpcomingAndPastPartition(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	coll := newCollection([]Document{
		dated("long-past", "2024-01-01"),
		dated("yesterday", "2024-06-14"),
		dated("today", "2024-06-15"),
		dated("soon", "2024-07-01"),
		dated("later", "2024-09-01"),
		{Slug: "undated", Title: "undated"},
	})

	up := coll.Upcoming(now, 0)
	if got, want := slugs(up), "today,soon,later"; got != want {
		t.Fatalf("Upcoming = %s, want %s", got, want)
	}

	if got := slugs(coll.Upcoming(now, 2)); got != "today,soon" {
		t.Fatalf("Upcoming capped = %s", got)
	}

	past := coll.Past(now)
	if got, want := slugs(past), "yesterday,long-past"; got != want {
		t.Fatalf("Past = %s, want %s", got, want)
	}
}

func slugs(docs []Document) string {
	out := ""
	for i, d := range docs {
		if i > 0 {
			out += ","
		}
		out += d.Slug
	}
	return out
}
