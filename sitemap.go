package sitegen

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/devopsjogja/sitegen/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority"`
}

// sitemapEntries enumerates every emitted page in a fixed order: the static
// routes first, then blog details, then event details, each in collection
// order. Detail entries carry the document date as lastmod when known.
func (a *App) sitemapEntries(blogs, events *content.Collection) []sitemapURL {
	base := a.Config.URL

	fixed := []Route{
		{Kind: RouteHome},
		{Kind: RouteBlogIndex},
		{Kind: RouteEventIndex},
		{Kind: RouteAbout},
		{Kind: RouteOrganizer},
		{Kind: RouteGallery},
		{Kind: RouteSchedule},
	}
	urls := make([]sitemapURL, 0, len(fixed)+blogs.Len()+events.Len())
	for _, r := range fixed {
		urls = append(urls, sitemapURL{Loc: r.URL(base), Priority: r.Priority()})
	}
	for _, d := range blogs.All() {
		r := Route{Kind: RouteBlogDetail, Slug: d.Slug}
		urls = append(urls, sitemapURL{Loc: r.URL(base), LastMod: d.Date, Priority: r.Priority()})
	}
	for _, d := range events.All() {
		r := Route{Kind: RouteEventDetail, Slug: d.Slug}
		urls = append(urls, sitemapURL{Loc: r.URL(base), LastMod: d.Date, Priority: r.Priority()})
	}
	return urls
}

func marshalSitemap(urls []sitemapURL) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return buf.Bytes(), nil
}
