package sitegen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/devopsjogja/sitegen/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

func marshalFeed(cfg SiteConfig, posts []content.Document) ([]byte, error) {
	items := make([]rssItem, 0, len(posts))
	for _, d := range posts {
		pubDate := ""
		if t, ok := d.Time(); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := Route{Kind: RouteBlogDetail, Slug: d.Slug}.URL(cfg.URL)
		items = append(items, rssItem{
			Title:       d.Title,
			Link:        postURL,
			Description: d.Summary(),
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        cfg.URL,
			Description: cfg.Description,
			Items:       items,
		},
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(feed); err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}
	return buf.Bytes(), nil
}
