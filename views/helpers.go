package views

import (
	"encoding/json"
	"html"
	"strings"
	"time"

	"github.com/devopsjogja/sitegen"
	"github.com/devopsjogja/sitegen/content"
)

func esc(s string) string {
	return html.EscapeString(s)
}

func mapString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// FormatDate renders a YYYY-MM-DD date for display, e.g. "June 1, 2024".
// Anything that does not parse comes back unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(content.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// Excerpt truncates text to at most length characters on a word boundary,
// appending an ellipsis when anything was cut.
func Excerpt(text string, length int) string {
	if len(text) <= length {
		return text
	}
	cut := text[:length]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block from site config.
func WebsiteJsonLD(cfg sitegen.SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      sitegen.BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// PostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a document.
func PostingJsonLD(cfg sitegen.SiteConfig, doc content.Document, url string) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "BlogPosting",
		"headline": doc.Title,
		"url":      url,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   url,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
	}
	if doc.HasDate() {
		data["datePublished"] = doc.Date
	}
	if summary := doc.Summary(); summary != "" {
		data["description"] = summary
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
