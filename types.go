package sitegen

import (
	"github.com/devopsjogja/sitegen/content"
	"github.com/devopsjogja/sitegen/images"
)

// HomeData is the bundle handed to the home page template.
type HomeData struct {
	LatestBlogs    []content.Document
	UpcomingEvents []content.Document
	LatestEvents   []content.Document
	Sponsors       []map[string]any
	GalleryImages  []images.Image
	CurrentURL     string
}

// ListingData is the bundle for blog and event index pages.
type ListingData struct {
	Documents  []content.Document
	CurrentURL string
}

// DetailData is the bundle for a single blog post or event page.
type DetailData struct {
	Document   content.Document
	ImagePath  string // resolved image path relative to the static root, "" when absent
	CurrentURL string
}

// PageData is the bundle for YAML-backed pages (about, organizer).
type PageData struct {
	Data       map[string]any
	CurrentURL string
}

// GalleryData is the bundle for the gallery page.
type GalleryData struct {
	Images     []images.Image
	CurrentURL string
}

// ScheduleData is the bundle for the schedule page, which fetches events
// client-side from an external calendar API.
type ScheduleData struct {
	APIURL     string
	CurrentURL string
}
