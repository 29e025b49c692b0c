package sitegen

import "path"

// RouteKind identifies one logical page class.
type RouteKind int

const (
	RouteHome RouteKind = iota
	RouteBlogIndex
	RouteBlogDetail
	RouteEventIndex
	RouteEventDetail
	RouteAbout
	RouteOrganizer
	RouteGallery
	RouteSchedule
	RouteNotFound
	RouteServerError
)

// Route is a logical route identifier plus, for detail pages, a slug.
// Mapping a Route to an output path or URL is a pure function; every route
// maps to exactly one path.
type Route struct {
	Kind RouteKind
	Slug string
}

// segments returns the URL path segments for the route, empty for home.
func (r Route) segments() []string {
	switch r.Kind {
	case RouteHome:
		return nil
	case RouteBlogIndex:
		return []string{"blog"}
	case RouteBlogDetail:
		return []string{"blog", r.Slug}
	case RouteEventIndex:
		return []string{"event"}
	case RouteEventDetail:
		return []string{"event", r.Slug}
	case RouteAbout:
		return []string{"about"}
	case RouteOrganizer:
		return []string{"organizer"}
	case RouteGallery:
		return []string{"gallery"}
	case RouteSchedule:
		return []string{"schedule"}
	}
	return nil
}

// OutputPath maps the route to its file in the static output tree,
// slash-separated and relative to the output root. Every route becomes
// <route>/index.html except home and the error pages, which live at the
// top level.
func (r Route) OutputPath() string {
	switch r.Kind {
	case RouteNotFound:
		return "404.html"
	case RouteServerError:
		return "500.html"
	}
	return path.Join(append(r.segments(), "index.html")...)
}

// URL returns the absolute URL of the route under base.
func (r Route) URL(base string) string {
	return BuildURL(base, r.segments()...)
}

// Priority returns the sitemap priority weight for the route class.
// Error pages carry none; they are never listed.
func (r Route) Priority() string {
	switch r.Kind {
	case RouteHome:
		return "1.0"
	case RouteBlogIndex, RouteEventIndex:
		return "0.8"
	case RouteBlogDetail, RouteEventDetail:
		return "0.7"
	case RouteAbout, RouteOrganizer, RouteGallery, RouteSchedule:
		return "0.6"
	}
	return ""
}
