package sitegen

import "testing"

func TestRouteOutputPath(t *testing.T) {
	tests := []struct {
		route Route
		want  string
	}{
		{Route{Kind: RouteHome}, "index.html"},
		{Route{Kind: RouteBlogIndex}, "blog/index.html"},
		{Route{Kind: RouteBlogDetail, Slug: "hello"}, "blog/hello/index.html"},
		{Route{Kind: RouteEventIndex}, "event/index.html"},
		{Route{Kind: RouteEventDetail, Slug: "meetup"}, "event/meetup/index.html"},
		{Route{Kind: RouteAbout}, "about/index.html"},
		{Route{Kind: RouteOrganizer}, "organizer/index.html"},
		{Route{Kind: RouteGallery}, "gallery/index.html"},
		{Route{Kind: RouteSchedule}, "schedule/index.html"},
		{Route{Kind: RouteNotFound}, "404.html"},
		{Route{Kind: RouteServerError}, "500.html"},
	}
	for _, tt := range tests {
		if got := tt.route.OutputPath(); got != tt.want {
			t.Errorf("OutputPath(%v) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestRouteURL(t *testing.T) {
	base := "https://example.org"
	tests := []struct {
		route Route
		want  string
	}{
		{Route{Kind: RouteHome}, "https://example.org"},
		{Route{Kind: RouteBlogIndex}, "https://example.org/blog/"},
		{Route{Kind: RouteBlogDetail, Slug: "hello"}, "https://example.org/blog/hello/"},
		{Route{Kind: RouteGallery}, "https://example.org/gallery/"},
	}
	for _, tt := range tests {
		if got := tt.route.URL(base); got != tt.want {
			t.Errorf("URL(%v) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestRoutePriority(t *testing.T) {
	tests := []struct {
		route Route
		want  string
	}{
		{Route{Kind: RouteHome}, "1.0"},
		{Route{Kind: RouteBlogIndex}, "0.8"},
		{Route{Kind: RouteEventIndex}, "0.8"},
		{Route{Kind: RouteBlogDetail}, "0.7"},
		{Route{Kind: RouteEventDetail}, "0.7"},
		{Route{Kind: RouteAbout}, "0.6"},
		{Route{Kind: RouteSchedule}, "0.6"},
		{Route{Kind: RouteNotFound}, ""},
		{Route{Kind: RouteServerError}, ""},
	}
	for _, tt := range tests {
		if got := tt.route.Priority(); got != tt.want {
			t.Errorf("Priority(%v) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.org", nil, "https://example.org"},
		{"https://example.org", []string{"blog"}, "https://example.org/blog/"},
		{"https://example.org/", []string{"blog", "post"}, "https://example.org/blog/post/"},
		{"http://localhost:3008", []string{"event"}, "http://localhost:3008/event/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}
