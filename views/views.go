// Package views provides a default set of templ components for sitegen.
// Sites that want their own look replace these wholesale via ViewFuncs;
// the engine never depends on this package.
package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/devopsjogja/sitegen"
	"github.com/devopsjogja/sitegen/content"
	"github.com/devopsjogja/sitegen/images"
)

// Default returns a complete ViewFuncs set rendering plain semantic HTML.
func Default(cfg sitegen.SiteConfig) sitegen.ViewFuncs {
	return sitegen.ViewFuncs{
		Home:        func(d sitegen.HomeData) templ.Component { return home(cfg, d) },
		BlogIndex:   func(d sitegen.ListingData) templ.Component { return listing(cfg, "Blog", "blog", d) },
		BlogDetail:  func(d sitegen.DetailData) templ.Component { return detail(cfg, d) },
		EventIndex:  func(d sitegen.ListingData) templ.Component { return listing(cfg, "Events", "event", d) },
		EventDetail: func(d sitegen.DetailData) templ.Component { return detail(cfg, d) },
		About:       func(d sitegen.PageData) templ.Component { return dataPage(cfg, "About", d) },
		Organizer:   func(d sitegen.PageData) templ.Component { return organizer(cfg, d) },
		Gallery:     func(d sitegen.GalleryData) templ.Component { return gallery(cfg, d) },
		Schedule:    func(d sitegen.ScheduleData) templ.Component { return schedule(cfg, d) },
		NotFound:    func() templ.Component { return errorPage(cfg, "404", "Page not found") },
		ServerError: func() templ.Component { return errorPage(cfg, "500", "Something went wrong") },
	}
}

// page wraps a body writer in the shared HTML shell.
func page(cfg sitegen.SiteConfig, title, currentURL string, body func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\"/>\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
		fmt.Fprintf(&b, "<title>%s | %s</title>\n", esc(title), esc(cfg.Name))
		if cfg.Description != "" {
			fmt.Fprintf(&b, "<meta name=\"description\" content=%q/>\n", cfg.Description)
		}
		if currentURL != "" {
			fmt.Fprintf(&b, "<link rel=\"canonical\" href=%q/>\n", currentURL)
		}
		fmt.Fprintf(&b, "<script type=\"application/ld+json\">%s</script>\n", WebsiteJsonLD(cfg))
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/css/site.css\"/>\n")
		b.WriteString("</head>\n<body>\n")
		nav(&b, cfg)
		b.WriteString("<main>\n")
		body(&b)
		b.WriteString("</main>\n")
		fmt.Fprintf(&b, "<footer><p>%s</p></footer>\n", esc(cfg.Name))
		b.WriteString("</body>\n</html>\n")
		_, err := w.Write(b.Bytes())
		return err
	})
}

func nav(b *bytes.Buffer, cfg sitegen.SiteConfig) {
	b.WriteString("<nav>\n")
	fmt.Fprintf(b, "<a href=\"/\" class=\"brand\">%s</a>\n", esc(cfg.Name))
	for _, link := range [][2]string{
		{"/blog/", "Blog"},
		{"/event/", "Events"},
		{"/schedule/", "Schedule"},
		{"/gallery/", "Gallery"},
		{"/organizer/", "Organizers"},
		{"/about/", "About"},
	} {
		fmt.Fprintf(b, "<a href=%q>%s</a>\n", link[0], link[1])
	}
	b.WriteString("</nav>\n")
}

func home(cfg sitegen.SiteConfig, d sitegen.HomeData) templ.Component {
	return page(cfg, "Home", d.CurrentURL, func(b *bytes.Buffer) {
		fmt.Fprintf(b, "<section class=\"hero\"><h1>%s</h1>", esc(cfg.Name))
		if cfg.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>", esc(cfg.Description))
		}
		b.WriteString("</section>\n")

		docSection(b, "Upcoming Events", "event", d.UpcomingEvents)
		docSection(b, "Latest Posts", "blog", d.LatestBlogs)
		docSection(b, "Recent Events", "event", d.LatestEvents)

		if len(d.Sponsors) > 0 {
			b.WriteString("<section><h2>Sponsors</h2>\n<ul class=\"sponsors\">\n")
			for _, s := range d.Sponsors {
				name := mapString(s, "name")
				url := mapString(s, "url")
				if url != "" {
					fmt.Fprintf(b, "<li><a href=%q rel=\"noopener\">%s</a></li>\n", url, esc(name))
				} else {
					fmt.Fprintf(b, "<li>%s</li>\n", esc(name))
				}
			}
			b.WriteString("</ul>\n</section>\n")
		}

		if len(d.GalleryImages) > 0 {
			b.WriteString("<section><h2>Gallery</h2>\n")
			galleryGrid(b, d.GalleryImages)
			b.WriteString("</section>\n")
		}
	})
}

func listing(cfg sitegen.SiteConfig, title, basePath string, d sitegen.ListingData) templ.Component {
	return page(cfg, title, d.CurrentURL, func(b *bytes.Buffer) {
		fmt.Fprintf(b, "<h1>%s</h1>\n", esc(title))
		docSection(b, "", basePath, d.Documents)
	})
}

// docSection renders a list of document cards. An empty document slice
// renders an empty-state note rather than nothing, so pages built from empty
// content directories still have a body.
func docSection(b *bytes.Buffer, heading, basePath string, docs []content.Document) {
	b.WriteString("<section>")
	if heading != "" {
		fmt.Fprintf(b, "<h2>%s</h2>", esc(heading))
	}
	if len(docs) == 0 {
		b.WriteString("<p class=\"empty\">Nothing here yet.</p></section>\n")
		return
	}
	b.WriteString("\n<ul class=\"cards\">\n")
	for _, doc := range docs {
		fmt.Fprintf(b, "<li><a href=\"/%s/%s/\">%s</a>", basePath, doc.Slug, esc(doc.Title))
		if doc.HasDate() {
			fmt.Fprintf(b, " <time datetime=%q>%s</time>", doc.Date, esc(FormatDate(doc.Date)))
		}
		if summary := doc.Summary(); summary != "" {
			fmt.Fprintf(b, "<p>%s</p>", esc(Excerpt(summary, 150)))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n</section>\n")
}

func detail(cfg sitegen.SiteConfig, d sitegen.DetailData) templ.Component {
	doc := d.Document
	return page(cfg, doc.Title, d.CurrentURL, func(b *bytes.Buffer) {
		b.WriteString("<article>\n<header>")
		fmt.Fprintf(b, "<h1>%s</h1>", esc(doc.Title))
		if doc.HasDate() {
			fmt.Fprintf(b, "<time datetime=%q>%s</time>", doc.Date, esc(FormatDate(doc.Date)))
		}
		b.WriteString("</header>\n")
		if d.ImagePath != "" {
			fmt.Fprintf(b, "<img src=\"/static/%s\" alt=%q/>\n", d.ImagePath, doc.Title)
		}
		fmt.Fprintf(b, "<script type=\"application/ld+json\">%s</script>\n", PostingJsonLD(cfg, doc, d.CurrentURL))
		// Body is already rendered, trusted HTML from the markdown pipeline.
		b.WriteString(doc.Body)
		b.WriteString("\n</article>\n")
	})
}

func dataPage(cfg sitegen.SiteConfig, title string, d sitegen.PageData) templ.Component {
	return page(cfg, title, d.CurrentURL, func(b *bytes.Buffer) {
		if t := mapString(d.Data, "title"); t != "" {
			title = t
		}
		fmt.Fprintf(b, "<h1>%s</h1>\n", esc(title))
		if desc := mapString(d.Data, "description"); desc != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", esc(desc))
		}
	})
}

func organizer(cfg sitegen.SiteConfig, d sitegen.PageData) templ.Component {
	return page(cfg, "Organizers", d.CurrentURL, func(b *bytes.Buffer) {
		b.WriteString("<h1>Organizers</h1>\n")
		members, _ := d.Data["organizers"].([]any)
		if len(members) == 0 {
			b.WriteString("<p class=\"empty\">Nothing here yet.</p>\n")
			return
		}
		b.WriteString("<ul class=\"organizers\">\n")
		for _, m := range members {
			person, ok := m.(map[string]any)
			if !ok {
				continue
			}
			fmt.Fprintf(b, "<li><strong>%s</strong>", esc(mapString(person, "name")))
			if role := mapString(person, "role"); role != "" {
				fmt.Fprintf(b, " <span>%s</span>", esc(role))
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	})
}

func gallery(cfg sitegen.SiteConfig, d sitegen.GalleryData) templ.Component {
	return page(cfg, "Gallery", d.CurrentURL, func(b *bytes.Buffer) {
		b.WriteString("<h1>Gallery</h1>\n")
		if len(d.Images) == 0 {
			b.WriteString("<p class=\"empty\">Nothing here yet.</p>\n")
			return
		}
		galleryGrid(b, d.Images)
	})
}

func galleryGrid(b *bytes.Buffer, imgs []images.Image) {
	b.WriteString("<ul class=\"gallery\">\n")
	for _, img := range imgs {
		fmt.Fprintf(b, "<li><img src=\"/static/%s\" alt=%q loading=\"lazy\"/></li>\n", img.Path, img.Alt)
	}
	b.WriteString("</ul>\n")
}

func schedule(cfg sitegen.SiteConfig, d sitegen.ScheduleData) templ.Component {
	return page(cfg, "Schedule", d.CurrentURL, func(b *bytes.Buffer) {
		b.WriteString("<h1>Schedule</h1>\n")
		// Events load client-side from the calendar API.
		fmt.Fprintf(b, "<div id=\"schedule\" data-api-url=%q></div>\n", d.APIURL)
		b.WriteString("<script src=\"/static/js/schedule.js\"></script>\n")
	})
}

func errorPage(cfg sitegen.SiteConfig, code, message string) templ.Component {
	return page(cfg, code, "", func(b *bytes.Buffer) {
		fmt.Fprintf(b, "<h1>%s</h1>\n<p>%s</p>\n<p><a href=\"/\">Back to home</a></p>\n", esc(code), esc(message))
	})
}
