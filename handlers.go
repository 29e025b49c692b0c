package sitegen

import (
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/devopsjogja/sitegen/content"
)

const homeListingLimit = 3

func (a *App) handleHome(c echo.Context) error {
	blogs, err := a.cache.Collection(a.Config.blogContentDir())
	if err != nil {
		return err
	}
	events, err := a.cache.Collection(a.Config.eventContentDir())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(a.homeData(blogs, events)))
}

func (a *App) homeData(blogs, events *content.Collection) HomeData {
	gallery, err := a.Gallery.Index(a.Config.galleryDir())
	if err != nil {
		// A broken gallery directory degrades the page, it does not kill it.
		a.log.Warn("gallery indexing failed", "error", err)
	}
	return HomeData{
		LatestBlogs:    blogs.Latest(homeListingLimit),
		UpcomingEvents: events.Upcoming(a.now(), homeListingLimit),
		LatestEvents:   events.Latest(homeListingLimit),
		Sponsors:       content.ActiveSponsors(content.LoadData(a.Config.dataPath("sponsor.yaml"))),
		GalleryImages:  gallery,
		CurrentURL:     Route{Kind: RouteHome}.URL(a.Config.URL),
	}
}

func (a *App) handleBlogIndex(c echo.Context) error {
	blogs, err := a.cache.Collection(a.Config.blogContentDir())
	if err != nil {
		return err
	}
	return Render(c, a.Views.BlogIndex(ListingData{
		Documents:  blogs.All(),
		CurrentURL: Route{Kind: RouteBlogIndex}.URL(a.Config.URL),
	}))
}

func (a *App) handleBlogDetail(c echo.Context) error {
	return a.renderDetail(c, a.Config.blogContentDir(), blogCategory, RouteBlogDetail, a.Views.BlogDetail)
}

func (a *App) handleEventIndex(c echo.Context) error {
	events, err := a.cache.Collection(a.Config.eventContentDir())
	if err != nil {
		return err
	}
	return Render(c, a.Views.EventIndex(ListingData{
		Documents:  events.All(),
		CurrentURL: Route{Kind: RouteEventIndex}.URL(a.Config.URL),
	}))
}

func (a *App) handleEventDetail(c echo.Context) error {
	return a.renderDetail(c, a.Config.eventContentDir(), eventCategory, RouteEventDetail, a.Views.EventDetail)
}

// renderDetail serves one document by slug. An unknown slug is a not-found
// condition, never a default document.
func (a *App) renderDetail(c echo.Context, dir, category string, kind RouteKind, view func(DetailData) templ.Component) error {
	docs, err := a.cache.Collection(dir)
	if err != nil {
		return err
	}
	doc, err := docs.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, view(a.detailData(doc, category, kind)))
}

func (a *App) detailData(doc content.Document, category string, kind RouteKind) DetailData {
	imagePath := ""
	if resolved := a.Resolver.Resolve(doc.Image, category); resolved != "" {
		imagePath = path.Join("images", category, resolved)
	}
	return DetailData{
		Document:   doc,
		ImagePath:  imagePath,
		CurrentURL: Route{Kind: kind, Slug: doc.Slug}.URL(a.Config.URL),
	}
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(PageData{
		Data:       content.LoadData(a.Config.dataPath("about.yaml")),
		CurrentURL: Route{Kind: RouteAbout}.URL(a.Config.URL),
	}))
}

func (a *App) handleOrganizer(c echo.Context) error {
	return Render(c, a.Views.Organizer(PageData{
		Data:       content.LoadData(a.Config.dataPath("organizer.yaml")),
		CurrentURL: Route{Kind: RouteOrganizer}.URL(a.Config.URL),
	}))
}

func (a *App) handleGallery(c echo.Context) error {
	imgs, err := a.Gallery.Index(a.Config.galleryDir())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Gallery(GalleryData{
		Images:     imgs,
		CurrentURL: Route{Kind: RouteGallery}.URL(a.Config.URL),
	}))
}

func (a *App) handleSchedule(c echo.Context) error {
	return Render(c, a.Views.Schedule(ScheduleData{
		APIURL:     a.Config.CalendarAPIURL,
		CurrentURL: Route{Kind: RouteSchedule}.URL(a.Config.URL),
	}))
}

func (a *App) handleSitemap(c echo.Context) error {
	blogs, err := a.cache.Collection(a.Config.blogContentDir())
	if err != nil {
		return err
	}
	events, err := a.cache.Collection(a.Config.eventContentDir())
	if err != nil {
		return err
	}
	body, err := marshalSitemap(a.sitemapEntries(blogs, events))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (a *App) handleFeed(c echo.Context) error {
	blogs, err := a.cache.Collection(a.Config.blogContentDir())
	if err != nil {
		return err
	}
	body, err := marshalFeed(a.Config, blogs.All())
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", body)
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt(a.Config.URL))
}

func robotsTxt(base string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
