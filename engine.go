// Package sitegen is a community site engine built with Go, Echo, and templ.
// It parses markdown content with YAML front-matter, resolves and transcodes
// images, and either serves the site dynamically or materializes it as a
// static tree ready for a plain file server.
//
// Users provide their own templ components via the ViewFuncs struct; sitegen
// owns the content pipeline and hands each page a plain data bundle.
package sitegen

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/devopsjogja/sitegen/content"
	"github.com/devopsjogja/sitegen/images"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages, in serve mode and static builds alike. This is the
// inversion-of-control mechanism that keeps HTML out of the pipeline.
type ViewFuncs struct {
	Home        func(HomeData) templ.Component
	BlogIndex   func(ListingData) templ.Component
	BlogDetail  func(DetailData) templ.Component
	EventIndex  func(ListingData) templ.Component
	EventDetail func(DetailData) templ.Component
	About       func(PageData) templ.Component
	Organizer   func(PageData) templ.Component
	Gallery     func(GalleryData) templ.Component
	Schedule    func(ScheduleData) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central sitegen application. It wires together the content
// parser, image pipeline, Echo server, and user-provided templates. The only
// state it holds is configuration; content is re-read per request or build.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Views    ViewFuncs
	Parser   *content.Parser
	Resolver *images.Resolver
	Gallery  *images.Indexer

	cache        *content.Cache
	transcoder   *images.Transcoder
	heicDecode   images.DecodeFunc
	assetFS      fs.FS
	customRoutes []func(*App)
	now          func() time.Time
	log          *slog.Logger
}

// contentCacheTTL bounds how stale a served page can be after a content edit.
const contentCacheTTL = 30 * time.Second

// New creates a sitegen App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.Parser = content.NewParser(a.log)
	a.cache = content.NewCache(a.Parser, contentCacheTTL)
	a.Resolver = images.NewResolver(cfg.imagesRoot())
	a.transcoder = images.NewTranscoder(cfg.convertedDir(), a.heicDecode)
	a.Gallery = images.NewIndexer(cfg.StaticDir, a.transcoder, a.log)
	return a
}

// EnsureLayout creates the content and image directories the pipeline reads
// from. Run once, explicitly, at startup; resolution itself never mutates
// the filesystem.
func (a *App) EnsureLayout() error {
	if err := a.Resolver.EnsureLayout(blogCategory, eventCategory, galleryCategory); err != nil {
		return err
	}
	for _, dir := range []string{a.Config.blogContentDir(), a.Config.eventContentDir()} {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// Start prepares the directory layout, middleware, and routes, then serves
// the site dynamically until the server stops.
func (a *App) Start() error {
	if err := a.EnsureLayout(); err != nil {
		return fmt.Errorf("sitegen: ensure layout: %w", err)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	if a.assetFS != nil {
		e.GET("/static/*", a.handleStatic)
	} else {
		e.Static("/static", a.Config.StaticDir)
	}
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:slug/", a.handleBlogDetail)
	e.GET("/event/", a.handleEventIndex)
	e.GET("/event/:slug/", a.handleEventDetail)
	e.GET("/about/", a.handleAbout)
	e.GET("/organizer/", a.handleOrganizer)
	e.GET("/gallery/", a.handleGallery)
	e.GET("/schedule/", a.handleSchedule)

	if a.Config.MetricsEnabled {
		e.GET("/metrics", echoprometheus.NewHandler())
	}
}

// handleStatic serves static assets from the site's static directory, falling
// back to the embedded defaults for anything the site does not override.
func (a *App) handleStatic(c echo.Context) error {
	name := path.Clean("/" + c.Param("*"))[1:]
	if name == "" {
		return echo.ErrNotFound
	}
	onDisk := filepath.Join(a.Config.StaticDir, filepath.FromSlash(name))
	if info, err := os.Stat(onDisk); err == nil && !info.IsDir() {
		return c.File(onDisk)
	}
	if f, err := a.assetFS.Open(name); err == nil {
		f.Close()
		// FileFS is implemented by echo's concrete context but is not part of
		// the Context interface in echo v4.
		return c.(interface {
			FileFS(string, fs.FS) error
		}).FileFS(name, a.assetFS)
	}
	return echo.ErrNotFound
}
