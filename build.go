package sitegen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"

	"github.com/devopsjogja/sitegen/content"
)

// BuildOptions controls a static build.
type BuildOptions struct {
	OutputDir string // overrides SiteConfig.OutputDir when set
	Domain    string // when set, a CNAME marker file is written
}

// Build materializes every route as a file on disk. The previous output tree
// is deleted first and static assets are copied verbatim, so no stale file
// survives removed content; the whole tree is rebuilt from scratch. Failures
// on the output root are fatal; everything upstream of it has already
// degraded per item.
func (a *App) Build(opts BuildOptions) error {
	out := opts.OutputDir
	if out == "" {
		out = a.Config.OutputDir
	}
	start := time.Now()
	a.log.Info("starting static build", "output", out)

	if err := a.EnsureLayout(); err != nil {
		return fmt.Errorf("ensure layout: %w", err)
	}

	blogs, err := a.Parser.ParseAll(a.Config.blogContentDir())
	if err != nil {
		return err
	}
	events, err := a.Parser.ParseAll(a.Config.eventContentDir())
	if err != nil {
		return err
	}

	// Index before copying static assets: transcoding writes converted JPEGs
	// into the source static tree, and the copy must carry them.
	gallery, err := a.Gallery.Index(a.Config.galleryDir())
	if err != nil {
		a.log.Warn("gallery indexing failed", "error", err)
	}

	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clear output dir: %w", err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := a.copyStatic(out); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	base := a.Config.URL
	pages := []struct {
		route Route
		cmp   templ.Component
	}{
		{Route{Kind: RouteHome}, a.Views.Home(a.homeData(blogs, events))},
		{Route{Kind: RouteBlogIndex}, a.Views.BlogIndex(ListingData{
			Documents:  blogs.All(),
			CurrentURL: Route{Kind: RouteBlogIndex}.URL(base),
		})},
		{Route{Kind: RouteEventIndex}, a.Views.EventIndex(ListingData{
			Documents:  events.All(),
			CurrentURL: Route{Kind: RouteEventIndex}.URL(base),
		})},
		{Route{Kind: RouteAbout}, a.Views.About(PageData{
			Data:       content.LoadData(a.Config.dataPath("about.yaml")),
			CurrentURL: Route{Kind: RouteAbout}.URL(base),
		})},
		{Route{Kind: RouteOrganizer}, a.Views.Organizer(PageData{
			Data:       content.LoadData(a.Config.dataPath("organizer.yaml")),
			CurrentURL: Route{Kind: RouteOrganizer}.URL(base),
		})},
		{Route{Kind: RouteGallery}, a.Views.Gallery(GalleryData{
			Images:     gallery,
			CurrentURL: Route{Kind: RouteGallery}.URL(base),
		})},
		{Route{Kind: RouteSchedule}, a.Views.Schedule(ScheduleData{
			APIURL:     a.Config.CalendarAPIURL,
			CurrentURL: Route{Kind: RouteSchedule}.URL(base),
		})},
		{Route{Kind: RouteNotFound}, a.Views.NotFound()},
		{Route{Kind: RouteServerError}, a.Views.ServerError()},
	}
	for _, d := range blogs.All() {
		pages = append(pages, struct {
			route Route
			cmp   templ.Component
		}{Route{Kind: RouteBlogDetail, Slug: d.Slug}, a.Views.BlogDetail(a.detailData(d, blogCategory, RouteBlogDetail))})
	}
	for _, d := range events.All() {
		pages = append(pages, struct {
			route Route
			cmp   templ.Component
		}{Route{Kind: RouteEventDetail, Slug: d.Slug}, a.Views.EventDetail(a.detailData(d, eventCategory, RouteEventDetail))})
	}

	for _, p := range pages {
		if err := a.emit(out, p.route, p.cmp); err != nil {
			return err
		}
	}

	if err := a.writeMachineFiles(out, blogs, events, opts.Domain); err != nil {
		return err
	}

	a.log.Info("static build complete", "pages", len(pages), "duration", time.Since(start))
	return nil
}

// emit resolves the route to its output path, creates intermediate
// directories, and writes the rendered page, overwriting prior content.
func (a *App) emit(outDir string, r Route, cmp templ.Component) error {
	target := filepath.Join(outDir, filepath.FromSlash(r.OutputPath()))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create page dir: %w", err)
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create page %s: %w", r.OutputPath(), err)
	}
	if err := cmp.Render(context.Background(), f); err != nil {
		f.Close()
		return fmt.Errorf("render page %s: %w", r.OutputPath(), err)
	}
	return f.Close()
}

// copyStatic copies the static asset tree verbatim into the output, then
// fills in any embedded default assets the site did not override.
// A missing static directory is not an error.
func (a *App) copyStatic(outDir string) error {
	staticOut := filepath.Join(outDir, "static")
	if _, err := os.Stat(a.Config.StaticDir); err == nil {
		if err := os.CopyFS(staticOut, os.DirFS(a.Config.StaticDir)); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	if a.assetFS == nil {
		return nil
	}
	return fs.WalkDir(a.assetFS, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		target := filepath.Join(staticOut, filepath.FromSlash(name))
		if _, err := os.Stat(target); err == nil {
			return nil
		}
		data, err := fs.ReadFile(a.assetFS, name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

// writeMachineFiles emits the root-level machine-readable files: sitemap,
// RSS feed, robots.txt, the .nojekyll marker that disables static-host
// post-processing, and optionally a CNAME custom-domain marker.
func (a *App) writeMachineFiles(out string, blogs, events *content.Collection, domain string) error {
	sitemap, err := marshalSitemap(a.sitemapEntries(blogs, events))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, "sitemap.xml"), sitemap, 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}

	feed, err := marshalFeed(a.Config, blogs.All())
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, "feed.xml"), feed, 0o644); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}

	if err := os.WriteFile(filepath.Join(out, "robots.txt"), []byte(robotsTxt(a.Config.URL)), 0o644); err != nil {
		return fmt.Errorf("write robots.txt: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, ".nojekyll"), nil, 0o644); err != nil {
		return fmt.Errorf("write .nojekyll: %w", err)
	}
	if domain != "" {
		if err := os.WriteFile(filepath.Join(out, "CNAME"), []byte(domain), 0o644); err != nil {
			return fmt.Errorf("write CNAME: %w", err)
		}
	}
	return nil
}
