package sitegen

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
)

// text returns a component rendering a fixed marker string.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func testViews() ViewFuncs {
	return ViewFuncs{
		Home:        func(d HomeData) templ.Component { return text("home") },
		BlogIndex:   func(d ListingData) templ.Component { return text("blog-index") },
		BlogDetail:  func(d DetailData) templ.Component { return text("blog:" + d.Document.Slug) },
		EventIndex:  func(d ListingData) templ.Component { return text("event-index") },
		EventDetail: func(d DetailData) templ.Component { return text("event:" + d.Document.Slug) },
		About:       func(d PageData) templ.Component { return text("about") },
		Organizer:   func(d PageData) templ.Component { return text("organizer") },
		Gallery:     func(d GalleryData) templ.Component { return text("gallery") },
		Schedule:    func(d ScheduleData) templ.Component { return text("schedule") },
		NotFound:    func() templ.Component { return text("not-found") },
		ServerError: func() templ.Component { return text("server-error") },
	}
}

func testApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	root := t.TempDir()
	cfg := SiteConfig{
		Name:       "Test Community",
		URL:        "https://example.org",
		ContentDir: filepath.Join(root, "content"),
		StaticDir:  filepath.Join(root, "static"),
		OutputDir:  filepath.Join(root, "dist"),
	}
	return New(cfg, testViews(), opts...)
}

func writeContent(t *testing.T, app *App, category, name, body string) {
	t.Helper()
	dir := filepath.Join(app.Config.ContentDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func readOutput(t *testing.T, app *App, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(app.Config.OutputDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestBuildEmptySiteStillEmitsEveryFixedPage(t *testing.T) {
	app := testApp(t)
	if err := app.Build(BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for rel, want := range map[string]string{
		"index.html":          "home",
		"blog/index.html":     "blog-index",
		"event/index.html":    "event-index",
		"about/index.html":    "about",
		"organizer/index.html": "organizer",
		"gallery/index.html":  "gallery",
		"schedule/index.html": "schedule",
		"404.html":            "not-found",
		"500.html":            "server-error",
	} {
		if got := readOutput(t, app, rel); got != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}

	for _, rel := range []string{"sitemap.xml", "feed.xml", "robots.txt", ".nojekyll"} {
		if _, err := os.Stat(filepath.Join(app.Config.OutputDir, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(app.Config.OutputDir, "CNAME")); !os.IsNotExist(err) {
		t.Errorf("CNAME written without a domain")
	}
}

func TestBuildEmitsDetailPagesAndSitemap(t *testing.T) {
	app := testApp(t)
	writeContent(t, app, "blog", "first-post.md", "---\ntitle: First\ndate: \"2024-01-10\"\n---\nhello\n")
	writeContent(t, app, "blog", "second-post.md", "---\ntitle: Second\ndate: \"2024-02-10\"\n---\nworld\n")
	writeContent(t, app, "event", "meetup.md", "---\ntitle: Meetup\ndate: \"2024-03-05\"\n---\nwhere\n")

	if err := app.Build(BuildOptions{Domain: "example.org"}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := readOutput(t, app, "blog/first-post/index.html"); got != "blog:first-post" {
		t.Errorf("detail page = %q", got)
	}
	if got := readOutput(t, app, "event/meetup/index.html"); got != "event:meetup" {
		t.Errorf("event page = %q", got)
	}

	sitemap := readOutput(t, app, "sitemap.xml")
	for _, want := range []string{
		"<loc>https://example.org</loc>",
		"<loc>https://example.org/blog/first-post/</loc>",
		"<loc>https://example.org/event/meetup/</loc>",
		"<lastmod>2024-02-10</lastmod>",
		"<priority>0.7</priority>",
	} {
		if !strings.Contains(sitemap, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}

	feed := readOutput(t, app, "feed.xml")
	for _, want := range []string{
		"<title>Test Community</title>",
		"<link>https://example.org/blog/second-post/</link>",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q", want)
		}
	}

	if got := readOutput(t, app, "CNAME"); got != "example.org" {
		t.Errorf("CNAME = %q", got)
	}
	robots := readOutput(t, app, "robots.txt")
	if !strings.Contains(robots, "Sitemap: https://example.org/sitemap.xml") {
		t.Errorf("robots.txt = %q", robots)
	}
}

func TestBuildCopiesStaticAndReplacesStaleOutput(t *testing.T) {
	app := testApp(t)
	cssDir := filepath.Join(app.Config.StaticDir, "css")
	if err := os.MkdirAll(cssDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cssDir, "site.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}

	stale := filepath.Join(app.Config.OutputDir, "blog", "removed-post", "index.html")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatalf("mkdir stale: %v", err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatalf("write stale: %v", err)
	}

	if err := app.Build(BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := readOutput(t, app, "static/css/site.css"); got != "body{}" {
		t.Errorf("static copy = %q", got)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale page survived the rebuild")
	}
}

func TestBuildOrdersBlogIndexNewestFirst(t *testing.T) {
	app := testApp(t)
	writeContent(t, app, "blog", "old.md", "---\ntitle: Old\ndate: \"2023-05-01\"\n---\n")
	writeContent(t, app, "blog", "new.md", "---\ntitle: New\ndate: \"2024-05-01\"\n---\n")
	writeContent(t, app, "blog", "undated.md", "---\ntitle: Undated\n---\n")

	var got []string
	app.Views.BlogIndex = func(d ListingData) templ.Component {
		got = nil
		for _, doc := range d.Documents {
			got = append(got, doc.Slug)
		}
		return text("blog-index")
	}

	if err := app.Build(BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{"new", "old", "undated"}
	if len(got) != len(want) {
		t.Fatalf("documents = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("documents = %v, want %v", got, want)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	app := testApp(t)
	writeContent(t, app, "blog", "alpha.md", "---\ntitle: Alpha\ndate: \"2024-01-01\"\n---\none\n")
	writeContent(t, app, "blog", "beta.md", "---\ntitle: Beta\ndate: \"2024-06-01\"\n---\ntwo\n")
	writeContent(t, app, "event", "gamma.md", "---\ntitle: Gamma\ndate: \"2024-03-01\"\n---\nthree\n")

	if err := app.Build(BuildOptions{}); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	first := snapshotTree(t, app.Config.OutputDir)

	if err := app.Build(BuildOptions{}); err != nil {
		t.Fatalf("second Build: %v", err)
	}
	second := snapshotTree(t, app.Config.OutputDir)

	if len(first) != len(second) {
		t.Fatalf("file count changed: %d then %d", len(first), len(second))
	}
	for rel, body := range first {
		if second[rel] != body {
			t.Errorf("output %s differs between builds", rel)
		}
	}
}

// snapshotTree reads every file under root into a path→content map.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walk output: %v", err)
	}
	return out
}

func TestBuildHomeUpcomingEvents(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	app := testApp(t, WithClock(func() time.Time { return now }))
	writeContent(t, app, "event", "past.md", "---\ntitle: Past\ndate: \"2024-05-01\"\n---\n")
	writeContent(t, app, "event", "future.md", "---\ntitle: Future\ndate: \"2024-07-01\"\n---\n")

	var upcoming []string
	app.Views.Home = func(d HomeData) templ.Component {
		upcoming = nil
		for _, doc := range d.UpcomingEvents {
			upcoming = append(upcoming, doc.Slug)
		}
		return text("home")
	}

	if err := app.Build(BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0] != "future" {
		t.Fatalf("upcoming = %v, want [future]", upcoming)
	}
}
