package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/devopsjogja/sitegen"
	"github.com/devopsjogja/sitegen/content"
)

func TestHomeRendersSectionsAndEscapes(t *testing.T) {
	cfg := sitegen.SiteConfig{Name: "Go <Community>", URL: "https://example.org"}
	v := Default(cfg)

	var b bytes.Buffer
	cmp := v.Home(sitegen.HomeData{
		LatestBlogs: []content.Document{
			{Slug: "hello", Title: "Hello & Welcome", Date: "2024-06-01"},
		},
		Sponsors: []map[string]any{{"name": "Acme", "url": "https://acme.test"}},
	})
	if err := cmp.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()

	if !strings.Contains(html, "Go &lt;Community&gt;") {
		t.Errorf("site name not escaped: %s", html)
	}
	if !strings.Contains(html, "Hello &amp; Welcome") {
		t.Errorf("post title not escaped")
	}
	if !strings.Contains(html, `href="/blog/hello/"`) {
		t.Errorf("post link missing")
	}
	if !strings.Contains(html, "Upcoming Events") || !strings.Contains(html, "Nothing here yet.") {
		t.Errorf("empty section state missing")
	}
	if !strings.Contains(html, `href="https://acme.test"`) {
		t.Errorf("sponsor link missing")
	}
	if !strings.Contains(html, "application/ld+json") {
		t.Errorf("JSON-LD block missing")
	}
}

func TestDetailRendersBodyUnescaped(t *testing.T) {
	cfg := sitegen.SiteConfig{Name: "Community"}
	v := Default(cfg)

	var b bytes.Buffer
	cmp := v.BlogDetail(sitegen.DetailData{
		Document: content.Document{
			Slug:  "post",
			Title: "Post",
			Date:  "2024-01-01",
			Body:  "<p>rendered <strong>markdown</strong></p>",
		},
		ImagePath:  "images/blog/post.webp",
		CurrentURL: "https://example.org/blog/post/",
	})
	if err := cmp.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()

	if !strings.Contains(html, "<p>rendered <strong>markdown</strong></p>") {
		t.Errorf("markdown body was escaped: %s", html)
	}
	if !strings.Contains(html, `src="/static/images/blog/post.webp"`) {
		t.Errorf("resolved image missing")
	}
	if !strings.Contains(html, `<time datetime="2024-01-01">January 1, 2024</time>`) {
		t.Errorf("formatted date missing")
	}
}

func TestErrorPagesCarryNoCanonical(t *testing.T) {
	v := Default(sitegen.SiteConfig{Name: "Community"})

	var b bytes.Buffer
	if err := v.NotFound().Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()
	if !strings.Contains(html, "Page not found") {
		t.Errorf("404 message missing")
	}
	if strings.Contains(html, "canonical") {
		t.Errorf("error page must not carry a canonical link")
	}
}

func TestAssetFSServesDefaults(t *testing.T) {
	fsys := AssetFS()
	for _, name := range []string{"css/site.css", "js/schedule.js"} {
		f, err := fsys.Open(name)
		if err != nil {
			t.Errorf("embedded asset %s missing: %v", name, err)
			continue
		}
		f.Close()
	}
}
