package views

import (
	"embed"
	"io/fs"
)

// Default static assets shipped with the default views:
// css/site.css, js/schedule.js
//
//go:embed assets
var embeddedAssets embed.FS

// AssetFS returns the embedded default assets rooted at the static prefix,
// ready for sitegen.WithAssetFS. Site-provided files always shadow these.
func AssetFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
