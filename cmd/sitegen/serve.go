package main

import (
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/jdeng/goheif"
	"github.com/spf13/cobra"

	"github.com/devopsjogja/sitegen"
	"github.com/devopsjogja/sitegen/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site, rendering pages on each request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		app := sitegen.New(cfg, views.Default(cfg),
			sitegen.WithHEICDecoder(decodeHEIC),
			sitegen.WithAssetFS(views.AssetFS()),
			sitegen.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
		)
		return app.Start()
	},
}

func decodeHEIC(r io.Reader) (image.Image, error) {
	return goheif.Decode(r)
}
