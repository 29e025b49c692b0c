package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/devopsjogja/sitegen"
	"github.com/devopsjogja/sitegen/views"
)

var buildDomain string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every page into a static output tree",
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
		return app.Build(sitegen.BuildOptions{
			OutputDir: cfg.OutputDir,
			Domain:    buildDomain,
		})
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildDomain, "domain", "", "custom domain to write into CNAME")
}
