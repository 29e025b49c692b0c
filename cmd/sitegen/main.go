// Command sitegen runs a community site from a tree of markdown, YAML, and
// image content: `sitegen serve` renders pages on request, `sitegen build`
// materializes the whole site as a static tree.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devopsjogja/sitegen"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Community site engine: serve dynamically or build a static tree",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.AddCommand(serveCmd, buildCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads config.yaml (when present) and SITEGEN_* environment
// variables into a SiteConfig. A missing config file is fine; defaults and
// env cover everything.
func loadConfig() (sitegen.SiteConfig, error) {
	v := viper.New()

	v.SetDefault("name", "")
	v.SetDefault("url", "")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("addr", "")
	v.SetDefault("content_dir", "")
	v.SetDefault("static_dir", "")
	v.SetDefault("output_dir", "")
	v.SetDefault("calendar_api_url", "")
	v.SetDefault("metrics", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("SITEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return sitegen.SiteConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	return sitegen.SiteConfig{
		Name:           v.GetString("name"),
		URL:            strings.TrimSuffix(v.GetString("url"), "/"),
		Description:    v.GetString("description"),
		Author:         v.GetString("author"),
		Addr:           v.GetString("addr"),
		ContentDir:     v.GetString("content_dir"),
		StaticDir:      v.GetString("static_dir"),
		OutputDir:      v.GetString("output_dir"),
		CalendarAPIURL: v.GetString("calendar_api_url"),
		MetricsEnabled: v.GetBool("metrics"),
	}, nil
}
