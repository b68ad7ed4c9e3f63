package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	s11a "github.com/funsaized/s11a"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "s11a",
	Short: "s11a - personal blog and portfolio engine",
	Long: `s11a serves a personal blog and portfolio site from Markdown content:
posts with reading-time estimates, related-post suggestions, tables of
contents, RSS, a sitemap, and an admin dashboard.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configFromEnv builds the site configuration from environment variables.
// SITE_ADMIN_PASSWORD and SITE_SESSION_SECRET are required to serve.
func configFromEnv() s11a.SiteConfig {
	cacheTTL := 5 * time.Minute
	if v := os.Getenv("SITE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cacheTTL = d
		}
	}
	return s11a.SiteConfig{
		Name:         s11a.EnvOr("SITE_NAME", "s11a"),
		URL:          s11a.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:  os.Getenv("SITE_DESCRIPTION"),
		Author:       os.Getenv("SITE_AUTHOR"),
		Addr:         s11a.EnvOr("SITE_ADDR", ":3000"),
		DatabasePath: s11a.EnvOr("SITE_DB_PATH", "data/site.db"),
		ContentDir:   s11a.EnvOr("SITE_CONTENT_DIR", "content"),
		CookieSecure: os.Getenv("SITE_COOKIE_SECURE") == "true",
		PostCacheTTL: cacheTTL,
	}
}
