package main

import (
	"github.com/spf13/cobra"

	s11a "github.com/funsaized/s11a"
	"github.com/funsaized/s11a/views"
)

var staticDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromEnv()
		cfg.AdminPassword = s11a.MustEnv("SITE_ADMIN_PASSWORD")
		cfg.SessionSecret = s11a.MustEnv("SITE_SESSION_SECRET")

		app := s11a.New(cfg, views.Funcs(cfg), s11a.WithStaticDir(staticDir))
		defer app.Close()
		return app.Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&staticDir, "static", "public", "directory for static assets")
	rootCmd.AddCommand(serveCmd)
}
