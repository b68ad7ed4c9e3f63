package main

import (
	"fmt"

	"github.com/spf13/cobra"

	s11a "github.com/funsaized/s11a"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import Markdown content into the site database",
	Long: `Import loads Markdown files (with optional YAML frontmatter) from a
directory into the SQLite database, upserting posts by slug. With no
argument it uses SITE_CONTENT_DIR (default "content").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		app := s11a.New(configFromEnv(), s11a.ViewFuncs{})
		defer app.Close()

		count, err := app.ImportContent(dir)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d posts\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
