// Package cli wires the foliokit command tree.
package cli

import (
	"log/slog"

	"github.com/foliokit/foliokit/config"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "foliokit",
	Short: "Portfolio site generator with an AI crawler simulator",
	Long: `foliokit scaffolds static portfolio sites, generates SEO artifacts
(llms.txt, Schema.org JSON-LD, sitemap.xml, robots.txt) and simulates how
AI crawlers see your pages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree. The caller decides the process exit code.
func Execute(c *config.Config, l *slog.Logger) error {
	cfg = c
	log = l
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(
		initCmd,
		generateCmd,
		testCmd,
		crawlerCmd,
		deployCmd,
		validateCmd,
		optimizeCmd,
		serveCmd,
	)
}
