package cli

import (
	"fmt"

	"github.com/foliokit/foliokit/internal/generator"
	"github.com/spf13/cobra"
)

var (
	generateLanguage string
	generateFormat   string
)

var generateCmd = &cobra.Command{
	Use:       "generate {llms|schema|sitemap|robots|all}",
	Short:     "Generate SEO artifacts from foliokit.yaml",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"llms", "schema", "sitemap", "robots", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		language := cfg.Language
		if generateLanguage != "" {
			language = generateLanguage
		}
		format := cfg.LlmsTxtFormat
		if generateFormat != "" {
			format = generateFormat
		}

		type step struct {
			name string
			run  func() (string, error)
		}
		steps := map[string]step{
			"llms": {"llms.txt", func() (string, error) {
				return generator.WriteLlmsTxt(cfg.Site, language, format, cfg.OutputSettings.PublicDir)
			}},
			"schema": {"structured data", func() (string, error) {
				return generator.WriteSchemas(cfg.Site, cfg.OutputSettings.DataDir)
			}},
			"sitemap": {"sitemap.xml", func() (string, error) {
				return generator.WriteSitemap(cfg.Site, cfg.OutputSettings.PublicDir)
			}},
			"robots": {"robots.txt", func() (string, error) {
				return generator.WriteRobotsTxt(cfg.Site, cfg.OutputSettings.PublicDir)
			}},
		}

		order := []string{args[0]}
		if args[0] == "all" {
			order = []string{"llms", "schema", "sitemap", "robots"}
		}
		for _, key := range order {
			s, ok := steps[key]
			if !ok {
				return fmt.Errorf("unknown generate target %q", key)
			}
			path, err := s.run()
			if err != nil {
				return fmt.Errorf("generate %s: %w", s.name, err)
			}
			fmt.Printf("Generated %s → %s\n", s.name, path)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateLanguage, "language", "", "override output language (en, es, de)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "", "llms.txt format: markdown, plain or structured")
}
