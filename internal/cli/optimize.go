package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/foliokit/foliokit/internal/scorer"
	"github.com/foliokit/foliokit/internal/simulator"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Score the local site offline and print improvement suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		indexPath := filepath.Join(cfg.OutputSettings.PublicDir, "index.html")
		body, err := os.ReadFile(indexPath)
		if err != nil {
			return fmt.Errorf("read %s (run 'foliokit init' first): %w", indexPath, err)
		}

		content, err := simulator.Extract(body, cfg.Site.BaseURL)
		if err != nil {
			return err
		}

		// Offline analysis: no fetch happened, so no performance penalty.
		score, issues := scorer.Score(content, scorer.Metrics{}, cfg.ScoringSettings)

		fmt.Printf("Offline AI visibility score for %s: %d/100\n\n", indexPath, score)
		if len(issues) == 0 {
			fmt.Println("No issues found. Deploy and run 'foliokit test ai-visibility' for a live check.")
			return nil
		}

		fmt.Println("Issues:")
		for _, issue := range issues {
			fmt.Printf("  [%s/%s] %s\n", issue.Category, issue.Impact, issue.Message)
		}
		fmt.Println("\nSuggestions:")
		for i, rec := range scorer.Recommend(issues, "") {
			fmt.Printf("  %d. %s\n", i+1, rec)
		}
		return nil
	},
}
