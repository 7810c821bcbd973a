package cli

import (
	"fmt"

	"github.com/foliokit/foliokit/internal/report"
	"github.com/foliokit/foliokit/internal/simulator"
	"github.com/spf13/cobra"
)

var testThreshold int

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run site quality checks",
}

var testAIVisibilityCmd = &cobra.Command{
	Use:   "ai-visibility [url]",
	Short: "Score the site's AI visibility and fail below the threshold",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := cfg.Site.BaseURL
		if len(args) > 0 {
			url = args[0]
		}
		if url == "" {
			return fmt.Errorf("no URL given and no site.base_url configured")
		}

		threshold := cfg.ScoringSettings.PassThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = testThreshold
		}

		sim := simulator.New(cfg, log)
		if err := sim.Initialize(); err != nil {
			return err
		}
		defer sim.Close()

		result, err := sim.SimulateAll(cmd.Context(), url, simulator.Options{})
		if err != nil {
			return err
		}

		report.PrintConsole(result)

		if result.OverallScore < threshold {
			return fmt.Errorf("AI visibility score %d is below the threshold of %d",
				result.OverallScore, threshold)
		}
		fmt.Printf("AI visibility score %d meets the threshold of %d.\n", result.OverallScore, threshold)
		return nil
	},
}

func init() {
	testAIVisibilityCmd.Flags().IntVar(&testThreshold, "threshold", 80, "minimum passing overall score")
	testCmd.AddCommand(testAIVisibilityCmd)
}
