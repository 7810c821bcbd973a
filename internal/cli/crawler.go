package cli

import (
	"fmt"
	"strings"

	"github.com/foliokit/foliokit/internal/model"
	"github.com/foliokit/foliokit/internal/report"
	"github.com/foliokit/foliokit/internal/simulator"
	"github.com/spf13/cobra"
)

var (
	simulateCrawler    string
	simulateFormat     string
	simulateScreenshot bool
)

var crawlerCmd = &cobra.Command{
	Use:   "crawler",
	Short: "AI crawler simulation commands",
}

var crawlerSimulateCmd = &cobra.Command{
	Use:   "simulate <url>",
	Short: "Simulate AI crawlers against a URL and render a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]

		sim := simulator.New(cfg, log)
		if err := sim.Initialize(); err != nil {
			return err
		}
		defer sim.Close()

		opts := simulator.Options{
			Screenshot:    simulateScreenshot || cfg.CrawlerSettings.Screenshots,
			ScreenshotDir: cfg.OutputSettings.ScreenshotDir,
		}

		var results []*model.CrawlResult
		if simulateCrawler != "" {
			result, err := sim.SimulateCrawler(cmd.Context(), simulateCrawler, url, opts)
			if err != nil {
				return err
			}
			results = []*model.CrawlResult{result}
		} else {
			rep, err := sim.SimulateAll(cmd.Context(), url, opts)
			if err != nil {
				return err
			}
			return renderReport(rep)
		}

		return renderReport(simulator.BuildReport(url, results, cfg.ScoringSettings))
	},
}

func renderReport(rep *model.SimulationReport) error {
	dir := cfg.OutputSettings.ReportDir
	for _, format := range strings.Split(simulateFormat, ",") {
		switch strings.TrimSpace(format) {
		case "", "console":
			report.PrintConsole(rep)
		case "html":
			path, err := report.WriteHTML(rep, dir)
			if err != nil {
				return err
			}
			fmt.Printf("HTML report → %s\n", path)
		case "json":
			path, err := report.WriteJSON(rep, dir)
			if err != nil {
				return err
			}
			fmt.Printf("JSON report → %s\n", path)
		case "csv":
			path, err := report.WriteCSV(rep, dir)
			if err != nil {
				return err
			}
			fmt.Printf("CSV report → %s\n", path)
		default:
			return fmt.Errorf("unknown report format %q", format)
		}
	}
	return nil
}

var crawlerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the simulated crawler profiles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range model.Profiles() {
			js := "static HTML only"
			if p.ProcessJavaScript {
				js = "executes JavaScript"
			}
			fmt.Printf("%-15s %s\n", p.Name, js)
			fmt.Printf("  user agent : %s\n", p.UserAgent)
			fmt.Printf("  timeout    : %s, max depth %d, robots: %t, redirects: %t\n\n",
				p.Timeout, p.MaxDepth, p.RespectRobots, p.FollowRedirects)
		}
	},
}

var crawlerStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show crawler registry statistics",
	Run: func(cmd *cobra.Command, args []string) {
		profiles := model.Profiles()
		jsEnabled := 0
		robots := 0
		for _, p := range profiles {
			if p.ProcessJavaScript {
				jsEnabled++
			}
			if p.RespectRobots {
				robots++
			}
		}
		fmt.Printf("Registered crawlers : %d\n", len(profiles))
		fmt.Printf("JavaScript enabled  : %d\n", jsEnabled)
		fmt.Printf("Respecting robots   : %d\n", robots)
		fmt.Printf("Scoring rubric      : title -%d, meta -%d, h1 -%d/-%d, paragraphs -%d, json-ld -%d, alt -%d (cap %d), slow -%d\n",
			cfg.ScoringSettings.TitlePenalty,
			cfg.ScoringSettings.MetaPenalty,
			cfg.ScoringSettings.MissingH1Penalty,
			cfg.ScoringSettings.MultipleH1Penalty,
			cfg.ScoringSettings.ParagraphPenalty,
			cfg.ScoringSettings.StructuredDataPenalty,
			cfg.ScoringSettings.AltPenaltyPerImage,
			cfg.ScoringSettings.AltPenaltyCap,
			cfg.ScoringSettings.SlowLoadPenalty)
	},
}

func init() {
	crawlerSimulateCmd.Flags().StringVar(&simulateCrawler, "crawler", "", "run a single crawler (OpenAI-GPT, Google-Gemini, Claude)")
	crawlerSimulateCmd.Flags().StringVar(&simulateFormat, "format", "console", "comma-separated report formats: console, html, json, csv")
	crawlerSimulateCmd.Flags().BoolVar(&simulateScreenshot, "screenshot", false, "capture a screenshot per JS-enabled crawler")
	crawlerCmd.AddCommand(crawlerSimulateCmd, crawlerListCmd, crawlerStatsCmd)
}
