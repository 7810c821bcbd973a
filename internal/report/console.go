package report

import (
	"fmt"
	"strings"

	"github.com/foliokit/foliokit/internal/model"
)

// PrintConsole renders the report as a colored fixed-width table on stdout.
func PrintConsole(r *model.SimulationReport) {
	sep := strings.Repeat("═", 64)
	thin := strings.Repeat("─", 64)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  AI CRAWLER SIMULATION REPORT\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("  URL       : %s\n", r.URL)
	fmt.Printf("  Generated : %s\n", r.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("  Overall   : %s %s\n\n", scoreBadge(r.OverallScore), scoreBar(r.OverallScore))

	fmt.Printf("\033[1;33m  Per-Crawler Results\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  %-15s %-7s %-12s %-12s %s\n", "Crawler", "Score", "Time(ms)", "Size(B)", "Issues")
	for _, result := range r.CrawlerResults {
		fmt.Printf("  %-15s %s %-12d %-12d %d\n",
			result.CrawlerName,
			fmt.Sprintf("%-16s", scoreBadge(result.AIVisibilityScore)),
			result.ResponseTime,
			result.ContentLength,
			len(result.Issues))
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Category Scores\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCategory("Content", r.CategoryScores.Content)
	printCategory("Structure", r.CategoryScores.Structure)
	printCategory("Performance", r.CategoryScores.Performance)
	printCategory("SEO", r.CategoryScores.SEO)
	printCategory("Accessibility", r.CategoryScores.Accessibility)
	fmt.Println()

	if len(r.CommonIssues) > 0 {
		fmt.Printf("\033[1;33m  Common Issues (across crawlers)\033[0m\n")
		fmt.Printf("  %s\n", thin)
		for _, issue := range r.CommonIssues {
			fmt.Printf("  %s [%s] %s\n", impactMarker(issue.Impact), issue.Category, issue.Message)
		}
		fmt.Println()
	}

	if len(r.Recommendations) > 0 {
		fmt.Printf("\033[1;33m  Recommendations\033[0m\n")
		fmt.Printf("  %s\n", thin)
		for i, rec := range r.Recommendations {
			fmt.Printf("  %d. %s\n", i+1, rec)
		}
		fmt.Println()
	}

	fmt.Printf("  %s\n", r.Summary)
	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func printCategory(name string, score int) {
	fmt.Printf("  %-15s %s %s\n", name, scoreBar(score), scoreBadge(score))
}

// scoreBadge colors the numeric score: green ≥80, yellow ≥60, red below.
func scoreBadge(score int) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("\033[1;32m%d/100\033[0m", score)
	case score >= 60:
		return fmt.Sprintf("\033[1;33m%d/100\033[0m", score)
	default:
		return fmt.Sprintf("\033[1;31m%d/100\033[0m", score)
	}
}

// scoreBar draws a 20-cell progress bar.
func scoreBar(score int) string {
	filled := score / 5
	if filled > 20 {
		filled = 20
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 20-filled) + "]"
}

func impactMarker(impact model.Impact) string {
	switch impact {
	case model.ImpactHigh:
		return "\033[1;31m[high]\033[0m  "
	case model.ImpactMedium:
		return "\033[1;33m[medium]\033[0m"
	default:
		return "\033[1;36m[low]\033[0m   "
	}
}
