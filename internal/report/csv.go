package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/foliokit/foliokit/internal/model"
)

// csvHeader is the stable column set: one row per crawler follows it.
var csvHeader = []string{
	"Crawler", "Score", "ResponseTime(ms)", "ContentSize(bytes)",
	"ErrorCount", "WarningCount", "InfoCount",
}

// WriteCSV writes the per-crawler summary table and returns the absolute path.
func WriteCSV(r *model.SimulationReport, dir string) (string, error) {
	path, err := outputPath(dir, r.URL, ".csv")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("csv: write header: %w", err)
	}
	for _, result := range r.CrawlerResults {
		if err := w.Write(csvRow(result)); err != nil {
			return "", fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv: flush: %w", err)
	}

	return path, nil
}

func csvRow(result *model.CrawlResult) []string {
	errors, warnings, infos := 0, 0, 0
	for _, issue := range result.Issues {
		switch issue.Type {
		case model.IssueError:
			errors++
		case model.IssueWarning:
			warnings++
		case model.IssueInfo:
			infos++
		}
	}
	return []string{
		result.CrawlerName,
		strconv.Itoa(result.AIVisibilityScore),
		strconv.FormatInt(result.ResponseTime, 10),
		strconv.Itoa(result.ContentLength),
		strconv.Itoa(errors),
		strconv.Itoa(warnings),
		strconv.Itoa(infos),
	}
}
