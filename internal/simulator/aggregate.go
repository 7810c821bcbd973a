package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/foliokit/foliokit/config"
	"github.com/foliokit/foliokit/internal/model"
	"github.com/foliokit/foliokit/internal/scorer"
)

// SimulateAll runs every registered crawler against the URL, strictly in
// registry order. A failed fetch never aborts the batch: it becomes a
// zero-score stand-in result carrying a single error issue.
func (s *Simulator) SimulateAll(ctx context.Context, url string, opts Options) (*model.SimulationReport, error) {
	profiles := model.Profiles()
	results := make([]*model.CrawlResult, 0, len(profiles))

	for _, profile := range profiles {
		result, err := s.SimulateCrawler(ctx, profile.Name, url, opts)
		if err != nil {
			s.log.Error("crawler simulation failed.", slog.String("crawler", profile.Name),
				slog.String("err", err.Error()))
			result = FailureResult(profile.Name, url, err)
		}
		results = append(results, result)
	}

	return BuildReport(url, results, s.cfg.ScoringSettings), nil
}

// FailureResult is the degraded stand-in for a crawler whose fetch failed.
func FailureResult(crawlerName, url string, err error) *model.CrawlResult {
	return &model.CrawlResult{
		CrawlerName:       crawlerName,
		URL:               url,
		Timestamp:         time.Now().UTC(),
		AIVisibilityScore: 0,
		ExtractedContent:  &model.ExtractedContent{},
		Issues: []model.CrawlIssue{{
			Type:     model.IssueError,
			Category: model.CategoryContent,
			Message:  fmt.Sprintf("Crawl failed: %v", err),
			Impact:   model.ImpactHigh,
		}},
		Recommendations: []string{"Verify the URL is reachable and the server responds within the crawler timeout."},
	}
}

// BuildReport aggregates per-crawler results into the cross-crawler report.
// Pure: it never touches the network or the simulator state.
func BuildReport(url string, results []*model.CrawlResult, rubric *config.ScoringConfig) *model.SimulationReport {
	if rubric == nil {
		rubric = config.DefaultScoring()
	}

	report := &model.SimulationReport{
		URL:            url,
		Timestamp:      time.Now().UTC(),
		CrawlerResults: results,
		CommonIssues:   commonIssues(results, rubric.CommonIssueThreshold),
	}

	total := 0
	for _, r := range results {
		total += r.AIVisibilityScore
	}
	if len(results) > 0 {
		report.OverallScore = int(float64(total)/float64(len(results)) + 0.5)
	}

	report.CategoryScores = categoryScores(results, rubric)
	report.Recommendations = mergeRecommendations(results, report.OverallScore)
	report.Summary = summarize(url, report)

	return report
}

// commonIssues returns issues whose (category, message) pair recurs in at
// least threshold distinct crawler results, sorted by descending impact.
func commonIssues(results []*model.CrawlResult, threshold int) []model.CrawlIssue {
	type key struct {
		category model.IssueCategory
		message  string
	}
	counts := make(map[key]int)
	first := make(map[key]model.CrawlIssue)
	order := make([]key, 0)

	for _, r := range results {
		seen := make(map[key]bool)
		for _, issue := range r.Issues {
			k := key{issue.Category, issue.Message}
			if seen[k] {
				continue
			}
			seen[k] = true
			if counts[k] == 0 {
				first[k] = issue
				order = append(order, k)
			}
			counts[k]++
		}
	}

	common := make([]model.CrawlIssue, 0)
	for _, k := range order {
		if counts[k] >= threshold {
			common = append(common, first[k])
		}
	}
	sort.SliceStable(common, func(i, j int) bool {
		return common[i].Impact.Weight() > common[j].Impact.Weight()
	})

	return common
}

// categoryScores averages, per category, each crawler's 100 minus that
// category's penalty sum. A crawler with no issues in a category contributes
// a clean 100.
func categoryScores(results []*model.CrawlResult, rubric *config.ScoringConfig) model.CategoryScores {
	if len(results) == 0 {
		return model.CategoryScores{}
	}

	sums := make(map[model.IssueCategory]int, 5)
	for _, r := range results {
		penalties := scorer.CategoryPenalties(r.Issues, rubric)
		for _, category := range model.Categories() {
			contribution := 100 - penalties[category]
			if contribution < 0 {
				contribution = 0
			}
			sums[category] += contribution
		}
	}

	avg := func(category model.IssueCategory) int {
		return int(float64(sums[category])/float64(len(results)) + 0.5)
	}
	return model.CategoryScores{
		Content:       avg(model.CategoryContent),
		Structure:     avg(model.CategoryStructure),
		Performance:   avg(model.CategoryPerformance),
		SEO:           avg(model.CategorySEO),
		Accessibility: avg(model.CategoryAccessibility),
	}
}

// mergeRecommendations unions per-crawler recommendations and appends the
// global assessment sentence chosen by the overall score.
func mergeRecommendations(results []*model.CrawlResult, overallScore int) []string {
	seen := make(map[string]bool)
	merged := make([]string, 0)
	for _, r := range results {
		for _, rec := range r.Recommendations {
			if !seen[rec] {
				seen[rec] = true
				merged = append(merged, rec)
			}
		}
	}
	merged = append(merged, scorer.Assessment(overallScore))

	return merged
}

func summarize(url string, report *model.SimulationReport) string {
	return fmt.Sprintf("%s scored %d/100 across %d simulated AI crawlers; %d common issues were found.",
		url, report.OverallScore, len(report.CrawlerResults), len(report.CommonIssues))
}
