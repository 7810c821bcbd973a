// Package scorer computes the AI visibility score: a deterministic 0-100
// rubric over extracted page content. It performs no I/O.
package scorer

import (
	"fmt"
	"strings"
	"time"

	"github.com/foliokit/foliokit/config"
	"github.com/foliokit/foliokit/internal/model"
)

// Metrics carries the per-fetch performance figures the rubric inspects.
type Metrics struct {
	TaskDuration time.Duration
}

// Score starts at 100 and applies the rubric's ordered deductions. Identical
// content and metrics always produce identical scores and issues.
func Score(content *model.ExtractedContent, metrics Metrics, rubric *config.ScoringConfig) (int, []model.CrawlIssue) {
	if rubric == nil {
		rubric = config.DefaultScoring()
	}
	score := 100
	issues := make([]model.CrawlIssue, 0, 8)

	deduct := func(points int, issue model.CrawlIssue) {
		score -= points
		issues = append(issues, issue)
	}

	switch {
	case content.Title == "":
		deduct(rubric.TitlePenalty, model.CrawlIssue{
			Type:     model.IssueError,
			Category: model.CategorySEO,
			Message:  "Page title is missing",
			Impact:   model.ImpactHigh,
		})
	case len(content.Title) < rubric.MinTitleLength:
		deduct(rubric.TitlePenalty, model.CrawlIssue{
			Type:     model.IssueWarning,
			Category: model.CategorySEO,
			Message:  fmt.Sprintf("Page title is shorter than %d characters", rubric.MinTitleLength),
			Impact:   model.ImpactHigh,
		})
	}

	switch {
	case content.MetaDescription == "":
		deduct(rubric.MetaPenalty, model.CrawlIssue{
			Type:     model.IssueError,
			Category: model.CategorySEO,
			Message:  "Meta description is missing",
			Impact:   model.ImpactMedium,
		})
	case len(content.MetaDescription) < rubric.MinMetaLength:
		deduct(rubric.MetaPenalty, model.CrawlIssue{
			Type:     model.IssueWarning,
			Category: model.CategorySEO,
			Message:  fmt.Sprintf("Meta description is shorter than %d characters", rubric.MinMetaLength),
			Impact:   model.ImpactMedium,
		})
	}

	switch h1 := content.H1Count(); {
	case h1 == 0:
		deduct(rubric.MissingH1Penalty, model.CrawlIssue{
			Type:     model.IssueError,
			Category: model.CategoryStructure,
			Message:  "No H1 heading found",
			Impact:   model.ImpactHigh,
		})
	case h1 > 1:
		deduct(rubric.MultipleH1Penalty, model.CrawlIssue{
			Type:     model.IssueWarning,
			Category: model.CategoryStructure,
			Message:  "Multiple H1 headings found",
			Impact:   model.ImpactMedium,
		})
	}

	if len(content.Paragraphs) < rubric.MinParagraphs {
		deduct(rubric.ParagraphPenalty, model.CrawlIssue{
			Type:     model.IssueWarning,
			Category: model.CategoryContent,
			Message:  fmt.Sprintf("Page has fewer than %d substantive paragraphs", rubric.MinParagraphs),
			Impact:   model.ImpactMedium,
		})
	}

	if len(content.StructuredData) == 0 {
		deduct(rubric.StructuredDataPenalty, model.CrawlIssue{
			Type:     model.IssueWarning,
			Category: model.CategorySEO,
			Message:  "No structured data (JSON-LD) blocks found",
			Impact:   model.ImpactMedium,
		})
	}

	if missing := altlessImages(content.Images); missing > 0 {
		penalty := missing * rubric.AltPenaltyPerImage
		if penalty > rubric.AltPenaltyCap {
			penalty = rubric.AltPenaltyCap
		}
		deduct(penalty, model.CrawlIssue{
			Type:     model.IssueWarning,
			Category: model.CategoryAccessibility,
			Message:  fmt.Sprintf("%d images are missing alt text", missing),
			Impact:   model.ImpactMedium,
		})
	}

	if metrics.TaskDuration > rubric.SlowLoadThreshold {
		deduct(rubric.SlowLoadPenalty, model.CrawlIssue{
			Type:     model.IssueInfo,
			Category: model.CategoryPerformance,
			Message:  fmt.Sprintf("Page load exceeded %s", rubric.SlowLoadThreshold),
			Impact:   model.ImpactLow,
		})
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, issues
}

func altlessImages(images []model.Image) int {
	n := 0
	for _, img := range images {
		if img.Alt == "" {
			n++
		}
	}
	return n
}

// CategoryPenalties sums the rubric deductions per issue category for one
// result. The aggregator uses it to build per-category scores.
func CategoryPenalties(issues []model.CrawlIssue, rubric *config.ScoringConfig) map[model.IssueCategory]int {
	if rubric == nil {
		rubric = config.DefaultScoring()
	}
	out := make(map[model.IssueCategory]int, 5)
	for _, issue := range issues {
		out[issue.Category] += penaltyFor(issue, rubric)
	}
	return out
}

// penaltyFor recovers the point value behind an issue. Impact is used to tell
// the two title/H1 variants apart, and the alt-text message carries its count.
func penaltyFor(issue model.CrawlIssue, rubric *config.ScoringConfig) int {
	if strings.HasPrefix(issue.Message, "Crawl failed") {
		return 100
	}
	switch issue.Category {
	case model.CategorySEO:
		switch {
		case issue.Impact == model.ImpactHigh:
			return rubric.TitlePenalty
		case issue.Message == "No structured data (JSON-LD) blocks found":
			return rubric.StructuredDataPenalty
		default:
			return rubric.MetaPenalty
		}
	case model.CategoryStructure:
		if issue.Impact == model.ImpactHigh {
			return rubric.MissingH1Penalty
		}
		return rubric.MultipleH1Penalty
	case model.CategoryContent:
		return rubric.ParagraphPenalty
	case model.CategoryAccessibility:
		var n int
		if _, err := fmt.Sscanf(issue.Message, "%d images", &n); err == nil {
			p := n * rubric.AltPenaltyPerImage
			if p > rubric.AltPenaltyCap {
				p = rubric.AltPenaltyCap
			}
			return p
		}
		return rubric.AltPenaltyPerImage
	case model.CategoryPerformance:
		return rubric.SlowLoadPenalty
	}
	return 0
}
