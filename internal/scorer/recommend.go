package scorer

import "github.com/foliokit/foliokit/internal/model"

var categoryAdvice = map[model.IssueCategory]string{
	model.CategoryContent:       "Add more substantive paragraph content; AI systems summarize pages with rich body text far better.",
	model.CategoryStructure:     "Use exactly one H1 and a logical heading hierarchy so crawlers can build an outline of the page.",
	model.CategorySEO:           "Provide a descriptive title, a meta description of at least 50 characters, and JSON-LD structured data.",
	model.CategoryAccessibility: "Add alt text to every image; AI crawlers read alt attributes as content.",
	model.CategoryPerformance:   "Reduce page load time; crawlers abandon slow pages and index partial content.",
}

var crawlerAdvice = map[string]string{
	"OpenAI-GPT":    "GPTBot does not execute JavaScript; make sure critical content is present in the initial HTML.",
	"Google-Gemini": "Google-Extended renders JavaScript but weighs structured data heavily; keep JSON-LD blocks in sync with visible content.",
	"Claude":        "ClaudeBot favors clear semantic markup; wrap primary content in main and article elements.",
}

// Recommend maps issue categories and the crawler identity to canned
// recommendation strings, deduplicated, in stable order.
func Recommend(issues []model.CrawlIssue, crawlerName string) []string {
	if len(issues) == 0 {
		return nil
	}

	seen := make(map[model.IssueCategory]bool, len(issues))
	recs := make([]string, 0, len(issues)+1)
	for _, issue := range issues {
		if seen[issue.Category] {
			continue
		}
		seen[issue.Category] = true
		if advice, ok := categoryAdvice[issue.Category]; ok {
			recs = append(recs, advice)
		}
	}
	if advice, ok := crawlerAdvice[crawlerName]; ok {
		recs = append(recs, advice)
	}

	return recs
}

// Assessment returns the global score sentence for a report.
func Assessment(score int) string {
	switch {
	case score < 60:
		return "Critical: this page is poorly visible to AI crawlers and needs immediate content and structure work."
	case score < 80:
		return "Good with room for improvement: address the remaining issues to maximize AI visibility."
	default:
		return "Excellent: this page is well optimized for AI crawlers."
	}
}
