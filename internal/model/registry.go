package model

import (
	"fmt"
	"time"
)

// CrawlerProfile is the static behavioral profile of one simulated AI crawler.
// Profiles are compile-time constants and never mutated.
type CrawlerProfile struct {
	Name               string
	UserAgent          string
	Timeout            time.Duration
	MaxDepth           int
	RespectRobots      bool
	FollowRedirects    bool
	ProcessJavaScript  bool
	ExtractionPatterns []string
	PrioritySelectors  []string
}

// profiles is the registry. Order matters: SimulateAll runs crawlers in this
// exact order, so report ordering stays deterministic.
var profiles = []CrawlerProfile{
	{
		Name:              "OpenAI-GPT",
		UserAgent:         "Mozilla/5.0 AppleWebKit/537.36 (KHTML, like Gecko); compatible; GPTBot/1.0; +https://openai.com/gptbot",
		Timeout:           30 * time.Second,
		MaxDepth:          1,
		RespectRobots:     true,
		FollowRedirects:   true,
		ProcessJavaScript: false,
		ExtractionPatterns: []string{
			"article", "section", "main",
		},
		PrioritySelectors: []string{
			"main", "article", "h1", "h2", "p", "[itemprop]",
		},
	},
	{
		Name:              "Google-Gemini",
		UserAgent:         "Mozilla/5.0 (compatible; Google-Extended/1.0; +https://developers.google.com/search/docs/crawling-indexing/overview-google-crawlers)",
		Timeout:           45 * time.Second,
		MaxDepth:          2,
		RespectRobots:     true,
		FollowRedirects:   true,
		ProcessJavaScript: true,
		ExtractionPatterns: []string{
			"article", "main", "nav", "header", "footer",
		},
		PrioritySelectors: []string{
			"main", "article", "[role=main]", "h1", "script[type=\"application/ld+json\"]",
		},
	},
	{
		Name:              "Claude",
		UserAgent:         "Mozilla/5.0 (compatible; ClaudeBot/1.0; +claudebot@anthropic.com)",
		Timeout:           30 * time.Second,
		MaxDepth:          1,
		RespectRobots:     true,
		FollowRedirects:   true,
		ProcessJavaScript: false,
		ExtractionPatterns: []string{
			"article", "main", "section",
		},
		PrioritySelectors: []string{
			"main", "article", "h1", "p", "blockquote",
		},
	},
}

// Profiles returns the registry in definition order.
func Profiles() []CrawlerProfile {
	out := make([]CrawlerProfile, len(profiles))
	copy(out, profiles)
	return out
}

// ProfileFor looks up a crawler by name.
func ProfileFor(name string) (CrawlerProfile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return CrawlerProfile{}, fmt.Errorf("unknown crawler %q", name)
}
