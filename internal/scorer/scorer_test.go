package scorer

import (
	"testing"
	"time"

	"github.com/foliokit/foliokit/internal/model"
)

func optimizedContent() *model.ExtractedContent {
	return &model.ExtractedContent{
		Title:           "Jane Doe — Software Engineer & Writer",
		MetaDescription: "Portfolio of Jane Doe, a software engineer specializing in distributed systems, developer tooling and technical writing.",
		Headings: []model.Heading{
			{Level: 1, Text: "Jane Doe"},
			{Level: 2, Text: "Projects"},
			{Level: 2, Text: "Contact"},
		},
		Paragraphs: []string{
			"I build distributed systems and developer tools.",
			"My recent work focuses on observability pipelines.",
			"I also write about engineering practice.",
		},
		Images: []model.Image{
			{Src: "portrait.jpg", Alt: "Portrait of Jane Doe"},
			{Src: "diagram.png", Alt: "Architecture diagram"},
		},
		StructuredData: []any{map[string]any{"@type": "Person"}},
	}
}

func weakContent() *model.ExtractedContent {
	return &model.ExtractedContent{
		Title:      "Home",
		Paragraphs: []string{"Hi"},
		Images: []model.Image{
			{Src: "a.jpg", Alt: ""},
			{Src: "b.jpg", Alt: ""},
		},
		StructuredData: []any{},
	}
}

func TestScoreOptimizedContent(t *testing.T) {
	score, issues := Score(optimizedContent(), Metrics{TaskDuration: 500 * time.Millisecond}, nil)
	if score != 100 {
		t.Errorf("score: got %d, want 100", score)
	}
	if len(issues) != 0 {
		t.Errorf("issues: got %d, want 0 (%v)", len(issues), issues)
	}
}

func TestScoreOptimizedContentSlowLoad(t *testing.T) {
	score, issues := Score(optimizedContent(), Metrics{TaskDuration: 4 * time.Second}, nil)
	if score != 95 {
		t.Errorf("score: got %d, want 95", score)
	}
	if len(issues) != 1 {
		t.Fatalf("issues: got %d, want 1", len(issues))
	}
	if issues[0].Category != model.CategoryPerformance {
		t.Errorf("category: got %s, want performance", issues[0].Category)
	}
}

func TestScoreWeakContent(t *testing.T) {
	score, issues := Score(weakContent(), Metrics{}, nil)
	// 100 - 15 (short title) - 10 (no meta) - 15 (no h1) - 10 (paragraphs)
	// - 8 (no json-ld) - 4 (two alt-less images) = 38
	if score != 38 {
		t.Errorf("score: got %d, want 38", score)
	}
	if score >= 50 {
		t.Errorf("score %d should be below 50", score)
	}
	if len(issues) < 4 {
		t.Fatalf("issues: got %d, want at least 4", len(issues))
	}

	categories := make(map[model.IssueCategory]bool)
	for _, issue := range issues {
		categories[issue.Category] = true
	}
	for _, want := range []model.IssueCategory{model.CategorySEO, model.CategoryStructure, model.CategoryAccessibility} {
		if !categories[want] {
			t.Errorf("expected an issue in category %s", want)
		}
	}
}

func TestScoreMonotonicallyNonIncreasing(t *testing.T) {
	content := optimizedContent()
	prev, _ := Score(content, Metrics{}, nil)

	degrade := []func(*model.ExtractedContent){
		func(c *model.ExtractedContent) { c.Title = "Short" },
		func(c *model.ExtractedContent) { c.MetaDescription = "" },
		func(c *model.ExtractedContent) { c.Headings = nil },
		func(c *model.ExtractedContent) { c.Paragraphs = c.Paragraphs[:1] },
		func(c *model.ExtractedContent) { c.StructuredData = nil },
		func(c *model.ExtractedContent) {
			for i := range c.Images {
				c.Images[i].Alt = ""
			}
		},
	}
	for i, step := range degrade {
		step(content)
		score, _ := Score(content, Metrics{}, nil)
		if score > prev {
			t.Errorf("step %d: score increased from %d to %d", i, prev, score)
		}
		prev = score
	}
}

func TestScoreClampedToZero(t *testing.T) {
	content := &model.ExtractedContent{
		Images: manyAltlessImages(30),
	}
	score, _ := Score(content, Metrics{TaskDuration: 10 * time.Second}, nil)
	if score < 0 || score > 100 {
		t.Errorf("score %d out of [0,100]", score)
	}
}

func TestAltPenaltyCapped(t *testing.T) {
	base := optimizedContent()
	base.Images = manyAltlessImages(3)
	threeMissing, _ := Score(base, Metrics{}, nil)

	base.Images = manyAltlessImages(20)
	twentyMissing, _ := Score(base, Metrics{}, nil)

	if threeMissing != 94 {
		t.Errorf("three alt-less images: got %d, want 94", threeMissing)
	}
	if twentyMissing != 90 {
		t.Errorf("twenty alt-less images: got %d, want 90 (capped)", twentyMissing)
	}
}

func TestScoreDeterministic(t *testing.T) {
	a, issuesA := Score(weakContent(), Metrics{}, nil)
	b, issuesB := Score(weakContent(), Metrics{}, nil)
	if a != b || len(issuesA) != len(issuesB) {
		t.Errorf("identical input produced different output: %d/%d issues %d/%d",
			a, b, len(issuesA), len(issuesB))
	}
}

func TestRecommendCoversCategoriesAndCrawler(t *testing.T) {
	_, issues := Score(weakContent(), Metrics{}, nil)
	recs := Recommend(issues, "OpenAI-GPT")
	if len(recs) == 0 {
		t.Fatal("expected recommendations for weak content")
	}
	found := false
	for _, rec := range recs {
		if rec == crawlerAdvice["OpenAI-GPT"] {
			found = true
		}
	}
	if !found {
		t.Error("expected crawler-specific advice for OpenAI-GPT")
	}
}

func TestRecommendNoIssues(t *testing.T) {
	if recs := Recommend(nil, "Claude"); recs != nil {
		t.Errorf("expected nil recommendations, got %v", recs)
	}
}

func TestAssessmentThresholds(t *testing.T) {
	if a := Assessment(59); a != Assessment(0) {
		t.Errorf("scores below 60 should share the critical assessment")
	}
	if Assessment(60) == Assessment(59) {
		t.Error("60 should not be critical")
	}
	if Assessment(80) == Assessment(79) {
		t.Error("80 should be the excellent tier")
	}
}

func manyAltlessImages(n int) []model.Image {
	images := make([]model.Image, n)
	for i := range images {
		images[i] = model.Image{Src: "img.jpg"}
	}
	return images
}
