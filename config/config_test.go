package config

import (
	"testing"
	"time"
)

func TestDefaultIsComplete(t *testing.T) {
	cfg := Default()
	if cfg.Site == nil || cfg.CrawlerSettings == nil || cfg.ScoringSettings == nil ||
		cfg.OutputSettings == nil || cfg.DeploySettings == nil || cfg.ServeSettings == nil {
		t.Fatal("default config has nil sections")
	}
	if cfg.Language != "en" || cfg.LlmsTxtFormat != "markdown" {
		t.Errorf("unexpected language defaults: %s/%s", cfg.Language, cfg.LlmsTxtFormat)
	}
	if len(cfg.Site.Pages) == 0 {
		t.Error("default site should carry at least the home page")
	}
	if cfg.CrawlerSettings.NavigationTimeout != 30*time.Second {
		t.Errorf("navigation timeout: got %s", cfg.CrawlerSettings.NavigationTimeout)
	}
	if cfg.OutputSettings.ReportDir != "crawler-reports" {
		t.Errorf("report dir: got %s", cfg.OutputSettings.ReportDir)
	}
}

func TestDefaultScoringRubric(t *testing.T) {
	r := DefaultScoring()
	// worst case without a failed crawl must stay within 100
	worst := r.TitlePenalty + r.MetaPenalty + r.MissingH1Penalty + r.ParagraphPenalty +
		r.StructuredDataPenalty + r.AltPenaltyCap + r.SlowLoadPenalty
	if worst > 100 {
		t.Errorf("rubric penalties sum to %d, exceeding the 100-point scale", worst)
	}
	if r.PassThreshold != 80 {
		t.Errorf("pass threshold: got %d, want 80", r.PassThreshold)
	}
	if r.CommonIssueThreshold != 2 {
		t.Errorf("common issue threshold: got %d, want 2", r.CommonIssueThreshold)
	}
	if r.AltPenaltyCap < r.AltPenaltyPerImage {
		t.Error("alt penalty cap must be at least one image worth of penalty")
	}
}
