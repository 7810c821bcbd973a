package generator

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/foliokit/foliokit/config"
)

func sampleSite() *config.SiteConfig {
	return &config.SiteConfig{
		Name:        "Jane Doe Portfolio",
		Author:      "Jane Doe",
		JobTitle:    "Software Engineer",
		Description: "Distributed systems and developer tooling.",
		BaseURL:     "https://janedoe.dev",
		Email:       "jane@janedoe.dev",
		Location:    "Berlin",
		Skills:      []string{"Go", "Kubernetes"},
		Social: []config.SocialLink{
			{Platform: "GitHub", URL: "https://github.com/janedoe"},
		},
		Projects: []config.Project{
			{Title: "Tracer", Description: "An observability pipeline.", URL: "https://github.com/janedoe/tracer", Tech: []string{"Go"}, Year: 2025},
		},
		Experience: []config.Experience{
			{Role: "Senior Engineer", Company: "Acme", Description: "Built the platform.", Start: "2021", End: "2025"},
		},
		FAQ: []config.FAQEntry{
			{Question: "Are you available for contracts?", Answer: "Yes, from Q4."},
		},
		Pages: []config.Page{
			{Path: "/", Title: "Home", Priority: 1.0},
			{Path: "/projects", Title: "Projects", Priority: 0.8},
		},
	}
}

func TestBuildLlmsTxtMarkdown(t *testing.T) {
	out, err := BuildLlmsTxt(sampleSite(), "en", "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"# Jane Doe Portfolio", "## About", "Jane Doe — Software Engineer",
		"## Skills", "- Go", "### Tracer", "## Experience", "**Senior Engineer**",
		"## FAQ", "Are you available for contracts?", "jane@janedoe.dev",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestBuildLlmsTxtOmitsAbsentFields(t *testing.T) {
	site := &config.SiteConfig{Name: "Minimal", Author: "Jane Doe"}
	out, err := BuildLlmsTxt(site, "en", "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, absent := range []string{"## Skills", "## Projects", "## Experience", "## FAQ"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should omit %q for a site without that data", absent)
		}
	}
}

func TestBuildLlmsTxtLanguages(t *testing.T) {
	es, err := BuildLlmsTxt(sampleSite(), "es", "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(es, "## Habilidades") {
		t.Error("Spanish output should use Spanish section labels")
	}

	// unknown language falls back to English
	fallback, err := BuildLlmsTxt(sampleSite(), "fr", "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(fallback, "## Skills") {
		t.Error("unknown language should fall back to English labels")
	}
}

func TestBuildLlmsTxtPlainStripsMarkdown(t *testing.T) {
	out, err := BuildLlmsTxt(sampleSite(), "en", "plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, marker := range []string{"# ", "## ", "**"} {
		if strings.Contains(out, marker) {
			t.Errorf("plain output still contains markdown marker %q", marker)
		}
	}
	if !strings.Contains(out, "Jane Doe Portfolio") {
		t.Error("plain output lost the site name")
	}
}

func TestBuildLlmsTxtStructured(t *testing.T) {
	out, err := BuildLlmsTxt(sampleSite(), "en", "structured")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"name: Jane Doe Portfolio", "author: Jane Doe", "url: https://janedoe.dev",
		"project: Tracer", "experience: Senior Engineer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("structured output missing %q", want)
		}
	}
}

func TestBuildLlmsTxtUnknownFormat(t *testing.T) {
	if _, err := BuildLlmsTxt(sampleSite(), "en", "yaml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestHTMLScriptTag(t *testing.T) {
	tag, err := HTMLScriptTag(PersonSchema(sampleSite()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(tag, `<script type="application/ld+json">`) || !strings.HasSuffix(tag, "</script>") {
		t.Errorf("script tag framing wrong: %s", tag)
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(tag, `<script type="application/ld+json">`), "</script>")
	var decoded map[string]any
	if err := json.Unmarshal([]byte(inner), &decoded); err != nil {
		t.Fatalf("inner payload is not valid JSON: %v", err)
	}
	if decoded["@type"] != "Person" || decoded["name"] != "Jane Doe" {
		t.Errorf("unexpected payload: %v", decoded)
	}
}

func TestFAQPageSchemaNilWithoutEntries(t *testing.T) {
	site := sampleSite()
	site.FAQ = nil
	if s := FAQPageSchema(site); s != nil {
		t.Errorf("expected nil FAQPage for a site without FAQ entries, got %v", s)
	}
}

func TestAllSchemasComposition(t *testing.T) {
	schemas := AllSchemas(sampleSite())
	types := make(map[string]int)
	for _, s := range schemas {
		if s["@context"] != "https://schema.org" {
			t.Errorf("schema missing @context: %v", s)
		}
		if typ, ok := s["@type"].(string); ok {
			types[typ]++
		}
	}
	for _, want := range []string{"Person", "WebSite", "CreativeWork", "FAQPage", "BreadcrumbList", "JobPosting"} {
		if types[want] == 0 {
			t.Errorf("expected a %s schema, got types %v", want, types)
		}
	}
}

func TestBuildSitemap(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	data, err := BuildSitemap(sampleSite(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}
	if len(set.URLs) != 2 {
		t.Fatalf("urls: got %d, want 2", len(set.URLs))
	}
	if set.URLs[0].Loc != "https://janedoe.dev/" {
		t.Errorf("first loc: got %s", set.URLs[0].Loc)
	}
	if set.URLs[0].LastMod != "2026-08-28" {
		t.Errorf("lastmod: got %s", set.URLs[0].LastMod)
	}
	if set.URLs[1].Priority != 0.8 {
		t.Errorf("priority: got %v", set.URLs[1].Priority)
	}
}

func TestBuildRobotsTxt(t *testing.T) {
	out := BuildRobotsTxt(sampleSite())
	for _, token := range []string{"GPTBot", "Google-Extended", "ClaudeBot"} {
		if !strings.Contains(out, "User-agent: "+token) {
			t.Errorf("robots.txt missing AI crawler token %s", token)
		}
	}
	if !strings.Contains(out, "Sitemap: https://janedoe.dev/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line:\n%s", out)
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	if err := Scaffold(dir, sampleSite(), "en"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	for _, rel := range []string{"foliokit.yaml", filepath.Join("public", "index.html")} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(dir, "public", "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), `application/ld+json`) {
		t.Error("starter index.html should embed JSON-LD")
	}
}
