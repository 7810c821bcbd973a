package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/foliokit/foliokit/config"
	jsoniter "github.com/json-iterator/go"
)

const schemaContext = "https://schema.org"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Schema is one JSON-LD object ready for serialization.
type Schema map[string]any

// PersonSchema describes the site author.
func PersonSchema(site *config.SiteConfig) Schema {
	s := Schema{
		"@context": schemaContext,
		"@type":    "Person",
		"name":     site.Author,
	}
	if site.JobTitle != "" {
		s["jobTitle"] = site.JobTitle
	}
	if site.Email != "" {
		s["email"] = site.Email
	}
	if site.BaseURL != "" {
		s["url"] = site.BaseURL
	}
	if site.Location != "" {
		s["address"] = Schema{"@type": "PostalAddress", "addressLocality": site.Location}
	}
	if len(site.Skills) > 0 {
		s["knowsAbout"] = site.Skills
	}
	if len(site.Social) > 0 {
		sameAs := make([]string, 0, len(site.Social))
		for _, link := range site.Social {
			sameAs = append(sameAs, link.URL)
		}
		s["sameAs"] = sameAs
	}
	return s
}

// WebSiteSchema describes the portfolio site itself.
func WebSiteSchema(site *config.SiteConfig) Schema {
	s := Schema{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      site.BaseURL,
	}
	if site.Description != "" {
		s["description"] = site.Description
	}
	if site.Author != "" {
		s["author"] = Schema{"@type": "Person", "name": site.Author}
	}
	return s
}

// CreativeWorkSchemas emits one CreativeWork per configured project.
func CreativeWorkSchemas(site *config.SiteConfig) []Schema {
	works := make([]Schema, 0, len(site.Projects))
	for _, p := range site.Projects {
		w := Schema{
			"@context": schemaContext,
			"@type":    "CreativeWork",
			"name":     p.Title,
		}
		if p.Description != "" {
			w["description"] = p.Description
		}
		if p.URL != "" {
			w["url"] = p.URL
		}
		if len(p.Tech) > 0 {
			w["keywords"] = p.Tech
		}
		if p.Year != 0 {
			w["dateCreated"] = fmt.Sprintf("%d", p.Year)
		}
		if site.Author != "" {
			w["author"] = Schema{"@type": "Person", "name": site.Author}
		}
		works = append(works, w)
	}
	return works
}

// FAQPageSchema emits a FAQPage when FAQ entries exist, nil otherwise.
func FAQPageSchema(site *config.SiteConfig) Schema {
	if len(site.FAQ) == 0 {
		return nil
	}
	entries := make([]Schema, 0, len(site.FAQ))
	for _, f := range site.FAQ {
		entries = append(entries, Schema{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": Schema{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return Schema{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entries,
	}
}

// BreadcrumbListSchema lists the configured pages as breadcrumb items.
func BreadcrumbListSchema(site *config.SiteConfig) Schema {
	if len(site.Pages) == 0 {
		return nil
	}
	items := make([]Schema, 0, len(site.Pages))
	for i, p := range site.Pages {
		items = append(items, Schema{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     p.Title,
			"item":     site.BaseURL + p.Path,
		})
	}
	return Schema{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// JobPostingSchemas emits one JobPosting per experience entry so crawlers can
// reconstruct a work history.
func JobPostingSchemas(site *config.SiteConfig) []Schema {
	jobs := make([]Schema, 0, len(site.Experience))
	for _, e := range site.Experience {
		j := Schema{
			"@context": schemaContext,
			"@type":    "JobPosting",
			"title":    e.Role,
			"hiringOrganization": Schema{
				"@type": "Organization",
				"name":  e.Company,
			},
		}
		if e.Description != "" {
			j["description"] = e.Description
		}
		if e.Start != "" {
			j["datePosted"] = e.Start
		}
		jobs = append(jobs, j)
	}
	return jobs
}

// AllSchemas collects every schema the site config can produce.
func AllSchemas(site *config.SiteConfig) []Schema {
	schemas := []Schema{PersonSchema(site), WebSiteSchema(site)}
	schemas = append(schemas, CreativeWorkSchemas(site)...)
	if faq := FAQPageSchema(site); faq != nil {
		schemas = append(schemas, faq)
	}
	if crumbs := BreadcrumbListSchema(site); crumbs != nil {
		schemas = append(schemas, crumbs)
	}
	schemas = append(schemas, JobPostingSchemas(site)...)
	return schemas
}

// HTMLScriptTag wraps one schema in an inline JSON-LD script tag.
func HTMLScriptTag(schema Schema) (string, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return `<script type="application/ld+json">` + string(data) + `</script>`, nil
}

// WriteSchemas serializes all schemas to src/data/structured-data.json.
func WriteSchemas(site *config.SiteConfig, dataDir string) (string, error) {
	schemas := AllSchemas(site)
	data, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schemas: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dataDir, "structured-data.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write structured data: %w", err)
	}
	return filepath.Abs(path)
}
