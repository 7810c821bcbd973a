// Package generator builds the SEO-adjacent site artifacts: llms.txt,
// Schema.org JSON-LD, sitemap.xml and robots.txt.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foliokit/foliokit/config"
)

// llmsLabels holds the per-language section headings for llms.txt output.
// Unknown languages fall back to English.
var llmsLabels = map[string]map[string]string{
	"en": {
		"about": "About", "skills": "Skills", "projects": "Projects",
		"experience": "Experience", "contact": "Contact", "faq": "FAQ",
	},
	"es": {
		"about": "Acerca de", "skills": "Habilidades", "projects": "Proyectos",
		"experience": "Experiencia", "contact": "Contacto", "faq": "Preguntas frecuentes",
	},
	"de": {
		"about": "Über", "skills": "Fähigkeiten", "projects": "Projekte",
		"experience": "Erfahrung", "contact": "Kontakt", "faq": "FAQ",
	},
}

// BuildLlmsTxt renders the llms.txt document for the given language and
// format ("markdown", "plain" or "structured"). A field appears in the output
// iff the site config carries it.
func BuildLlmsTxt(site *config.SiteConfig, language, format string) (string, error) {
	labels, ok := llmsLabels[language]
	if !ok {
		labels = llmsLabels["en"]
	}

	switch format {
	case "", "markdown":
		return buildLlmsMarkdown(site, labels), nil
	case "plain":
		return buildLlmsPlain(site, labels), nil
	case "structured":
		return buildLlmsStructured(site, labels), nil
	default:
		return "", fmt.Errorf("unknown llms.txt format %q", format)
	}
}

func buildLlmsMarkdown(site *config.SiteConfig, labels map[string]string) string {
	var b strings.Builder

	if site.Name != "" {
		fmt.Fprintf(&b, "# %s\n\n", site.Name)
	}
	if site.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", site.Description)
	}
	if site.Author != "" {
		fmt.Fprintf(&b, "## %s\n\n%s", labels["about"], site.Author)
		if site.JobTitle != "" {
			fmt.Fprintf(&b, " — %s", site.JobTitle)
		}
		if site.Location != "" {
			fmt.Fprintf(&b, " (%s)", site.Location)
		}
		b.WriteString("\n\n")
	}
	if len(site.Skills) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", labels["skills"])
		for _, skill := range site.Skills {
			fmt.Fprintf(&b, "- %s\n", skill)
		}
		b.WriteString("\n")
	}
	if len(site.Projects) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", labels["projects"])
		for _, p := range site.Projects {
			fmt.Fprintf(&b, "### %s\n\n%s", p.Title, p.Description)
			if p.URL != "" {
				fmt.Fprintf(&b, "\n\n[%s](%s)", p.Title, p.URL)
			}
			if len(p.Tech) > 0 {
				fmt.Fprintf(&b, "\n\n_%s_", strings.Join(p.Tech, ", "))
			}
			b.WriteString("\n\n")
		}
	}
	if len(site.Experience) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", labels["experience"])
		for _, e := range site.Experience {
			fmt.Fprintf(&b, "- **%s**, %s (%s–%s): %s\n", e.Role, e.Company, e.Start, e.End, e.Description)
		}
		b.WriteString("\n")
	}
	if len(site.FAQ) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", labels["faq"])
		for _, f := range site.FAQ {
			fmt.Fprintf(&b, "**%s**\n\n%s\n\n", f.Question, f.Answer)
		}
	}
	if site.Email != "" || site.BaseURL != "" {
		fmt.Fprintf(&b, "## %s\n\n", labels["contact"])
		if site.Email != "" {
			fmt.Fprintf(&b, "- %s\n", site.Email)
		}
		if site.BaseURL != "" {
			fmt.Fprintf(&b, "- %s\n", site.BaseURL)
		}
		for _, s := range site.Social {
			fmt.Fprintf(&b, "- %s: %s\n", s.Platform, s.URL)
		}
	}

	return b.String()
}

func buildLlmsPlain(site *config.SiteConfig, labels map[string]string) string {
	md := buildLlmsMarkdown(site, labels)
	plain := strings.NewReplacer("# ", "", "## ", "", "### ", "", "**", "", "> ", "", "- ", "", "_", "")
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = plain.Replace(line)
	}
	return strings.Join(lines, "\n")
}

func buildLlmsStructured(site *config.SiteConfig, labels map[string]string) string {
	var b strings.Builder

	write := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", key, value)
		}
	}
	write("name", site.Name)
	write("description", site.Description)
	write("author", site.Author)
	write("job_title", site.JobTitle)
	write("location", site.Location)
	write("url", site.BaseURL)
	write("email", site.Email)
	if len(site.Skills) > 0 {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToLower(labels["skills"]), strings.Join(site.Skills, "; "))
	}
	for _, p := range site.Projects {
		fmt.Fprintf(&b, "project: %s | %s | %s\n", p.Title, p.Description, p.URL)
	}
	for _, e := range site.Experience {
		fmt.Fprintf(&b, "experience: %s | %s | %s-%s\n", e.Role, e.Company, e.Start, e.End)
	}
	for _, f := range site.FAQ {
		fmt.Fprintf(&b, "faq: %s | %s\n", f.Question, f.Answer)
	}

	return b.String()
}

// WriteLlmsTxt renders llms.txt into the public directory.
func WriteLlmsTxt(site *config.SiteConfig, language, format, publicDir string) (string, error) {
	content, err := BuildLlmsTxt(site, language, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(publicDir, 0755); err != nil {
		return "", fmt.Errorf("create public dir: %w", err)
	}
	path := filepath.Join(publicDir, "llms.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write llms.txt: %w", err)
	}
	return filepath.Abs(path)
}
