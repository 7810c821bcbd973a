package generator

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/foliokit/foliokit/config"
)

const configTemplate = `env: local
log_level: info
log_type: text
version: 1.0.0
language: %s
llms_txt_format: markdown

site:
  name: %q
  author: %q
  description: %q
  base_url: %q
  pages:
    - path: /
      title: Home
      priority: 1.0

crawler:
  navigation_timeout: 30s
  screenshots: false
  robots_cache_ttl: 30m

output:
  public_dir: public
  data_dir: src/data
  report_dir: crawler-reports
  screenshot_dir: crawler-reports/screenshots

deploy:
  platform: vercel
`

// Scaffold creates a new project directory with the starter config, a
// minimal index page wired with JSON-LD script tags, and the output dirs.
func Scaffold(dir string, site *config.SiteConfig, language string) error {
	for _, sub := range []string{"", "public", "src/data", "crawler-reports"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return fmt.Errorf("create project dir: %w", err)
		}
	}

	cfgBody := fmt.Sprintf(configTemplate, language, site.Name, site.Author, site.Description, site.BaseURL)
	if err := os.WriteFile(filepath.Join(dir, "foliokit.yaml"), []byte(cfgBody), 0644); err != nil {
		return fmt.Errorf("write foliokit.yaml: %w", err)
	}

	index, err := starterIndex(site)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "public", "index.html"), []byte(index), 0644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	return nil
}

func starterIndex(site *config.SiteConfig) (string, error) {
	var tags strings.Builder
	for _, schema := range []Schema{PersonSchema(site), WebSiteSchema(site)} {
		tag, err := HTMLScriptTag(schema)
		if err != nil {
			return "", err
		}
		tags.WriteString(tag)
		tags.WriteString("\n")
	}

	name := html.EscapeString(site.Name)
	description := html.EscapeString(site.Description)
	author := html.EscapeString(site.Author)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s — %s</title>
<meta name="description" content="%s">
%s</head>
<body>
<main>
<h1>%s</h1>
<p>%s</p>
<p>This site was scaffolded with foliokit. Edit foliokit.yaml and run
<code>foliokit generate all</code> to refresh the SEO artifacts.</p>
<p>Run <code>foliokit test ai-visibility</code> after deploying to check how
AI crawlers see this page.</p>
</main>
</body>
</html>
`, name, author, description, tags.String(), name, description), nil
}
