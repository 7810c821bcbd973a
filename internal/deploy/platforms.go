// Package deploy writes hosting-platform configuration and pushes the built
// site to static hosts.
package deploy

import (
	"fmt"
	"os"
	"path/filepath"
)

const vercelConfig = `{
  "version": 2,
  "outputDirectory": "public",
  "cleanUrls": true,
  "headers": [
    {
      "source": "/llms.txt",
      "headers": [{ "key": "Content-Type", "value": "text/plain; charset=utf-8" }]
    }
  ]
}
`

const netlifyConfig = `[build]
  publish = "public"

[[headers]]
  for = "/llms.txt"
  [headers.values]
    Content-Type = "text/plain; charset=utf-8"

[[redirects]]
  from = "/*"
  to = "/index.html"
  status = 200
`

// WriteConfig writes the platform's deployment config file into the project
// root and returns its path. Unknown platforms are an error.
func WriteConfig(platform, projectDir string) (string, error) {
	var name, body string
	switch platform {
	case "vercel":
		name, body = "vercel.json", vercelConfig
	case "netlify":
		name, body = "netlify.toml", netlifyConfig
	default:
		return "", fmt.Errorf("unknown deploy platform %q", platform)
	}

	path := filepath.Join(projectDir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return filepath.Abs(path)
}
