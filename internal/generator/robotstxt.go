package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foliokit/foliokit/config"
)

// aiCrawlerTokens are the AI crawler product tokens the generated robots.txt
// explicitly welcomes.
var aiCrawlerTokens = []string{"GPTBot", "Google-Extended", "ClaudeBot", "anthropic-ai", "PerplexityBot", "CCBot"}

// BuildRobotsTxt renders a robots.txt that allows AI crawlers and points at
// the sitemap.
func BuildRobotsTxt(site *config.SiteConfig) string {
	var b strings.Builder

	b.WriteString("User-agent: *\nAllow: /\n\n")
	for _, token := range aiCrawlerTokens {
		fmt.Fprintf(&b, "User-agent: %s\nAllow: /\n\n", token)
	}
	if site.BaseURL != "" {
		fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", strings.TrimSuffix(site.BaseURL, "/"))
	}

	return b.String()
}

// WriteRobotsTxt renders robots.txt into the public directory.
func WriteRobotsTxt(site *config.SiteConfig, publicDir string) (string, error) {
	if err := os.MkdirAll(publicDir, 0755); err != nil {
		return "", fmt.Errorf("create public dir: %w", err)
	}
	path := filepath.Join(publicDir, "robots.txt")
	if err := os.WriteFile(path, []byte(BuildRobotsTxt(site)), 0644); err != nil {
		return "", fmt.Errorf("write robots.txt: %w", err)
	}
	return filepath.Abs(path)
}
