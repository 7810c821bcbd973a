package generator

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/foliokit/foliokit/config"
)

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	Xmlns   string    `xml:"xmlns,attr"`
	URLs    []siteURL `xml:"url"`
}

type siteURL struct {
	Loc      string  `xml:"loc"`
	LastMod  string  `xml:"lastmod"`
	Priority float64 `xml:"priority"`
}

// BuildSitemap renders sitemap.xml over the configured pages.
func BuildSitemap(site *config.SiteConfig, now time.Time) ([]byte, error) {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	lastMod := now.UTC().Format("2006-01-02")
	for _, p := range site.Pages {
		set.URLs = append(set.URLs, siteURL{
			Loc:      strings.TrimSuffix(site.BaseURL, "/") + p.Path,
			LastMod:  lastMod,
			Priority: p.Priority,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// WriteSitemap renders sitemap.xml into the public directory.
func WriteSitemap(site *config.SiteConfig, publicDir string) (string, error) {
	data, err := BuildSitemap(site, time.Now())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(publicDir, 0755); err != nil {
		return "", fmt.Errorf("create public dir: %w", err)
	}
	path := filepath.Join(publicDir, "sitemap.xml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write sitemap: %w", err)
	}
	return filepath.Abs(path)
}
