package simulator

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/foliokit/foliokit/internal/model"
	jsoniter "github.com/json-iterator/go"
)

// Extract parses raw HTML into the content value object the scorer consumes.
// It mirrors the in-page extraction script signal for signal.
func Extract(body []byte, pageURL string) (*model.ExtractedContent, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	base, _ := url.Parse(pageURL)

	content := &model.ExtractedContent{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
		Headings:        []model.Heading{},
		Paragraphs:      []string{},
		Links:           []model.Link{},
		Images:          []model.Image{},
		StructuredData:  []any{},
	}

	for level := 1; level <= 6; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, sel *goquery.Selection) {
			content.Headings = append(content.Headings, model.Heading{
				Level: level,
				Text:  strings.TrimSpace(sel.Text()),
			})
		})
	}

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			content.Paragraphs = append(content.Paragraphs, text)
		}
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		resolved := href
		linkType := "external"
		if base != nil {
			if u, err := base.Parse(href); err == nil {
				resolved = u.String()
				if u.Host == base.Host {
					linkType = "internal"
				}
			}
		}
		content.Links = append(content.Links, model.Link{
			URL:  resolved,
			Text: strings.TrimSpace(sel.Text()),
			Type: linkType,
		})
	})

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		content.Images = append(content.Images, model.Image{
			Src:   sel.AttrOr("src", ""),
			Alt:   sel.AttrOr("alt", ""),
			Title: sel.AttrOr("title", ""),
		})
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var block any
		if err := jsoniter.UnmarshalFromString(sel.Text(), &block); err == nil {
			content.StructuredData = append(content.StructuredData, block)
		}
	})

	return content, nil
}
