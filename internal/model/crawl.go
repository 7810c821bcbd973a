package model

import "time"

type IssueType string

const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
	IssueInfo    IssueType = "info"
)

type IssueCategory string

const (
	CategoryContent       IssueCategory = "content"
	CategoryStructure     IssueCategory = "structure"
	CategoryPerformance   IssueCategory = "performance"
	CategorySEO           IssueCategory = "seo"
	CategoryAccessibility IssueCategory = "accessibility"
)

// Categories lists every issue category in report order.
func Categories() []IssueCategory {
	return []IssueCategory{CategoryContent, CategoryStructure, CategoryPerformance,
		CategorySEO, CategoryAccessibility}
}

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Weight orders impacts for sorting, high first.
func (i Impact) Weight() int {
	switch i {
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	}
	return 0
}

type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Type string `json:"type"` // "internal" or "external"
}

type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title,omitempty"`
}

// ExtractedContent is the value object produced by one page fetch. It is
// created fresh per load and never mutated afterwards.
type ExtractedContent struct {
	Title           string    `json:"title"`
	MetaDescription string    `json:"metaDescription"`
	Headings        []Heading `json:"headings"`
	Paragraphs      []string  `json:"paragraphs"`
	Links           []Link    `json:"links"`
	Images          []Image   `json:"images"`
	StructuredData  []any     `json:"structuredData"`
}

// H1Count returns the number of level-1 headings.
func (c *ExtractedContent) H1Count() int {
	n := 0
	for _, h := range c.Headings {
		if h.Level == 1 {
			n++
		}
	}
	return n
}

type CrawlIssue struct {
	Type     IssueType     `json:"type"`
	Category IssueCategory `json:"category"`
	Message  string        `json:"message"`
	Impact   Impact        `json:"impact"`
}

// CrawlResult is the outcome of simulating one crawler against one URL.
type CrawlResult struct {
	CrawlerName       string            `json:"crawlerName"`
	URL               string            `json:"url"`
	Timestamp         time.Time         `json:"timestamp"`
	ResponseTime      int64             `json:"responseTime"` // milliseconds
	StatusCode        int               `json:"statusCode"`
	ContentLength     int               `json:"contentLength"` // raw HTML bytes
	ExtractedContent  *ExtractedContent `json:"extractedContent"`
	AIVisibilityScore int               `json:"aiVisibilityScore"`
	Issues            []CrawlIssue      `json:"issues"`
	Recommendations   []string          `json:"recommendations"`
	Screenshot        string            `json:"screenshot,omitempty"`
}

// SimulationReport aggregates all crawler results for one URL. Built once,
// consumed by every renderer.
type SimulationReport struct {
	URL             string         `json:"url"`
	Timestamp       time.Time      `json:"timestamp"`
	OverallScore    int            `json:"overallScore"`
	CategoryScores  CategoryScores `json:"categoryScores"`
	CrawlerResults  []*CrawlResult `json:"crawlerResults"`
	CommonIssues    []CrawlIssue   `json:"commonIssues"`
	Recommendations []string       `json:"recommendations"`
	Summary         string         `json:"summary"`
}

type CategoryScores struct {
	Content       int `json:"content"`
	Structure     int `json:"structure"`
	Performance   int `json:"performance"`
	SEO           int `json:"seo"`
	Accessibility int `json:"accessibility"`
}
