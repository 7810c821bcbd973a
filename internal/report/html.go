package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/foliokit/foliokit/internal/model"
)

// htmlTemplate is a single self-contained document: inline CSS, no external
// assets, usable offline.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Crawler Simulation Report — {{.URL}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 0; background: #f5f6fa; color: #2d3436; }
.wrap { max-width: 960px; margin: 0 auto; padding: 32px 16px; }
header { background: #6c5ce7; color: #fff; padding: 24px; border-radius: 8px; }
header h1 { margin: 0 0 8px; font-size: 22px; }
header p { margin: 0; opacity: .85; }
.score { font-size: 48px; font-weight: 700; }
.good { color: #00b894; } .fair { color: #fdcb6e; } .poor { color: #d63031; }
section { background: #fff; border-radius: 8px; padding: 20px 24px; margin-top: 20px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
section h2 { margin-top: 0; font-size: 17px; border-bottom: 1px solid #dfe6e9; padding-bottom: 8px; }
table { width: 100%; border-collapse: collapse; font-size: 14px; }
th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #ecf0f1; }
th { background: #f1f2f6; }
.bar { background: #dfe6e9; border-radius: 4px; height: 10px; overflow: hidden; }
.bar span { display: block; height: 100%; background: #6c5ce7; }
.issue { padding: 6px 0; font-size: 14px; }
.impact-high { color: #d63031; font-weight: 600; }
.impact-medium { color: #e17055; }
.impact-low { color: #636e72; }
.rec { font-size: 14px; padding: 4px 0; }
footer { text-align: center; font-size: 12px; color: #b2bec3; margin-top: 24px; }
</style>
</head>
<body>
<div class="wrap">
<header>
<h1>AI Crawler Simulation Report</h1>
<p>{{.URL}} &middot; {{.Timestamp.Format "2006-01-02 15:04:05 MST"}}</p>
<div class="score {{scoreClass .OverallScore}}">{{.OverallScore}}/100</div>
</header>

<section>
<h2>Per-Crawler Results</h2>
<table>
<tr><th>Crawler</th><th>Score</th><th>Response (ms)</th><th>Content (bytes)</th><th>Status</th><th>Issues</th></tr>
{{range .CrawlerResults}}
<tr>
<td>{{.CrawlerName}}</td>
<td class="{{scoreClass .AIVisibilityScore}}">{{.AIVisibilityScore}}</td>
<td>{{.ResponseTime}}</td>
<td>{{.ContentLength}}</td>
<td>{{.StatusCode}}</td>
<td>{{len .Issues}}</td>
</tr>
{{end}}
</table>
</section>

<section>
<h2>Category Scores</h2>
<table>
{{range categories .}}
<tr><td style="width:140px">{{.Name}}</td>
<td><div class="bar"><span style="width: {{.Score}}%"></span></div></td>
<td style="width:60px">{{.Score}}/100</td></tr>
{{end}}
</table>
</section>

{{if .CommonIssues}}
<section>
<h2>Common Issues</h2>
{{range .CommonIssues}}
<div class="issue"><span class="impact-{{.Impact}}">[{{.Impact}}]</span> <strong>{{.Category}}</strong> — {{.Message}}</div>
{{end}}
</section>
{{end}}

{{if .Recommendations}}
<section>
<h2>Recommendations</h2>
{{range .Recommendations}}<div class="rec">&#8226; {{.}}</div>{{end}}
</section>
{{end}}

<section>
<h2>Summary</h2>
<p>{{.Summary}}</p>
</section>

<footer>Generated by foliokit</footer>
</div>
</body>
</html>
`

type namedScore struct {
	Name  string
	Score int
}

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"scoreClass": func(score int) string {
		switch {
		case score >= 80:
			return "good"
		case score >= 60:
			return "fair"
		default:
			return "poor"
		}
	},
	"categories": func(r *model.SimulationReport) []namedScore {
		return []namedScore{
			{"Content", r.CategoryScores.Content},
			{"Structure", r.CategoryScores.Structure},
			{"Performance", r.CategoryScores.Performance},
			{"SEO", r.CategoryScores.SEO},
			{"Accessibility", r.CategoryScores.Accessibility},
		}
	},
}).Parse(htmlTemplate))

// RenderHTML builds the self-contained report document.
func RenderHTML(r *model.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHTML writes the HTML report and returns the absolute path.
func WriteHTML(r *model.SimulationReport, dir string) (string, error) {
	data, err := RenderHTML(r)
	if err != nil {
		return "", err
	}
	path, err := outputPath(dir, r.URL, ".html")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write html report: %w", err)
	}
	return path, nil
}
