package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/rmaia/critic/pkg/types"
)

// HTMLFormatter renders the result as a self-contained HTML report
// with styled severity badges and a metrics panel.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format(w io.Writer, result *types.ReviewResult) error {
	return htmlTpl.Execute(w, templateData{
		Result: result,
		Issues: sortedIssues(result),
	})
}

type templateData struct {
	Result *types.ReviewResult
	Issues []types.Issue
}

// severityClass maps a Severity to a CSS class name.
func severityClass(s types.Severity) string {
	switch s {
	case types.SeverityCritical:
		return "critical"
	case types.SeverityHigh:
		return "high"
	case types.SeverityMedium:
		return "medium"
	case types.SeverityLow:
		return "low"
	default:
		return "info"
	}
}

// gradeClass maps a Grade to a CSS class name.
func gradeClass(g types.Grade) string {
	switch g {
	case types.GradeA, types.GradeB:
		return "good"
	case types.GradeC:
		return "fair"
	default:
		return "poor"
	}
}

var funcMap = template.FuncMap{
	"severityClass": severityClass,
	"gradeClass":    gradeClass,
	"countSeverity": func(r *types.ReviewResult, sev types.Severity) int {
		return r.Summary.BySeverity[sev]
	},
	"severityCritical": func() types.Severity { return types.SeverityCritical },
	"severityHigh":     func() types.Severity { return types.SeverityHigh },
	"severityMedium":   func() types.Severity { return types.SeverityMedium },
	"severityLow":      func() types.Severity { return types.SeverityLow },
	"severityInfo":     func() types.Severity { return types.SeverityInfo },
}

var htmlTpl = template.Must(template.New("report").Funcs(funcMap).Parse(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Critic Code Review</title>
<style>%s</style>
</head>
<body>
<div class="container">
  <h1>Critic Code Review</h1>
  <p class="meta">Code <code>{{.Result.CodeHash}}</code> &middot; {{.Result.Language}} &middot; grade <span class="grade {{gradeClass .Result.Summary.QualityGrade}}">{{.Result.Summary.QualityGrade}}</span> &middot; risk {{.Result.Summary.RiskLevel}}</p>

  <div class="summary-bar">
    <span class="badge critical">{{countSeverity .Result severityCritical}} Critical</span>
    <span class="badge high">{{countSeverity .Result severityHigh}} High</span>
    <span class="badge medium">{{countSeverity .Result severityMedium}} Medium</span>
    <span class="badge low">{{countSeverity .Result severityLow}} Low</span>
    <span class="badge info">{{countSeverity .Result severityInfo}} Info</span>
    <span class="total">{{.Result.Summary.TotalIssues}} total issues</span>
  </div>

  <section>
    <h2>Issues</h2>
    {{if not .Issues}}
      <p class="no-issues">No issues found.</p>
    {{else}}
      <table>
        <thead>
          <tr><th>Severity</th><th>Line</th><th>Category</th><th>Message</th></tr>
        </thead>
        <tbody>
          {{range .Issues}}
          <tr>
            <td><span class="badge {{severityClass .Severity}}">{{.Severity}}</span></td>
            <td>{{if .LineNumber}}{{.LineNumber}}{{end}}</td>
            <td>{{.Category}}</td>
            <td>
              {{.Message}}
              {{if or .Suggestion .CodeSnippet}}
              <details>
                <summary>Details</summary>
                {{if .CodeSnippet}}<p><code>{{.CodeSnippet}}</code></p>{{end}}
                {{if .Suggestion}}<p><strong>Suggestion:</strong> {{.Suggestion}}</p>{{end}}
              </details>
              {{end}}
            </td>
          </tr>
          {{end}}
        </tbody>
      </table>
    {{end}}
  </section>

  <section>
    <h2>Metrics</h2>
    <table>
      <tbody>
        <tr><th>Lines of code</th><td>{{.Result.Metrics.LinesOfCode}}</td></tr>
        <tr><th>Cyclomatic complexity</th><td>{{.Result.Metrics.CyclomaticComplexity}}</td></tr>
        <tr><th>Cognitive complexity</th><td>{{.Result.Metrics.CognitiveComplexity}}</td></tr>
        <tr><th>Maintainability index</th><td>{{printf "%%.1f" .Result.Metrics.MaintainabilityIndex}}</td></tr>
        <tr><th>Functions</th><td>{{.Result.Metrics.FunctionCount}}</td></tr>
        <tr><th>Classes</th><td>{{.Result.Metrics.ClassCount}}</td></tr>
        <tr><th>Max nesting depth</th><td>{{.Result.Metrics.NestingDepth}}</td></tr>
      </tbody>
    </table>
  </section>

  {{if .Result.AISuggestions}}
  <section>
    <h2>AI Suggestions</h2>
    <pre class="suggestions">{{.Result.AISuggestions}}</pre>
  </section>
  {{end}}
</div>
</body>
</html>`, cssStyles)))

const cssStyles = `
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;
     line-height:1.6;color:#1a1a2e;background:#f5f5fa;padding:2rem}
.container{max-width:960px;margin:0 auto}
h1{margin-bottom:.5rem;font-size:1.8rem}
h2{margin:1.5rem 0 .75rem;font-size:1.3rem;border-bottom:2px solid #e0e0e0;padding-bottom:.3rem}
.meta{color:#555;margin-bottom:1rem}
.grade{font-weight:700;padding:1px 8px;border-radius:10px;color:#fff}
.grade.good{background:#2e7d32}
.grade.fair{background:#f9a825;color:#333}
.grade.poor{background:#d32f2f}
.summary-bar{display:flex;gap:.5rem;flex-wrap:wrap;align-items:center;margin-bottom:1.5rem}
.total{margin-left:.5rem;font-weight:600}
.badge{display:inline-block;padding:2px 10px;border-radius:12px;font-size:.8rem;font-weight:700;color:#fff;text-transform:uppercase}
.badge.critical{background:#d32f2f}
.badge.high{background:#e53935}
.badge.medium{background:#f9a825;color:#333}
.badge.low{background:#0288d1}
.badge.info{background:#757575}
table{width:100%;border-collapse:collapse;margin-bottom:1rem}
th,td{text-align:left;padding:.5rem .75rem;border-bottom:1px solid #e0e0e0}
thead th{background:#eaeaea;font-weight:600}
tr:hover{background:#f0f0ff}
details{margin-top:.4rem}
summary{cursor:pointer;color:#1565c0;font-size:.85rem}
.no-issues{color:#666;font-style:italic}
.suggestions{white-space:pre-wrap;background:#fff;border:1px solid #e0e0e0;border-radius:6px;padding:1rem}
section{margin-bottom:2rem}
`
