package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rmaia/critic/pkg/types"
)

// MarkdownFormatter renders the result as Markdown tables suitable for
// pasting into docs, issues, or pull-request descriptions.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, result *types.ReviewResult) error {
	fmt.Fprintf(w, "## Code Review — `%s` (%s)\n\n", result.CodeHash, result.Language)
	fmt.Fprintf(w, "**Grade:** %s · **Risk:** %s · **Issues:** %d\n\n",
		result.Summary.QualityGrade, result.Summary.RiskLevel, result.Summary.TotalIssues)

	if len(result.Issues) == 0 {
		fmt.Fprintln(w, "_No issues found._")
	} else {
		fmt.Fprintln(w, "| Severity | Line | Category | Message |")
		fmt.Fprintln(w, "|----------|------|----------|---------|")

		for _, issue := range sortedIssues(result) {
			line := "-"
			if issue.LineNumber > 0 {
				line = fmt.Sprintf("%d", issue.LineNumber)
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
				severityBadge(issue.Severity), line, issue.Category, escapeMarkdown(issue.Message))
		}
	}

	fmt.Fprintln(w, "\n### Metrics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| Lines of code | %d |\n", result.Metrics.LinesOfCode)
	fmt.Fprintf(w, "| Cyclomatic complexity | %d |\n", result.Metrics.CyclomaticComplexity)
	fmt.Fprintf(w, "| Cognitive complexity | %d |\n", result.Metrics.CognitiveComplexity)
	fmt.Fprintf(w, "| Maintainability index | %.1f |\n", result.Metrics.MaintainabilityIndex)
	fmt.Fprintf(w, "| Functions | %d |\n", result.Metrics.FunctionCount)
	fmt.Fprintf(w, "| Classes | %d |\n", result.Metrics.ClassCount)
	fmt.Fprintf(w, "| Max nesting depth | %d |\n", result.Metrics.NestingDepth)

	if result.AISuggestions != "" {
		fmt.Fprintf(w, "\n### AI Suggestions\n\n%s\n", result.AISuggestions)
	}

	return nil
}

// severityBadge returns a bold, uppercased severity label for Markdown.
func severityBadge(s types.Severity) string {
	return fmt.Sprintf("**%s**", strings.ToUpper(string(s)))
}

// escapeMarkdown escapes pipe characters that would break Markdown tables.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
