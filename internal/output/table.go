package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/rmaia/critic/pkg/types"
)

// TableFormatter renders the result as a colored terminal table.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, result *types.ReviewResult) error {
	fmt.Fprintf(w, "\nReview %s (%s) — %d issues\n", result.CodeHash, result.Language, result.Summary.TotalIssues)

	if len(result.Issues) == 0 {
		fmt.Fprintln(w, "  No issues found.")
	} else {
		issues := sortedIssues(result)

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Severity", "Line", "Category", "Message"})
		table.SetAutoWrapText(false)
		table.SetBorder(false)
		table.SetColumnSeparator("│")

		for _, issue := range issues {
			line := ""
			if issue.LineNumber > 0 {
				line = strconv.Itoa(issue.LineNumber)
			}
			table.Append([]string{colorSeverity(issue.Severity), line, string(issue.Category), issue.Message})
		}

		table.Render()
	}

	fmt.Fprintf(w, "\n  Grade: %s   Risk: %s\n", colorGrade(result.Summary.QualityGrade), result.Summary.RiskLevel)
	fmt.Fprintf(w, "  Lines: %d   Cyclomatic: %d   Cognitive: %d   Maintainability: %.1f\n",
		result.Metrics.LinesOfCode,
		result.Metrics.CyclomaticComplexity,
		result.Metrics.CognitiveComplexity,
		result.Metrics.MaintainabilityIndex,
	)
	fmt.Fprintf(w, "  Functions: %d   Classes: %d   Max nesting: %d\n",
		result.Metrics.FunctionCount,
		result.Metrics.ClassCount,
		result.Metrics.NestingDepth,
	)
	fmt.Fprintf(w, "  Summary: %s\n", formatSummary(result.Summary.BySeverity))

	if result.AISuggestions != "" {
		fmt.Fprintf(w, "\nAI Suggestions:\n%s\n", result.AISuggestions)
	}

	return nil
}

func sortIssues(issues []types.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		ri, rj := types.SeverityRank(issues[i].Severity), types.SeverityRank(issues[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return issues[i].LineNumber < issues[j].LineNumber
	})
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SeverityCritical:
		return color.RedString("CRITICAL")
	case types.SeverityHigh:
		return color.RedString("HIGH")
	case types.SeverityMedium:
		return color.YellowString("MEDIUM")
	case types.SeverityLow:
		return color.CyanString("LOW")
	case types.SeverityInfo:
		return color.WhiteString("INFO")
	default:
		return string(s)
	}
}

func colorGrade(g types.Grade) string {
	switch g {
	case types.GradeA, types.GradeB:
		return color.GreenString(string(g))
	case types.GradeC:
		return color.YellowString(string(g))
	default:
		return color.RedString(string(g))
	}
}

func formatSummary(counts map[types.Severity]int) string {
	total := 0
	for _, c := range counts {
		total += c
	}
	return fmt.Sprintf("%d issues (%d critical, %d high, %d medium, %d low, %d info)",
		total,
		counts[types.SeverityCritical],
		counts[types.SeverityHigh],
		counts[types.SeverityMedium],
		counts[types.SeverityLow],
		counts[types.SeverityInfo],
	)
}
