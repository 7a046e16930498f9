package output

import (
	"fmt"
	"io"

	"github.com/rmaia/critic/pkg/types"
)

// Formatter renders a review result to a writer.
type Formatter interface {
	Format(w io.Writer, result *types.ReviewResult) error
}

// GetFormatter returns the appropriate formatter for the given format string.
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown":
		return &MarkdownFormatter{}, nil
	case "html":
		return &HTMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, markdown, html)", format)
	}
}

// sortedIssues returns the issues ordered most severe first, with line
// number as the tie breaker. The result slice is a copy.
func sortedIssues(result *types.ReviewResult) []types.Issue {
	issues := make([]types.Issue, len(result.Issues))
	copy(issues, result.Issues)
	sortIssues(issues)
	return issues
}
