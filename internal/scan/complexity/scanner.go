// Package complexity flags functions whose cyclomatic complexity
// exceeds a configurable threshold, and code whose block nesting runs
// too deep. It needs a syntax tree; without one it contributes nothing.
package complexity

import (
	"context"
	"fmt"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

// Scanner performs complexity threshold checks.
type Scanner struct{}

// New creates a new complexity scanner.
func New() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Name() string        { return "complexity" }
func (s *Scanner) Description() string { return "Cyclomatic complexity and nesting depth thresholds" }

func (s *Scanner) Scan(ctx context.Context, src *parse.Source, opts analyzer.Options) ([]types.Issue, error) {
	root := src.Root()
	if root == nil {
		return nil, nil
	}

	maxComplexity := opts.MaxComplexity
	if maxComplexity <= 0 {
		maxComplexity = analyzer.DefaultOptions().MaxComplexity
	}
	maxNesting := opts.MaxNestingDepth
	if maxNesting <= 0 {
		maxNesting = analyzer.DefaultOptions().MaxNestingDepth
	}

	var issues []types.Issue

	for _, fn := range src.Functions() {
		if err := ctx.Err(); err != nil {
			return issues, err
		}
		cyclo := metrics.CyclomaticOf(src, fn.Node)
		if cyclo > maxComplexity {
			issues = append(issues, types.Issue{
				Message:    fmt.Sprintf("Function %q has high cyclomatic complexity: %d (max: %d)", fn.Name, cyclo, maxComplexity),
				Severity:   types.SeverityMedium,
				Category:   types.CategoryComplexity,
				LineNumber: fn.StartLine,
				Suggestion: "Break the function down into smaller functions",
			})
		}
	}

	if depth := metrics.MaxNestingOf(src, root); depth > maxNesting {
		issues = append(issues, types.Issue{
			Message:    fmt.Sprintf("Deep nesting detected: %d levels (max: %d)", depth, maxNesting),
			Severity:   types.SeverityMedium,
			Category:   types.CategoryComplexity,
			Suggestion: "Reduce nesting with early returns or extracted functions",
		})
	}

	return issues, nil
}
