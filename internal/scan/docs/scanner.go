// Package docs reports functions and classes that carry no
// documentation. Python definitions are expected to open with a
// docstring; JavaScript definitions with a leading comment.
package docs

import (
	"context"
	"fmt"
	"strings"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

// Scanner performs documentation coverage checks.
type Scanner struct{}

// New creates a new documentation scanner.
func New() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Name() string        { return "docs" }
func (s *Scanner) Description() string { return "Missing docstrings and comments on definitions" }

func (s *Scanner) Scan(ctx context.Context, src *parse.Source, opts analyzer.Options) ([]types.Issue, error) {
	if src.Root() == nil {
		return nil, nil
	}

	var issues []types.Issue

	for _, fn := range src.Functions() {
		if err := ctx.Err(); err != nil {
			return issues, err
		}
		// Inline function expressions and arrow callbacks are exempt.
		if !src.Grammar.DocumentableTypes[fn.Node.Type()] {
			continue
		}
		// Leading underscore marks a private helper; those may go
		// undocumented.
		if strings.HasPrefix(fn.Name, "_") || fn.Documented {
			continue
		}
		issues = append(issues, types.Issue{
			Message:    fmt.Sprintf("Function %q is missing documentation", fn.Name),
			Severity:   types.SeverityLow,
			Category:   types.CategoryDocumentation,
			LineNumber: fn.StartLine,
			Suggestion: "Add a docstring describing what the function does",
		})
	}

	for _, cls := range src.Classes() {
		if cls.Documented {
			continue
		}
		issues = append(issues, types.Issue{
			Message:    fmt.Sprintf("Class %q is missing documentation", cls.Name),
			Severity:   types.SeverityLow,
			Category:   types.CategoryDocumentation,
			LineNumber: cls.StartLine,
			Suggestion: "Add a docstring describing the class responsibility",
		})
	}

	return issues, nil
}
