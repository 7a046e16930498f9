// Package security scans raw source lines against a fixed catalogue of
// dangerous patterns: dynamic code execution, shell invocation, unsafe
// deserialization, hardcoded credentials, and friends. It needs no
// syntax tree, so it runs for every language.
package security

import (
	"context"
	"strings"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

const snippetLimit = 50

// Scanner performs security pattern analysis.
type Scanner struct{}

// New creates a new security scanner.
func New() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Name() string        { return "security" }
func (s *Scanner) Description() string { return "Dangerous call and credential pattern detection" }

func (s *Scanner) Scan(ctx context.Context, src *parse.Source, _ analyzer.Options) ([]types.Issue, error) {
	rules := RulesFor(src.Language)

	var issues []types.Issue
	for i, line := range src.Lines {
		if err := ctx.Err(); err != nil {
			return issues, err
		}
		for _, rule := range rules {
			if !rule.Pattern.MatchString(line) {
				continue
			}
			if rule.Exclude != nil && rule.Exclude.MatchString(line) {
				continue
			}
			issues = append(issues, types.Issue{
				Message:     rule.Message,
				Severity:    rule.Severity,
				Category:    types.CategorySecurity,
				LineNumber:  i + 1,
				Suggestion:  rule.Suggestion,
				CodeSnippet: snippet(line),
			})
		}
	}

	return issues, nil
}

func snippet(line string) string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) > snippetLimit {
		return trimmed[:snippetLimit]
	}
	return trimmed
}
