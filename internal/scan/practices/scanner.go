// Package practices flags language-specific anti-patterns: bare
// except clauses, mutable default arguments and global statements in
// Python, var declarations and loose equality in JavaScript.
package practices

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

// Scanner performs best-practice checks.
type Scanner struct{}

// New creates a new best-practices scanner.
func New() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Name() string        { return "practices" }
func (s *Scanner) Description() string { return "Language-specific anti-pattern detection" }

func (s *Scanner) Scan(ctx context.Context, src *parse.Source, opts analyzer.Options) ([]types.Issue, error) {
	root := src.Root()
	if root == nil {
		return nil, nil
	}

	var check func(src *parse.Source, n *sitter.Node) *types.Issue
	switch src.Language {
	case types.LanguagePython:
		check = checkPython
	case types.LanguageJavaScript, types.LanguageTypeScript:
		check = checkJavaScript
	default:
		return nil, nil
	}

	var issues []types.Issue
	var walk func(n *sitter.Node) error
	walk = func(n *sitter.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if issue := check(src, n); issue != nil {
			issues = append(issues, *issue)
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if err := walk(n.Child(i)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return issues, err
	}
	return issues, nil
}

func checkPython(src *parse.Source, n *sitter.Node) *types.Issue {
	line := int(n.StartPoint().Row) + 1
	switch n.Type() {
	case "except_clause":
		// A bare clause carries only the handler block as a named
		// child; a typed one also names the exception.
		if n.NamedChildCount() == 1 {
			return &types.Issue{
				Message:    "Bare except clause catches all exceptions",
				Severity:   types.SeverityMedium,
				Category:   types.CategoryBestPractice,
				LineNumber: line,
				Suggestion: "Catch specific exception types instead of a bare except",
			}
		}
	case "default_parameter", "typed_default_parameter":
		value := n.ChildByFieldName("value")
		if value == nil {
			return nil
		}
		switch value.Type() {
		case "list", "dictionary", "set":
			return &types.Issue{
				Message:    "Mutable default argument",
				Severity:   types.SeverityMedium,
				Category:   types.CategoryBestPractice,
				LineNumber: line,
				Suggestion: "Default to None and create the value inside the function",
			}
		}
	case "global_statement":
		return &types.Issue{
			Message:    "Use of global statement",
			Severity:   types.SeverityLow,
			Category:   types.CategoryBestPractice,
			LineNumber: line,
			Suggestion: "Pass state explicitly instead of mutating globals",
		}
	}
	return nil
}

func checkJavaScript(src *parse.Source, n *sitter.Node) *types.Issue {
	line := int(n.StartPoint().Row) + 1
	switch n.Type() {
	case "variable_declaration":
		// variable_declaration covers var; let and const parse as
		// lexical_declaration.
		return &types.Issue{
			Message:    "Use of var declaration",
			Severity:   types.SeverityLow,
			Category:   types.CategoryBestPractice,
			LineNumber: line,
			Suggestion: "Use let or const instead of var",
		}
	case "binary_expression":
		op := n.ChildByFieldName("operator")
		if op == nil {
			return nil
		}
		switch src.Content(op) {
		case "==", "!=":
			return &types.Issue{
				Message:    "Loose equality comparison",
				Severity:   types.SeverityLow,
				Category:   types.CategoryBestPractice,
				LineNumber: line,
				Suggestion: "Use === or !== for strict comparison",
			}
		}
	}
	return nil
}
