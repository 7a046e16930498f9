// Package style flags simple formatting problems: overlong lines,
// trailing whitespace, multiple statements on one line, and imports
// that appear after other code. It works on raw text only.
package style

import (
	"context"
	"fmt"
	"strings"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

// Scanner performs code style checks.
type Scanner struct{}

// New creates a new style scanner.
func New() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Name() string        { return "style" }
func (s *Scanner) Description() string { return "Line length and formatting checks" }

func (s *Scanner) Scan(ctx context.Context, src *parse.Source, opts analyzer.Options) ([]types.Issue, error) {
	maxLen := opts.MaxLineLength
	if maxLen <= 0 {
		maxLen = analyzer.DefaultOptions().MaxLineLength
	}

	var issues []types.Issue
	importSectionEnded := false

	for i, line := range src.Lines {
		if err := ctx.Err(); err != nil {
			return issues, err
		}
		lineNo := i + 1

		if len(line) > maxLen {
			issues = append(issues, types.Issue{
				Message:    fmt.Sprintf("Line too long (%d > %d)", len(line), maxLen),
				Severity:   types.SeverityLow,
				Category:   types.CategoryStyle,
				LineNumber: lineNo,
				Suggestion: "Break the line into multiple lines",
			})
		}

		if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
			issues = append(issues, types.Issue{
				Message:    "Trailing whitespace",
				Severity:   types.SeverityInfo,
				Category:   types.CategoryStyle,
				LineNumber: lineNo,
			})
		}

		trimmed := strings.TrimSpace(line)

		if src.Language == types.LanguagePython {
			if trimmed != "" && !strings.HasPrefix(trimmed, "#") && !isImport(trimmed) {
				importSectionEnded = true
			}
			if importSectionEnded && isImport(trimmed) {
				issues = append(issues, types.Issue{
					Message:    "Import not at top of file",
					Severity:   types.SeverityLow,
					Category:   types.CategoryStyle,
					LineNumber: lineNo,
					Suggestion: "Move imports to the top of the file",
				})
			}
		}

		if multipleStatements(src.Language, trimmed) {
			issues = append(issues, types.Issue{
				Message:    "Multiple statements on one line",
				Severity:   types.SeverityLow,
				Category:   types.CategoryStyle,
				LineNumber: lineNo,
				Suggestion: "Split into separate lines",
			})
		}
	}

	return issues, nil
}

func isImport(trimmed string) bool {
	return strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ")
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}

// multipleStatements reports whether a line chains statements with
// semicolons. In Python any semicolon qualifies; in languages where a
// trailing semicolon is idiomatic, only a semicolon followed by more
// code does.
func multipleStatements(lang types.Language, trimmed string) bool {
	if trimmed == "" || isComment(trimmed) {
		return false
	}
	if lang == types.LanguagePython {
		return strings.Contains(trimmed, ";")
	}
	return strings.Contains(strings.TrimRight(trimmed, ";"), ";")
}
