package types

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Severities lists all severity levels from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

// SeverityRank returns a numeric rank for sorting (lower = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	case SeverityInfo:
		return 4
	default:
		return 5
	}
}

// Category classifies what kind of problem an issue describes.
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryStyle         Category = "style"
	CategoryComplexity    Category = "complexity"
	CategoryDocumentation Category = "documentation"
	CategoryBestPractice  Category = "best_practice"
	CategorySyntax        Category = "syntax"
)

// Categories lists all issue categories in a fixed order.
var Categories = []Category{
	CategorySecurity,
	CategoryStyle,
	CategoryComplexity,
	CategoryDocumentation,
	CategoryBestPractice,
	CategorySyntax,
}

// Issue is a single problem discovered in the reviewed code.
// Issues are immutable once created; line numbers are 1-based.
type Issue struct {
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	LineNumber  int      `json:"line_number,omitempty"`
	Column      int      `json:"column,omitempty"`
	Suggestion  string   `json:"suggestion,omitempty"`
	CodeSnippet string   `json:"code_snippet,omitempty"`
}
