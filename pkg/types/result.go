package types

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// Grade is a letter grade derived from the maintainability index.
// Bands: A=80-100, B=60-79, C=40-59, D=20-39, F=0-19.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFor maps a maintainability index to a letter grade.
func GradeFor(maintainabilityIndex float64) Grade {
	switch {
	case maintainabilityIndex >= 80:
		return GradeA
	case maintainabilityIndex >= 60:
		return GradeB
	case maintainabilityIndex >= 40:
		return GradeC
	case maintainabilityIndex >= 20:
		return GradeD
	default:
		return GradeF
	}
}

// RiskLevel summarizes how dangerous the reviewed code looks overall.
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskLow      RiskLevel = "LOW"
)

// Metrics holds the computed code quality metrics for one review.
type Metrics struct {
	LinesOfCode          int     `json:"lines_of_code"`
	BlankLines           int     `json:"blank_lines"`
	CommentLines         int     `json:"comment_lines"`
	CyclomaticComplexity int     `json:"cyclomatic_complexity"`
	CognitiveComplexity  int     `json:"cognitive_complexity"`
	MaintainabilityIndex float64 `json:"maintainability_index"`
	FunctionCount        int     `json:"function_count"`
	ClassCount           int     `json:"class_count"`
	AvgFunctionLength    float64 `json:"avg_function_length"`
	MaxFunctionLength    int     `json:"max_function_length"`
	NestingDepth         int     `json:"nesting_depth"`
	Grade                Grade   `json:"grade"`
}

// Summary aggregates issue counts and derived ratings for one review.
type Summary struct {
	TotalIssues  int              `json:"total_issues"`
	BySeverity   map[Severity]int `json:"by_severity"`
	ByCategory   map[Category]int `json:"by_category"`
	QualityGrade Grade            `json:"quality_grade"`
	RiskLevel    RiskLevel        `json:"risk_level"`
}

// ReviewResult is the complete output of one code review request.
// It is created per request and never persisted server-side.
type ReviewResult struct {
	CodeHash      string    `json:"code_hash"`
	Language      Language  `json:"language"`
	Timestamp     time.Time `json:"timestamp"`
	ExecutionTime float64   `json:"execution_time"`
	Issues        []Issue   `json:"issues"`
	Metrics       Metrics   `json:"metrics"`
	Summary       Summary   `json:"summary"`
	AISuggestions string    `json:"ai_suggestions,omitempty"`
}

// NewReviewResult assembles a result from collected issues and metrics,
// computing the hash, timestamp, and summary. Issue order is preserved.
func NewReviewResult(code string, lang Language, issues []Issue, metrics Metrics) *ReviewResult {
	if issues == nil {
		issues = []Issue{}
	}
	return &ReviewResult{
		CodeHash:  HashCode(code),
		Language:  lang,
		Timestamp: time.Now(),
		Issues:    issues,
		Metrics:   metrics,
		Summary:   summarize(issues, metrics),
	}
}

// HashCode returns a short stable identifier for a piece of source code.
func HashCode(code string) string {
	sum := md5.Sum([]byte(code))
	return hex.EncodeToString(sum[:])[:12]
}

func summarize(issues []Issue, metrics Metrics) Summary {
	bySeverity := make(map[Severity]int, len(Severities))
	for _, s := range Severities {
		bySeverity[s] = 0
	}
	byCategory := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		byCategory[c] = 0
	}

	for _, issue := range issues {
		bySeverity[issue.Severity]++
		byCategory[issue.Category]++
	}

	return Summary{
		TotalIssues:  len(issues),
		BySeverity:   bySeverity,
		ByCategory:   byCategory,
		QualityGrade: metrics.Grade,
		RiskLevel:    riskLevel(bySeverity),
	}
}

func riskLevel(bySeverity map[Severity]int) RiskLevel {
	switch {
	case bySeverity[SeverityCritical] > 0:
		return RiskCritical
	case bySeverity[SeverityHigh] > 2:
		return RiskHigh
	case bySeverity[SeverityHigh] > 0:
		return RiskMedium
	default:
		return RiskLow
	}
}
