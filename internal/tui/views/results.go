package views

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmaia/critic/internal/tui/styles"
	"github.com/rmaia/critic/pkg/types"
)

// ResultsModel is the view model for displaying review results.
type ResultsModel struct {
	result    *types.ReviewResult
	cursor    int
	offset    int
	maxRows   int
	exported  bool
	exportErr string
}

// NewResultsModel creates a results view from a review result.
func NewResultsModel(result *types.ReviewResult) ResultsModel {
	return ResultsModel{
		result:  result,
		maxRows: 15,
	}
}

// Init returns nil (no initial command).
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles key events for scrolling and export.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	issues := m.issues()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(issues)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.maxRows {
					m.offset = m.cursor - m.maxRows + 1
				}
			}
		case "e":
			m.exportJSON()
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the results table and metrics panel.
func (m ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Critic — Review Results"))
	b.WriteString("\n\n")

	issues := m.issues()
	if len(issues) == 0 {
		b.WriteString("No issues found.\n")
	} else {
		b.WriteString(m.summaryLine(issues))
		b.WriteString("\n\n")

		header := fmt.Sprintf("  %-10s %-6s %-50s %s", "SEVERITY", "LINE", "MESSAGE", "CATEGORY")
		b.WriteString(styles.HeaderStyle.Render(header))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("─", 84))
		b.WriteString("\n")

		end := m.offset + m.maxRows
		if end > len(issues) {
			end = len(issues)
		}

		for i := m.offset; i < end; i++ {
			issue := issues[i]
			cursor := "  "
			if i == m.cursor {
				cursor = styles.CursorStyle.Render("> ")
			}

			sevStyle := styles.SeverityStyle(string(issue.Severity))
			severity := sevStyle.Render(fmt.Sprintf("%-10s", issue.Severity))
			line := "      "
			if issue.LineNumber > 0 {
				line = fmt.Sprintf("%-6d", issue.LineNumber)
			}
			message := truncate(issue.Message, 50)
			category := styles.HelpStyle.Render(string(issue.Category))

			b.WriteString(fmt.Sprintf("%s%s %s %-50s %s\n", cursor, severity, line, message, category))
		}

		if len(issues) > m.maxRows {
			b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d issues\n",
				m.offset+1, end, len(issues)))
		}
	}

	if len(issues) > 0 && m.cursor < len(issues) {
		b.WriteString("\n")
		b.WriteString(m.detailView(issues[m.cursor]))
	}

	b.WriteString("\n")
	b.WriteString(m.metricsPanel())

	if m.exported {
		b.WriteString("\n")
		b.WriteString(styles.SelectedStyle.Render("Results exported to critic-review.json"))
	}
	if m.exportErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.exportErr))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ scroll • e export JSON • esc back • q quit"))

	return b.String()
}

func (m ResultsModel) issues() []types.Issue {
	if m.result == nil {
		return nil
	}
	return m.result.Issues
}

func (m ResultsModel) summaryLine(issues []types.Issue) string {
	counts := map[types.Severity]int{}
	for _, issue := range issues {
		counts[issue.Severity]++
	}

	parts := []string{}
	for _, sev := range types.Severities {
		if c, ok := counts[sev]; ok && c > 0 {
			style := styles.SeverityStyle(string(sev))
			parts = append(parts, style.Render(fmt.Sprintf("%s: %d", sev, c)))
		}
	}

	return fmt.Sprintf("Total: %d issues  [%s]", len(issues), strings.Join(parts, "  "))
}

func (m ResultsModel) detailView(issue types.Issue) string {
	var b strings.Builder
	b.WriteString(styles.BorderStyle.Render(
		fmt.Sprintf("Message: %s\nSeverity: %s\nCategory: %s",
			issue.Message,
			issue.Severity,
			issue.Category,
		),
	))

	if issue.CodeSnippet != "" {
		b.WriteString(fmt.Sprintf("\n  Code: %s", issue.CodeSnippet))
	}
	if issue.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  Suggestion: %s", issue.Suggestion))
	}

	return b.String()
}

func (m ResultsModel) metricsPanel() string {
	if m.result == nil {
		return ""
	}
	met := m.result.Metrics
	return styles.HeaderStyle.Render("Metrics") + "\n" +
		fmt.Sprintf("  Grade: %s   Risk: %s   Maintainability: %.1f\n",
			m.result.Summary.QualityGrade, m.result.Summary.RiskLevel, met.MaintainabilityIndex) +
		fmt.Sprintf("  LOC: %d   Cyclomatic: %d   Cognitive: %d   Functions: %d   Nesting: %d\n",
			met.LinesOfCode, met.CyclomaticComplexity, met.CognitiveComplexity,
			met.FunctionCount, met.NestingDepth)
}

func (m *ResultsModel) exportJSON() {
	data, err := json.MarshalIndent(m.result, "", "  ")
	if err != nil {
		m.exportErr = fmt.Sprintf("export failed: %v", err)
		return
	}

	if err := os.WriteFile("critic-review.json", data, 0644); err != nil {
		m.exportErr = fmt.Sprintf("export failed: %v", err)
		return
	}

	m.exported = true
	m.exportErr = ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
