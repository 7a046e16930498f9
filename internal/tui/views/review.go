package views

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/tui/styles"
	"github.com/rmaia/critic/pkg/types"
)

// ReviewCompleteMsg is sent when a review finishes.
type ReviewCompleteMsg struct {
	Result *types.ReviewResult
}

// reviewErrorMsg is sent when a review encounters an error.
type reviewErrorMsg struct {
	err error
}

// ReviewModel is the view model for the review progress view.
type ReviewModel struct {
	spinner  spinner.Model
	scanners []analyzer.Scanner
	opts     analyzer.Options
	params   metrics.Params
	path     string
	done     bool
	err      string
	result   *types.ReviewResult
}

// NewReviewModel creates a review progress view for the given scanners and file.
func NewReviewModel(scanners []analyzer.Scanner, opts analyzer.Options, params metrics.Params, path string) ReviewModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	return ReviewModel{
		spinner:  sp,
		scanners: scanners,
		opts:     opts,
		params:   params,
		path:     path,
	}
}

// Init starts the spinner and launches the review.
func (m ReviewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runReview())
}

// Update handles spinner ticks and review completion.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReviewCompleteMsg:
		m.done = true
		m.result = msg.Result
		return m, nil

	case reviewErrorMsg:
		m.done = true
		m.err = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the review progress.
func (m ReviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Critic — Interactive Mode"))
	b.WriteString("\n\n")

	if m.done {
		if m.err != "" {
			b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Review failed: %s", m.err)))
		} else {
			b.WriteString(fmt.Sprintf("Review complete! Found %d issues.\n",
				len(m.result.Issues)))
		}
	} else {
		b.WriteString(fmt.Sprintf("%s Reviewing %s...\n",
			m.spinner.View(),
			styles.SelectedStyle.Render(m.path)))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("ctrl+c quit"))

	return b.String()
}

func (m ReviewModel) runReview() tea.Cmd {
	scanners := m.scanners
	opts := m.opts
	params := m.params
	path := m.path
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return reviewErrorMsg{err: err}
		}

		reg := analyzer.NewRegistry()
		for _, s := range scanners {
			reg.Register(s)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		a := analyzer.New(reg, metrics.NewCollector(params), opts, zerolog.Nop())
		result := a.Review(ctx, string(data), LanguageForPath(path))
		return ReviewCompleteMsg{Result: result}
	}
}
