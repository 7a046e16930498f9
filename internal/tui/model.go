package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/tui/views"
)

// appState represents which view is currently active.
type appState int

const (
	stateMenu    appState = iota // Scanner selection menu
	stateSource                  // Source file path input
	stateReview                  // Review in progress
	stateResults                 // Results display
)

// allItem is the menu entry that runs every scanner at once.
const allItem = "all"

// Model is the root Bubble Tea model that manages view transitions.
type Model struct {
	state    appState
	registry *analyzer.Registry
	opts     analyzer.Options
	params   metrics.Params
	width    int
	height   int

	// Sub-models for each view.
	menu    views.MenuModel
	source  views.SourceModel
	review  views.ReviewModel
	results views.ResultsModel
}

// NewModel creates a root model with the given scanner registry.
func NewModel(reg *analyzer.Registry, opts analyzer.Options, params metrics.Params) Model {
	scanners := reg.All()
	items := make([]views.ScannerItem, 0, len(scanners)+1)
	items = append(items, views.ScannerItem{
		Name:        allItem,
		Description: "Run every scanner",
	})
	for _, s := range scanners {
		items = append(items, views.ScannerItem{
			Name:        s.Name(),
			Description: s.Description(),
		})
	}

	return Model{
		state:    stateMenu,
		registry: reg,
		opts:     opts,
		params:   params,
		menu:     views.NewMenuModel(items),
		source:   views.NewSourceModel(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.source.Init()
}

// Update handles messages and manages state transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.handleBack()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case stateSource:
		return m.updateSource(msg)
	case stateReview:
		return m.updateReview(msg)
	case stateResults:
		return m.updateResults(msg)
	}

	return m, nil
}

// View renders the current view.
func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.menu.View()
	case stateSource:
		return m.source.View()
	case stateReview:
		return m.review.View()
	case stateResults:
		return m.results.View()
	}
	return ""
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateSource:
		m.state = stateMenu
		return m, nil
	case stateResults:
		m.state = stateMenu
		return m, nil
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		selected := m.menu.Selected()
		if selected != nil {
			m.source = views.NewSourceModel()
			m.source.SetScannerName(selected.Name)
			m.state = stateSource
			return m, m.source.Init()
		}
	}

	updated, cmd := m.menu.Update(msg)
	m.menu = updated.(views.MenuModel)
	return m, cmd
}

func (m Model) updateSource(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		path, err := m.source.ValidatedPath()
		if err == nil {
			scanners, sErr := m.selectedScanners()
			if sErr != nil {
				return m, nil
			}
			m.review = views.NewReviewModel(scanners, m.opts, m.params, path)
			m.state = stateReview
			return m, m.review.Init()
		}
	}

	updated, cmd := m.source.Update(msg)
	m.source = updated.(views.SourceModel)
	return m, cmd
}

func (m Model) selectedScanners() ([]analyzer.Scanner, error) {
	if m.source.ScannerName() == allItem {
		return m.registry.All(), nil
	}
	s, err := m.registry.Get(m.source.ScannerName())
	if err != nil {
		return nil, err
	}
	return []analyzer.Scanner{s}, nil
}

func (m Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if reviewMsg, ok := msg.(views.ReviewCompleteMsg); ok {
		m.results = views.NewResultsModel(reviewMsg.Result)
		m.state = stateResults
		return m, nil
	}

	updated, cmd := m.review.Update(msg)
	m.review = updated.(views.ReviewModel)
	return m, cmd
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.results.Update(msg)
	m.results = updated.(views.ResultsModel)
	return m, cmd
}
