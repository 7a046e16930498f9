package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmaia/critic/internal/tui/styles"
	"github.com/rmaia/critic/pkg/types"
)

// SourceModel is the view model for source file path input.
type SourceModel struct {
	textInput   textinput.Model
	scannerName string
	err         string
}

// NewSourceModel creates a new source path input view.
func NewSourceModel() SourceModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. ./app.py or ./src/index.js"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	ti.PromptStyle = styles.CursorStyle
	ti.TextStyle = styles.SelectedStyle

	return SourceModel{textInput: ti}
}

// SetScannerName sets which scanner this source is for.
func (m *SourceModel) SetScannerName(name string) {
	m.scannerName = name
}

// ScannerName returns the selected scanner name.
func (m SourceModel) ScannerName() string {
	return m.scannerName
}

// Init returns the text input blink command.
func (m SourceModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events.
func (m SourceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if _, err := m.ValidatedPath(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = ""
	return m, cmd
}

// View renders the source path input form.
func (m SourceModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Critic — Interactive Mode"))
	b.WriteString("\n\n")
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("Scanner: %s", m.scannerName)))
	b.WriteString("\n")
	b.WriteString("Enter path to the source file:\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.err))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter submit • esc back"))

	return b.String()
}

// ValidatedPath returns the entered path, or an error if it is empty
// or does not point to an existing file.
func (m SourceModel) ValidatedPath() (string, error) {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return "", fmt.Errorf("file path is required")
	}
	info, err := os.Stat(value)
	if err != nil {
		return "", fmt.Errorf("cannot read %s", value)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", value)
	}
	return value, nil
}

// LanguageForPath guesses the language from the file extension.
// Unknown extensions fall back to content-based detection later.
func LanguageForPath(path string) types.Language {
	switch filepath.Ext(path) {
	case ".py":
		return types.LanguagePython
	case ".js", ".jsx", ".mjs":
		return types.LanguageJavaScript
	case ".ts", ".tsx":
		return types.LanguageTypeScript
	case ".java":
		return types.LanguageJava
	case ".go":
		return types.LanguageGo
	default:
		return types.LanguageUnknown
	}
}
