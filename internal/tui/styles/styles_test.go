package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityStyleKnownLevels(t *testing.T) {
	for _, sev := range []string{"critical", "high", "medium", "low", "info"} {
		s := SeverityStyle(sev)
		assert.Contains(t, s.Render("test"), "test", sev)
	}
}

func TestSeverityStyleReturnsDefaultForUnknown(t *testing.T) {
	s := SeverityStyle("unknown")
	assert.Contains(t, s.Render("test"), "test")
}

func TestStylesRender(t *testing.T) {
	tests := []struct {
		name  string
		style func(...string) string
	}{
		{"TitleStyle", TitleStyle.Render},
		{"HeaderStyle", HeaderStyle.Render},
		{"BorderStyle", BorderStyle.Render},
		{"SelectedStyle", SelectedStyle.Render},
		{"CursorStyle", CursorStyle.Render},
		{"HelpStyle", HelpStyle.Render},
		{"ErrorStyle", ErrorStyle.Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.style("hello")
			assert.Contains(t, result, "hello")
		})
	}
}
