package docs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

func scan(t *testing.T, code string, lang types.Language) []types.Issue {
	t.Helper()
	src := parse.New(context.Background(), code, lang)
	t.Cleanup(src.Close)
	issues, err := New().Scan(context.Background(), src, analyzer.DefaultOptions())
	require.NoError(t, err)
	return issues
}

func TestScanMissingDocstrings(t *testing.T) {
	code := `def documented():
    """Does something."""
    return 1

def undocumented():
    return 2

class Thing:
    pass
`
	issues := scan(t, code, types.LanguagePython)
	require.Len(t, issues, 2)

	assert.Contains(t, issues[0].Message, `"undocumented"`)
	assert.Equal(t, types.SeverityLow, issues[0].Severity)
	assert.Equal(t, types.CategoryDocumentation, issues[0].Category)
	assert.Equal(t, 5, issues[0].LineNumber)

	assert.Contains(t, issues[1].Message, `"Thing"`)
	assert.Equal(t, 8, issues[1].LineNumber)
}

func TestScanSkipsPrivateFunctions(t *testing.T) {
	code := `def _helper():
    return 1
`
	issues := scan(t, code, types.LanguagePython)
	assert.Empty(t, issues)
}

func TestScanDocumentedClass(t *testing.T) {
	code := `class Greeter:
    """Greets people."""

    def greet(self):
        """Say hello."""
        return "hi"
`
	issues := scan(t, code, types.LanguagePython)
	assert.Empty(t, issues)
}

func TestScanJavaScriptLeadingComment(t *testing.T) {
	code := `// Adds two numbers.
function add(a, b) {
  return a + b;
}

function sub(a, b) {
  return a - b;
}
`
	issues := scan(t, code, types.LanguageJavaScript)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"sub"`)
	assert.Equal(t, 6, issues[0].LineNumber)
}

func TestScanIgnoresArrowCallbacks(t *testing.T) {
	code := `const nums = [1, 2, 3];
nums.map((n) => n * 2);
nums.filter(function (n) { return n > 1; });

function total(xs) {
  return xs.reduce((a, b) => a + b, 0);
}
`
	issues := scan(t, code, types.LanguageJavaScript)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"total"`)
	assert.Equal(t, 5, issues[0].LineNumber)
}

func TestScanNoTree(t *testing.T) {
	assert.Nil(t, scan(t, "public class A {}", types.LanguageJava))
	assert.Nil(t, scan(t, "def broken(:", types.LanguagePython))
}
