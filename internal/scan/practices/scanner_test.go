package practices

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

func findByMessage(issues []types.Issue, message string) *types.Issue {
	for i := range issues {
		if issues[i].Message == message {
			return &issues[i]
		}
	}
	return nil
}

func TestScanBareExcept(t *testing.T) {
	code := `try:
    risky()
except:
    pass
`
	issues := scan(t, code, types.LanguagePython)
	require.Len(t, issues, 1)
	assert.Equal(t, "Bare except clause catches all exceptions", issues[0].Message)
	assert.Equal(t, types.SeverityMedium, issues[0].Severity)
	assert.Equal(t, types.CategoryBestPractice, issues[0].Category)
	assert.Equal(t, 3, issues[0].LineNumber)
}

func TestScanTypedExceptOK(t *testing.T) {
	code := `try:
    risky()
except ValueError:
    pass
except (KeyError, TypeError) as exc:
    raise exc
`
	assert.Empty(t, scan(t, code, types.LanguagePython))
}

func TestScanMutableDefaults(t *testing.T) {
	code := `def append(item, bucket=[]):
    bucket.append(item)
    return bucket

def merge(extra={}):
    return extra

def tag(names=set()):
    return names

def fine(count=0, label="x", flag=None):
    return count
`
	issues := scan(t, code, types.LanguagePython)
	var mutable []types.Issue
	for _, issue := range issues {
		if issue.Message == "Mutable default argument" {
			mutable = append(mutable, issue)
		}
	}
	require.Len(t, mutable, 2)
	assert.Equal(t, 1, mutable[0].LineNumber)
	assert.Equal(t, 5, mutable[1].LineNumber)
}

func TestScanTypedMutableDefaults(t *testing.T) {
	code := `def append(item, bucket: list = []):
    bucket.append(item)
    return bucket

def merge(extra: dict = {}):
    return extra

def fine(count: int = 0, label: str = "x"):
    return count
`
	issues := scan(t, code, types.LanguagePython)
	var mutable []types.Issue
	for _, issue := range issues {
		if issue.Message == "Mutable default argument" {
			mutable = append(mutable, issue)
		}
	}
	require.Len(t, mutable, 2)
	assert.Equal(t, 1, mutable[0].LineNumber)
	assert.Equal(t, 5, mutable[1].LineNumber)
}

func TestScanGlobalStatement(t *testing.T) {
	code := `counter = 0

def bump():
    global counter
    counter += 1
`
	issues := scan(t, code, types.LanguagePython)
	issue := findByMessage(issues, "Use of global statement")
	require.NotNil(t, issue)
	assert.Equal(t, types.SeverityLow, issue.Severity)
	assert.Equal(t, 4, issue.LineNumber)
}

func TestScanJavaScriptVarAndLooseEquality(t *testing.T) {
	code := `var legacy = 1;
let modern = 2;
if (legacy == modern) {
  modern = 3;
}
if (legacy !== modern) {
  modern = 4;
}
`
	issues := scan(t, code, types.LanguageJavaScript)

	varIssue := findByMessage(issues, "Use of var declaration")
	require.NotNil(t, varIssue)
	assert.Equal(t, 1, varIssue.LineNumber)

	looseIssue := findByMessage(issues, "Loose equality comparison")
	require.NotNil(t, looseIssue)
	assert.Equal(t, 3, looseIssue.LineNumber)

	require.Len(t, issues, 2)
}

func TestScanUnsupportedLanguage(t *testing.T) {
	assert.Nil(t, scan(t, "public class A {}", types.LanguageJava))
}

func TestScanCleanPython(t *testing.T) {
	code := `def add(a, b):
    """Add two numbers."""
    return a + b
`
	assert.Empty(t, scan(t, code, types.LanguagePython))
}
