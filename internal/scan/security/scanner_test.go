package security

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

func TestScan_EvalIsCriticalWithLineNumber(t *testing.T) {
	code := "x = 1\ny = 2\nresult = eval(user_input)\n"
	issues := scan(t, code, types.LanguagePython)

	issue := findByMessage(issues, "Use of eval()")
	require.NotNil(t, issue)
	assert.Equal(t, types.SeverityCritical, issue.Severity)
	assert.Equal(t, types.CategorySecurity, issue.Category)
	assert.Equal(t, 3, issue.LineNumber)
	assert.Contains(t, issue.CodeSnippet, "eval(")
}

func TestScan_SampleSnippet(t *testing.T) {
	code := `import os
import pickle

password = "admin123"

def run(cmd, data, expr):
    os.system(cmd)
    obj = pickle.loads(data)
    return eval(expr)
`
	issues := scan(t, code, types.LanguagePython)

	eval := findByMessage(issues, "Use of eval()")
	require.NotNil(t, eval)
	assert.Equal(t, types.SeverityCritical, eval.Severity)

	pwd := findByMessage(issues, "Hardcoded password")
	require.NotNil(t, pwd)
	assert.Equal(t, types.SeverityCritical, pwd.Severity)
	assert.Equal(t, 4, pwd.LineNumber)

	system := findByMessage(issues, "Use of os.system()")
	require.NotNil(t, system)
	assert.Equal(t, types.SeverityHigh, system.Severity)

	pickleIssue := findByMessage(issues, "Unsafe deserialization with pickle")
	require.NotNil(t, pickleIssue)
	assert.Equal(t, types.SeverityHigh, pickleIssue.Severity)
}

func TestScan_YAMLLoaderExclusion(t *testing.T) {
	unsafe := "data = yaml.load(stream)\n"
	safe := "data = yaml.load(stream, Loader=yaml.SafeLoader)\n"

	assert.NotNil(t, findByMessage(scan(t, unsafe, types.LanguagePython), "Unsafe YAML loading"))
	assert.Nil(t, findByMessage(scan(t, safe, types.LanguagePython), "Unsafe YAML loading"))
}

func TestScan_WildcardImport(t *testing.T) {
	issues := scan(t, "from os.path import *\n", types.LanguagePython)

	issue := findByMessage(issues, "Wildcard import")
	require.NotNil(t, issue)
	assert.Equal(t, types.SeverityMedium, issue.Severity)
}

func TestScan_JavaScriptRules(t *testing.T) {
	code := "element.innerHTML = userValue;\nconst apiKey = \"sk-12345\";\n"
	issues := scan(t, code, types.LanguageJavaScript)

	xss := findByMessage(issues, "XSS vulnerability via innerHTML")
	require.NotNil(t, xss)
	assert.Equal(t, types.SeverityHigh, xss.Severity)

	cred := findByMessage(issues, "Hardcoded credential")
	require.NotNil(t, cred)
	assert.Equal(t, types.SeverityCritical, cred.Severity)
}

func TestScan_CleanCode(t *testing.T) {
	code := "def add(a, b):\n    return a + b\n"
	assert.Empty(t, scan(t, code, types.LanguagePython))
}

func TestScan_EmptyInput(t *testing.T) {
	assert.Empty(t, scan(t, "", types.LanguagePython))
}
