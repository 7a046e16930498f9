package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/critic/internal/config"
	"github.com/rmaia/critic/pkg/types"
)

func executeCmd(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	// Capture stdout for commands that write to os.Stdout.
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Read pipe concurrently to prevent buffer deadlock.
	var captured bytes.Buffer
	done := make(chan struct{})
	go func() {
		captured.ReadFrom(r)
		close(done)
	}()

	err := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout
	<-done

	// Combine cobra output and stdout capture.
	output := buf.String() + captured.String()
	return output, err
}

func writeTempSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const unsafePython = `import os

def run(cmd):
    eval(cmd)
    os.system(cmd)
`

func TestVersionCommand(t *testing.T) {
	output, err := executeCmd("version")
	require.NoError(t, err)
	assert.Contains(t, output, "critic version")
}

func TestReviewSecurityMissingFile(t *testing.T) {
	fileFlag = ""
	_, err := executeCmd("review", "security")
	assert.Error(t, err)
}

func TestReviewSecurityDetectsEval(t *testing.T) {
	path := writeTempSource(t, "app.py", unsafePython)

	output, err := executeCmd("review", "security", "-f", path, "-l", "python", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, output, "Use of eval()")
}

func TestReviewSecurityJSONOutput(t *testing.T) {
	path := writeTempSource(t, "app.py", unsafePython)

	output, err := executeCmd("review", "security", "-f", path, "-l", "python", "-o", "json")
	require.NoError(t, err)

	var result types.ReviewResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, types.LanguagePython, result.Language)
	assert.Equal(t, types.RiskCritical, result.Summary.RiskLevel)
}

func TestReviewStyleDetectsLongLine(t *testing.T) {
	code := "x = 1\ny = \"" + string(bytes.Repeat([]byte("a"), 120)) + "\"\n"
	path := writeTempSource(t, "app.py", code)

	output, err := executeCmd("review", "style", "-f", path, "-l", "python", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, output, "Line too long")
}

func TestReviewDocsDetectsMissingDocstring(t *testing.T) {
	path := writeTempSource(t, "app.py", "def foo():\n    return 1\n")

	output, err := executeCmd("review", "docs", "-f", path, "-l", "python", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, output, "missing documentation")
}

func TestReviewUnknownLanguage(t *testing.T) {
	path := writeTempSource(t, "app.py", "x = 1\n")

	_, err := executeCmd("review", "security", "-f", path, "-l", "cobol")
	assert.Error(t, err)
}

func TestReviewHelpListsScanners(t *testing.T) {
	output, err := executeCmd("review", "--help")
	require.NoError(t, err)
	for _, name := range []string{"security", "style", "complexity", "docs", "practices"} {
		assert.Contains(t, output, name)
	}
}

func TestAllMissingFile(t *testing.T) {
	fileFlag = ""
	_, err := executeCmd("all")
	assert.Error(t, err)
}

func TestAllRunsEveryScanner(t *testing.T) {
	path := writeTempSource(t, "app.py", unsafePython)

	output, err := executeCmd("all", "-f", path, "-l", "python", "-o", "json")
	require.NoError(t, err)

	var result types.ReviewResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	categories := make(map[types.Category]bool)
	for _, issue := range result.Issues {
		categories[issue.Category] = true
	}
	assert.True(t, categories[types.CategorySecurity], "expected security issues")
	assert.True(t, categories[types.CategoryDocumentation], "expected documentation issues")
	assert.NotZero(t, result.Metrics.LinesOfCode)
	assert.NotEmpty(t, result.Metrics.Grade)
}

func TestAllUnknownProfile(t *testing.T) {
	path := writeTempSource(t, "app.py", "x = 1\n")

	_, err := executeCmd("all", "-f", path, "--profile", "nonexistent")
	assert.Error(t, err)
}

func TestAllAutoDetectsLanguage(t *testing.T) {
	path := writeTempSource(t, "snippet.txt", "def foo():\n    return 1\n")

	output, err := executeCmd("all", "-f", path, "-l", "", "-o", "json", "--profile", "")
	require.NoError(t, err)

	var result types.ReviewResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, types.LanguagePython, result.Language)
}

func TestRootHelpListsCommands(t *testing.T) {
	output, err := executeCmd("--help")
	require.NoError(t, err)
	for _, name := range []string{"review", "all", "serve", "interactive", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestScannersNamed(t *testing.T) {
	scanners, err := scannersNamed([]string{"style", "security"})
	require.NoError(t, err)
	require.Len(t, scanners, 2)
	assert.Equal(t, "style", scanners[0].Name())

	_, err = scannersNamed([]string{"bogus"})
	assert.Error(t, err)
}

func TestMetricParamsFollowConfig(t *testing.T) {
	saved := appConfig
	defer func() { appConfig = saved }()

	cfg := config.Defaults()
	cfg.Metrics.MIBase = 120
	cfg.Metrics.EarlyExitPenalty = 3
	appConfig = &cfg

	params := metricParams()
	assert.Equal(t, 120.0, params.MIBase)
	assert.Equal(t, 3, params.EarlyExitPenalty)
	assert.Equal(t, 5.2, params.MIVolumeWeight)
}
