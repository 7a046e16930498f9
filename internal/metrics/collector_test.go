package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

func collect(t *testing.T, code string, lang types.Language) types.Metrics {
	t.Helper()
	src := parse.New(context.Background(), code, lang)
	t.Cleanup(src.Close)
	return NewCollector(DefaultParams()).Collect(src)
}

func TestCollect_NoDecisionPoints(t *testing.T) {
	code := `def add(a, b):
    return a + b
`
	m := collect(t, code, types.LanguagePython)

	assert.Equal(t, 1, m.CyclomaticComplexity)
	assert.Equal(t, 0, m.CognitiveComplexity)
	assert.Equal(t, 0, m.NestingDepth)
	assert.Equal(t, 1, m.FunctionCount)
	assert.Equal(t, 0, m.ClassCount)
}

func TestCollect_CountsBranchesAndBooleans(t *testing.T) {
	code := `def check(x, y):
    if x > 0 and y > 0:
        return True
    return False
`
	m := collect(t, code, types.LanguagePython)

	// 1 base + 1 if + 1 boolean operator.
	assert.Equal(t, 3, m.CyclomaticComplexity)
}

func TestCollect_CognitiveWeightsNesting(t *testing.T) {
	flat := `def f(a, b):
    if a:
        pass
    if b:
        pass
`
	nested := `def f(a, b):
    if a:
        if b:
            pass
`
	mFlat := collect(t, flat, types.LanguagePython)
	mNested := collect(t, nested, types.LanguagePython)

	// Same number of branches, but nesting costs more.
	assert.Equal(t, mFlat.CyclomaticComplexity, mNested.CyclomaticComplexity)
	assert.Greater(t, mNested.CognitiveComplexity, mFlat.CognitiveComplexity)
}

func TestCollect_EarlyExitPenalty(t *testing.T) {
	code := `def f(items):
    for item in items:
        if item < 0:
            break
`
	m := collect(t, code, types.LanguagePython)

	// for (1+0) + if (1+1) + break (flat 1).
	assert.Equal(t, 4, m.CognitiveComplexity)
}

func TestCollect_NestingDepth(t *testing.T) {
	code := `def f(x):
    if x:
        for i in range(10):
            while True:
                pass
`
	m := collect(t, code, types.LanguagePython)

	assert.Equal(t, 3, m.NestingDepth)
}

func TestCollect_LineCounts(t *testing.T) {
	code := "# comment\n\nx = 1\ny = 2\n"
	m := collect(t, code, types.LanguagePython)

	assert.Equal(t, 1, m.CommentLines)
	assert.Equal(t, 2, m.BlankLines) // empty line + trailing newline
	assert.Equal(t, 2, m.LinesOfCode)
}

func TestCollect_EmptyInput(t *testing.T) {
	m := collect(t, "", types.LanguagePython)

	assert.Equal(t, 0, m.LinesOfCode)
	assert.Equal(t, float64(100), m.MaintainabilityIndex)
	assert.Equal(t, types.GradeA, m.Grade)
	assert.Equal(t, 1, m.CyclomaticComplexity)
}

func TestCollect_MaintainabilityIndexBounds(t *testing.T) {
	inputs := []string{
		"x = 1",
		"def f():\n    return 1\n",
		// A long, branch-heavy blob should floor at 0, not go negative.
		func() string {
			s := "def f(x):\n"
			for i := 0; i < 60; i++ {
				s += "    if x > " + string(rune('0'+i%10)) + ":\n        x = x * 2 + 1 - 3 / 4\n"
			}
			return s
		}(),
	}

	c := NewCollector(DefaultParams())
	for _, code := range inputs {
		src := parse.New(context.Background(), code, types.LanguagePython)
		m := c.Collect(src)
		src.Close()
		assert.GreaterOrEqual(t, m.MaintainabilityIndex, float64(0))
		assert.LessOrEqual(t, m.MaintainabilityIndex, float64(100))
	}
}

func TestCollect_FunctionLengths(t *testing.T) {
	code := `def short():
    pass

def long(x):
    a = 1
    b = 2
    c = 3
    return a + b + c
`
	m := collect(t, code, types.LanguagePython)

	assert.Equal(t, 2, m.FunctionCount)
	assert.Equal(t, 5, m.MaxFunctionLength)
	assert.InDelta(t, 3.5, m.AvgFunctionLength, 0.01)
}

func TestCollect_UnsupportedLanguageTextOnly(t *testing.T) {
	code := "public class A {\n// javadoc\n}\n"
	m := collect(t, code, types.LanguageJava)

	assert.Equal(t, 1, m.CyclomaticComplexity)
	assert.Equal(t, 0, m.FunctionCount)
	assert.Equal(t, 1, m.CommentLines)
	assert.Positive(t, m.LinesOfCode)
}

func TestCollect_JavaScript(t *testing.T) {
	code := `function f(x) {
  if (x > 0 || x < -10) {
    return 1;
  }
  return 0;
}
`
	m := collect(t, code, types.LanguageJavaScript)

	// 1 base + if + one || operator.
	assert.Equal(t, 3, m.CyclomaticComplexity)
	assert.Equal(t, 1, m.FunctionCount)
}

func TestCyclomaticOf_PerFunction(t *testing.T) {
	code := `def simple():
    return 1

def busy(x):
    if x > 0:
        for i in range(x):
            if i % 2 == 0:
                pass
    return x
`
	src := parse.New(context.Background(), code, types.LanguagePython)
	defer src.Close()

	funcs := src.Functions()
	require.Len(t, funcs, 2)

	assert.Equal(t, 1, CyclomaticOf(src, funcs[0].Node))
	assert.Equal(t, 4, CyclomaticOf(src, funcs[1].Node))
	assert.Equal(t, 3, MaxNestingOf(src, funcs[1].Node))
}

func TestCollect_Determinism(t *testing.T) {
	code := `def f(x):
    # doc
    if x and x > 2:
        return x
    return 0
`
	first := collect(t, code, types.LanguagePython)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, collect(t, code, types.LanguagePython))
	}
}
