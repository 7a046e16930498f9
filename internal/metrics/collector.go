// Package metrics computes code quality metrics in a single walk over
// the syntax tree: cyclomatic and cognitive complexity, nesting depth,
// function/class counts, and a maintainability index with a letter
// grade. When no tree is available (unsupported language or syntax
// error) only the line-based metrics are filled in.
package metrics

import (
	"math"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

// Params holds the tunable constants of the metric formulas. There is
// no single canonical maintainability-index formula, so every
// coefficient is explicit and configurable.
type Params struct {
	MIBase             float64
	MIVolumeWeight     float64
	MIComplexityWeight float64
	MILocWeight        float64
	MICommentWeight    float64
	MICommentFactor    float64

	// EarlyExitPenalty is the flat cognitive-complexity cost of a
	// break or continue statement.
	EarlyExitPenalty int
}

// DefaultParams returns the standard coefficients.
func DefaultParams() Params {
	return Params{
		MIBase:             171,
		MIVolumeWeight:     5.2,
		MIComplexityWeight: 0.23,
		MILocWeight:        16.2,
		MICommentWeight:    50,
		MICommentFactor:    2.4,
		EarlyExitPenalty:   1,
	}
}

// Collector computes Metrics for parsed sources.
type Collector struct {
	params Params
}

// NewCollector creates a collector with the given formula parameters.
func NewCollector(params Params) *Collector {
	return &Collector{params: params}
}

// Collect walks the source once and returns its metrics.
func (c *Collector) Collect(src *parse.Source) types.Metrics {
	m := types.Metrics{CyclomaticComplexity: 1}

	total, blank, comment := countLines(src.Code)
	m.BlankLines = blank
	m.CommentLines = comment
	m.LinesOfCode = total - blank - comment

	if root := src.Root(); root != nil {
		cyclo, cognitive, nesting := c.complexity(src, root)
		m.CyclomaticComplexity = cyclo
		m.CognitiveComplexity = cognitive
		m.NestingDepth = nesting

		funcs := src.Functions()
		m.FunctionCount = len(funcs)
		m.ClassCount = len(src.Classes())
		m.AvgFunctionLength, m.MaxFunctionLength = functionLengths(funcs)
	}

	m.MaintainabilityIndex = c.maintainabilityIndex(src.Code, m)
	m.Grade = types.GradeFor(m.MaintainabilityIndex)

	return m
}

// countLines returns total, blank, and comment line counts.
func countLines(code string) (total, blank, comment int) {
	lines := strings.Split(code, "\n")
	total = len(lines)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			blank++
		case strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//"):
			comment++
		}
	}
	return total, blank, comment
}

func functionLengths(funcs []parse.Definition) (avg float64, maxLen int) {
	if len(funcs) == 0 {
		return 0, 0
	}
	sum := 0
	for _, f := range funcs {
		length := f.EndLine - f.StartLine + 1
		sum += length
		if length > maxLen {
			maxLen = length
		}
	}
	return float64(sum) / float64(len(funcs)), maxLen
}

// complexity computes cyclomatic complexity (1 + decision points),
// cognitive complexity (decision points weighted by nesting depth plus
// flat early-exit penalties), and the maximum nesting depth.
func (c *Collector) complexity(src *parse.Source, root *sitter.Node) (cyclo, cognitive, maxNesting int) {
	cyclo = 1
	g := src.Grammar

	var walk func(n *sitter.Node, depth int)
	walk = func(n *sitter.Node, depth int) {
		nodeType := n.Type()

		switch {
		case g.DecisionTypes[nodeType]:
			cyclo++
			cognitive += 1 + depth
		case isBooleanOp(src, n):
			cyclo++
			cognitive++
		case g.EarlyExitTypes[nodeType]:
			cognitive += c.params.EarlyExitPenalty
		}

		newDepth := depth
		if g.NestingTypes[nodeType] {
			newDepth = depth + 1
			if newDepth > maxNesting {
				maxNesting = newDepth
			}
		}

		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i), newDepth)
		}
	}
	walk(root, 0)

	return cyclo, cognitive, maxNesting
}

func isBooleanOp(src *parse.Source, n *sitter.Node) bool {
	g := src.Grammar
	if n.Type() != g.BooleanOpType {
		return false
	}
	if len(g.BooleanOperators) == 0 {
		return true
	}
	op := n.ChildByFieldName("operator")
	return op != nil && g.BooleanOperators[src.Content(op)]
}

// CyclomaticOf computes the cyclomatic complexity of one subtree,
// typically a single function definition.
func CyclomaticOf(src *parse.Source, node *sitter.Node) int {
	cyclo := 1
	g := src.Grammar

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if g.DecisionTypes[n.Type()] || isBooleanOp(src, n) {
			cyclo++
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(node)

	return cyclo
}

// MaxNestingOf computes the maximum block-nesting depth within a subtree.
func MaxNestingOf(src *parse.Source, node *sitter.Node) int {
	g := src.Grammar
	maxNesting := 0

	var walk func(n *sitter.Node, depth int)
	walk = func(n *sitter.Node, depth int) {
		newDepth := depth
		if g.NestingTypes[n.Type()] {
			newDepth = depth + 1
			if newDepth > maxNesting {
				maxNesting = newDepth
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i), newDepth)
		}
	}
	walk(node, 0)

	return maxNesting
}

var (
	operatorPattern = regexp.MustCompile(`[+\-*/=<>!&|^~%]`)
	operandPattern  = regexp.MustCompile(`\w+`)
)

// maintainabilityIndex combines an approximated Halstead volume,
// cyclomatic complexity, log(LOC), and the comment ratio into a 0-100
// score. An empty input scores 100.
func (c *Collector) maintainabilityIndex(code string, m types.Metrics) float64 {
	if m.LinesOfCode == 0 {
		return 100
	}

	operators := len(operatorPattern.FindAllString(code, -1))
	operands := len(operandPattern.FindAllString(code, -1))
	n := float64(operators + operands)
	volume := n * (1 + n/10)
	if volume < 1 {
		volume = 1
	}

	commentRatio := float64(m.CommentLines) / float64(m.LinesOfCode+m.CommentLines)

	p := c.params
	mi := p.MIBase -
		p.MIVolumeWeight*math.Log(volume) -
		p.MIComplexityWeight*float64(m.CyclomaticComplexity) -
		p.MILocWeight*math.Log(float64(m.LinesOfCode)) +
		p.MICommentWeight*math.Sin(math.Sqrt(p.MICommentFactor*commentRatio))

	return math.Max(0, math.Min(100, mi))
}
