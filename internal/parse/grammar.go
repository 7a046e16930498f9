package parse

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/rmaia/critic/pkg/types"
)

// Grammar describes how to read one language's syntax tree: which node
// types count as decision points, which open a nesting level, and which
// declare functions and classes. All structural checks dispatch on these
// tables instead of hard-coding per-language logic.
type Grammar struct {
	Language func() *sitter.Language

	// DecisionTypes each add one decision point (McCabe counting).
	DecisionTypes map[string]bool
	// BooleanOpType nodes add one decision point per operator node.
	BooleanOpType string
	// BooleanOperators restricts BooleanOpType nodes to these operator
	// strings; empty means every BooleanOpType node counts.
	BooleanOperators map[string]bool
	// NestingTypes open a new block-nesting level.
	NestingTypes map[string]bool
	// EarlyExitTypes add a flat cognitive-complexity penalty.
	EarlyExitTypes map[string]bool

	FunctionTypes map[string]bool
	ClassTypes    map[string]bool
	CommentType   string

	// DocumentableTypes are the function node types the documentation
	// check covers. Inline function expressions and arrow callbacks
	// still count toward metrics but are exempt from doc coverage.
	DocumentableTypes map[string]bool

	// DocStyle selects how leading documentation is detected.
	DocStyle DocStyle
}

// DocStyle is the documentation convention a grammar uses.
type DocStyle int

const (
	// DocStringBody expects a string literal as the first statement of
	// the definition body (Python docstrings).
	DocStringBody DocStyle = iota
	// DocLeadingComment expects a comment immediately above the
	// definition (JSDoc-style).
	DocLeadingComment
)

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

var pythonGrammar = &Grammar{
	Language: python.GetLanguage,
	DecisionTypes: set(
		"if_statement",
		"elif_clause",
		"while_statement",
		"for_statement",
		"except_clause",
		"conditional_expression",
	),
	BooleanOpType: "boolean_operator",
	NestingTypes: set(
		"if_statement",
		"while_statement",
		"for_statement",
		"with_statement",
		"try_statement",
	),
	EarlyExitTypes:    set("break_statement", "continue_statement"),
	FunctionTypes:     set("function_definition"),
	ClassTypes:        set("class_definition"),
	CommentType:       "comment",
	DocumentableTypes: set("function_definition"),
	DocStyle:          DocStringBody,
}

var javascriptGrammar = &Grammar{
	Language: javascript.GetLanguage,
	DecisionTypes: set(
		"if_statement",
		"while_statement",
		"do_statement",
		"for_statement",
		"for_in_statement",
		"switch_case",
		"catch_clause",
		"ternary_expression",
	),
	BooleanOpType:    "binary_expression",
	BooleanOperators: set("&&", "||", "??"),
	NestingTypes: set(
		"if_statement",
		"while_statement",
		"do_statement",
		"for_statement",
		"for_in_statement",
		"try_statement",
		"switch_statement",
	),
	EarlyExitTypes: set("break_statement", "continue_statement"),
	FunctionTypes: set(
		"function_declaration",
		"function_expression",
		"function",
		"generator_function_declaration",
		"arrow_function",
		"method_definition",
	),
	ClassTypes:  set("class_declaration", "class"),
	CommentType: "comment",
	DocumentableTypes: set(
		"function_declaration",
		"generator_function_declaration",
		"method_definition",
	),
	DocStyle: DocLeadingComment,
}

// GrammarFor returns the grammar for a language, or nil when the
// language has no structural support (text-based scanners still run).
func GrammarFor(lang types.Language) *Grammar {
	switch lang {
	case types.LanguagePython:
		return pythonGrammar
	case types.LanguageJavaScript:
		return javascriptGrammar
	default:
		return nil
	}
}
