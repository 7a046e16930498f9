// Package parse is the analyzer's front-end: it turns raw source text
// into a tree-sitter syntax tree for the languages with structural
// support, and degrades gracefully for everything else. A syntax error
// becomes a single Issue and a nil tree; scanners that need the tree
// then contribute zero findings while text-based scanners still run.
package parse

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/rmaia/critic/pkg/types"
)

// Source bundles one piece of reviewed code with its parse artifacts.
type Source struct {
	Code     string
	Lines    []string
	Language types.Language

	// Grammar is nil when the language has no structural support.
	Grammar *Grammar
	// Tree is nil when no grammar exists or parsing failed.
	Tree *sitter.Tree
	// SyntaxIssue is set when parsing failed.
	SyntaxIssue *types.Issue

	content []byte
}

// New parses code in the given language. It never returns an error:
// parse failures are recorded on the Source as a syntax Issue.
func New(ctx context.Context, code string, lang types.Language) *Source {
	src := &Source{
		Code:     code,
		Lines:    strings.Split(code, "\n"),
		Language: lang,
		Grammar:  GrammarFor(lang),
		content:  []byte(code),
	}

	if src.Grammar == nil || strings.TrimSpace(code) == "" {
		return src
	}

	parser := sitter.NewParser()
	parser.SetLanguage(src.Grammar.Language())

	tree, err := parser.ParseCtx(ctx, nil, src.content)
	if err != nil {
		src.SyntaxIssue = &types.Issue{
			Message:  fmt.Sprintf("syntax error: %v", err),
			Severity: types.SeverityHigh,
			Category: types.CategorySyntax,
		}
		return src
	}

	root := tree.RootNode()
	if root.HasError() {
		line, col := firstErrorPosition(root)
		src.SyntaxIssue = &types.Issue{
			Message:    fmt.Sprintf("syntax error at line %d, column %d", line, col),
			Severity:   types.SeverityHigh,
			Category:   types.CategorySyntax,
			LineNumber: line,
			Column:     col,
			Suggestion: "Fix the syntax error; structural checks were skipped",
		}
		tree.Close()
		return src
	}

	src.Tree = tree
	return src
}

// Close releases the underlying tree. Safe to call on any Source.
func (s *Source) Close() {
	if s.Tree != nil {
		s.Tree.Close()
		s.Tree = nil
	}
}

// Root returns the tree's root node, or nil when no tree is available.
func (s *Source) Root() *sitter.Node {
	if s.Tree == nil {
		return nil
	}
	return s.Tree.RootNode()
}

// Content returns the source text covered by a node.
func (s *Source) Content(n *sitter.Node) string {
	return n.Content(s.content)
}

// Line returns a 1-based source line, or "" when out of range.
func (s *Source) Line(number int) string {
	if number < 1 || number > len(s.Lines) {
		return ""
	}
	return s.Lines[number-1]
}

// firstErrorPosition locates the first ERROR or missing node, returning
// a 1-based line and column.
func firstErrorPosition(root *sitter.Node) (int, int) {
	line, col := int(root.StartPoint().Row)+1, int(root.StartPoint().Column)+1
	found := false

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if found {
			return
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			line = int(n.StartPoint().Row) + 1
			col = int(n.StartPoint().Column) + 1
			found = true
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return line, col
}

// Definition is a function or class found in the tree.
type Definition struct {
	Name       string
	StartLine  int
	EndLine    int
	Node       *sitter.Node
	Documented bool
}

// Functions returns every function definition in source order.
// Returns nil when no tree is available.
func (s *Source) Functions() []Definition {
	return s.definitions(func(g *Grammar, nodeType string) bool {
		return g.FunctionTypes[nodeType]
	})
}

// Classes returns every class definition in source order.
func (s *Source) Classes() []Definition {
	return s.definitions(func(g *Grammar, nodeType string) bool {
		return g.ClassTypes[nodeType]
	})
}

func (s *Source) definitions(match func(*Grammar, string) bool) []Definition {
	root := s.Root()
	if root == nil {
		return nil
	}

	var defs []Definition
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if match(s.Grammar, n.Type()) {
			defs = append(defs, s.definition(n))
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(root)

	return defs
}

func (s *Source) definition(n *sitter.Node) Definition {
	name := "(anonymous)"
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		name = s.Content(nameNode)
	}

	return Definition{
		Name:       name,
		StartLine:  int(n.StartPoint().Row) + 1,
		EndLine:    int(n.EndPoint().Row) + 1,
		Node:       n,
		Documented: s.documented(n),
	}
}

// documented reports whether a definition carries leading documentation
// per the grammar's doc convention.
func (s *Source) documented(n *sitter.Node) bool {
	switch s.Grammar.DocStyle {
	case DocStringBody:
		body := n.ChildByFieldName("body")
		if body == nil || body.NamedChildCount() == 0 {
			return false
		}
		first := body.NamedChild(0)
		return first.Type() == "expression_statement" &&
			first.NamedChildCount() > 0 &&
			first.NamedChild(0).Type() == "string"

	case DocLeadingComment:
		prev := n.PrevNamedSibling()
		if prev == nil && n.Parent() != nil {
			prev = n.Parent().PrevNamedSibling()
		}
		if prev == nil || prev.Type() != s.Grammar.CommentType {
			return false
		}
		// The comment must sit directly above the definition.
		return int(n.StartPoint().Row)-int(prev.EndPoint().Row) <= 1

	default:
		return false
	}
}
