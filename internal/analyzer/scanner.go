package analyzer

import (
	"context"

	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

// Scanner is the core interface every review check implements. A
// scanner that cannot run on a given source (for example, a tree-based
// check when no tree is available) returns no issues and no error.
type Scanner interface {
	Name() string
	Description() string
	Scan(ctx context.Context, src *parse.Source, opts Options) ([]types.Issue, error)
}

// Options holds scanner-wide execution parameters.
type Options struct {
	MaxLineLength   int
	MaxComplexity   int
	MaxNestingDepth int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxLineLength:   88,
		MaxComplexity:   10,
		MaxNestingDepth: 4,
	}
}
