// Package analyzer orchestrates a code review: it parses the input,
// runs every registered scanner over it in registration order, collects
// metrics in one tree walk, and aggregates everything into a single
// ReviewResult. Each review is stateless and independent; nothing is
// retained between calls.
package analyzer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

// Analyzer runs the full review pipeline.
type Analyzer struct {
	registry  *Registry
	collector *metrics.Collector
	opts      Options
	logger    zerolog.Logger
}

// New creates an analyzer. The registry and options are treated as
// immutable after construction.
func New(registry *Registry, collector *metrics.Collector, opts Options, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		registry:  registry,
		collector: collector,
		opts:      opts,
		logger:    logger,
	}
}

// Scanners returns the registered scanner names in execution order.
func (a *Analyzer) Scanners() []string {
	return a.registry.Names()
}

// Review analyzes code and returns the aggregated result. The language
// is auto-detected when lang is empty or unknown. Scanner failures are
// logged and skipped; they never fail the review.
func (a *Analyzer) Review(ctx context.Context, code string, lang types.Language) *types.ReviewResult {
	start := time.Now()

	if lang == "" || lang == types.LanguageUnknown {
		lang = types.DetectLanguage(code)
	}

	src := parse.New(ctx, code, lang)
	defer src.Close()

	var issues []types.Issue
	if src.SyntaxIssue != nil {
		issues = append(issues, *src.SyntaxIssue)
	}

	for _, s := range a.registry.All() {
		found, err := s.Scan(ctx, src, a.opts)
		if err != nil {
			a.logger.Warn().Err(err).Str("scanner", s.Name()).Msg("scanner failed, skipping")
			continue
		}
		issues = append(issues, found...)
	}

	m := a.collector.Collect(src)

	result := types.NewReviewResult(code, lang, issues, m)
	result.ExecutionTime = time.Since(start).Seconds()

	a.logger.Debug().
		Str("language", string(lang)).
		Int("issues", len(issues)).
		Str("grade", string(m.Grade)).
		Dur("elapsed", time.Since(start)).
		Msg("review complete")

	return result
}
