package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/output"
	"github.com/rmaia/critic/pkg/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run individual review scanners",
	Long:  "Review a source file with a single scanner: security, style, complexity, docs, or practices.",
}

// readSource loads the code under review from --file, where "-" means stdin.
func readSource() (string, error) {
	if fileFlag == "" {
		return "", fmt.Errorf("--file (-f) is required")
	}
	if fileFlag == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(fileFlag)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", fileFlag, err)
	}
	return string(data), nil
}

// reviewOptions builds scanner options from the loaded configuration.
func reviewOptions() analyzer.Options {
	return analyzer.Options{
		MaxLineLength:   appConfig.MaxLineLength,
		MaxComplexity:   appConfig.MaxComplexity,
		MaxNestingDepth: appConfig.MaxNestingDepth,
	}
}

// metricParams builds the formula coefficients from the loaded
// configuration.
func metricParams() metrics.Params {
	m := appConfig.Metrics
	return metrics.Params{
		MIBase:             m.MIBase,
		MIVolumeWeight:     m.MIVolumeWeight,
		MIComplexityWeight: m.MIComplexityWeight,
		MILocWeight:        m.MILocWeight,
		MICommentWeight:    m.MICommentWeight,
		MICommentFactor:    m.MICommentFactor,
		EarlyExitPenalty:   m.EarlyExitPenalty,
	}
}

// runReviewWith reviews the configured source file with the given
// scanners and prints the result in the selected output format.
func runReviewWith(scanners ...analyzer.Scanner) error {
	code, err := readSource()
	if err != nil {
		return err
	}

	lang, err := types.ParseLanguage(languageFlag)
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatter(outputFlag)
	if err != nil {
		return err
	}

	reg := analyzer.NewRegistry()
	for _, s := range scanners {
		reg.Register(s)
	}

	a := analyzer.New(reg, metrics.NewCollector(metricParams()), reviewOptions(), logger)
	result := a.Review(context.Background(), code, lang)

	return formatter.Format(os.Stdout, result)
}
