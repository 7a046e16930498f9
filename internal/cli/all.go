package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/ai"
	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/output"
	"github.com/rmaia/critic/internal/scan/complexity"
	"github.com/rmaia/critic/internal/scan/docs"
	"github.com/rmaia/critic/internal/scan/practices"
	"github.com/rmaia/critic/internal/scan/security"
	"github.com/rmaia/critic/internal/scan/style"
	"github.com/rmaia/critic/pkg/types"
)

var profileFlag string

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the full review",
	Long:  "Runs every scanner over the source file and reports issues, metrics, and the quality grade.",
	RunE:  runAll,
}

func init() {
	allCmd.Flags().StringVar(&profileFlag, "profile", "", "named review profile from the config file")
	rootCmd.AddCommand(allCmd)
}

// allScanners returns every scanner in its canonical execution order.
func allScanners() []analyzer.Scanner {
	return []analyzer.Scanner{
		security.New(),
		style.New(),
		complexity.New(),
		docs.New(),
		practices.New(),
	}
}

// scannersNamed filters the full scanner set down to the given names.
func scannersNamed(names []string) ([]analyzer.Scanner, error) {
	byName := make(map[string]analyzer.Scanner)
	for _, s := range allScanners() {
		byName[s.Name()] = s
	}

	var picked []analyzer.Scanner
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown scanner %q (available: %s)", name, strings.Join(scannerNames(), ", "))
		}
		picked = append(picked, s)
	}
	return picked, nil
}

func scannerNames() []string {
	var names []string
	for _, s := range allScanners() {
		names = append(names, s.Name())
	}
	return names
}

func runAll(cmd *cobra.Command, args []string) error {
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

	scanners := allScanners()
	if profileFlag != "" {
		profile := appConfig.GetProfile(profileFlag)
		if profile == nil {
			return fmt.Errorf("unknown profile %q", profileFlag)
		}
		if scanners, err = scannersNamed(profile.Scanners); err != nil {
			return err
		}
	}

	reg := analyzer.NewRegistry()
	for _, s := range scanners {
		reg.Register(s)
	}

	ctx := context.Background()

	a := analyzer.New(reg, metrics.NewCollector(metricParams()), reviewOptions(), logger)
	result := a.Review(ctx, code, lang)

	if aiFlag {
		reviewer, err := ai.NewReviewer(ctx, "", appConfig.AIModel)
		if err != nil {
			return err
		}
		if !reviewer.Available() {
			logger.Warn().Msg("AI suggestions requested but GOOGLE_API_KEY is not set")
		} else {
			aiCtx, cancel := context.WithTimeout(ctx, appConfig.AITimeout)
			suggestions, err := reviewer.Suggest(aiCtx, code, result.Language, result.Issues)
			cancel()
			if err != nil {
				logger.Warn().Err(err).Msg("ai suggestions failed")
			} else {
				result.AISuggestions = suggestions
			}
		}
	}

	return formatter.Format(os.Stdout, result)
}
