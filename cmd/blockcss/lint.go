package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/blockcss"
	"github.com/yacobolo/blockcss/internal/report"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint block style documents",
	Long: `Check block style documents for values the renderer would drop or mangle:
rules without selectors, unknown declaration kinds, unknown design tokens,
invalid hex colors and declarations that are empty on every device.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.String("source", "blocks", "Source directory of block style documents")
	f.StringSlice("paths", nil, "Glob patterns for documents to lint")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per check (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (check) suffix on issues")
}

// runLint is shared between `blockcss lint` and `blockcss render --lint`.
func runLint() error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	lintConfig, err := buildLintConfig()
	if err != nil {
		return err
	}
	lintConfig.Logger = log

	lintResult, err := blockcss.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := report.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := report.WriteOutput(os.Stdout, lintResult, format, lintConfig.ReportOptions()); err != nil {
			return err
		}
	}

	// "Soft Gate": errors fail the build; strict mode fails on any issue
	if lintConfig.Failed(lintResult) {
		_ = log.Sync()
		os.Exit(1)
	}
	return nil
}
