package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yacobolo/blockcss"
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Aliases: []string{"gen"},
	Short:   "Render block style documents into CSS files",
	Long: `Render every matched block style document into one minified stylesheet.
Desktop values become the base rules; tablet and mobile overrides are
emitted inside @media blocks.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.String("source", "blocks", "Source directory of block style documents")
	f.String("output-dir", "dist/css", "Output directory for rendered stylesheets")
	f.StringSlice("include", nil, "Glob patterns for documents to include")
	f.Bool("dry-run", false, "Print rendered CSS instead of writing files")
	f.Bool("lint", false, "Run linter after rendering")
}

func runRender(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	config, err := buildRenderConfig()
	if err != nil {
		return err
	}
	config.Logger = log

	result, err := blockcss.Render(config)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		if config.DryRun {
			files := make([]string, 0, len(result.Outputs))
			for file := range result.Outputs {
				files = append(files, file)
			}
			sort.Strings(files)
			for _, file := range files {
				fmt.Printf("/* %s */\n%s\n", file, result.Outputs[file])
			}
		} else {
			fmt.Printf("Rendered stylesheets in %s\n", config.OutputDir)
		}
		fmt.Fprintf(os.Stderr, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(os.Stderr, "  Files written: %d\n", result.FilesWritten)
		fmt.Fprintf(os.Stderr, "  Rules rendered: %d\n", result.Stats.Rules)
		fmt.Fprintf(os.Stderr, "  Declarations: %d emitted, %d dropped\n", result.Stats.Emitted, result.Stats.Suppressed)

		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "  Warning: %s\n", w)
		}
	}

	// Run lint after render if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint()
	}

	return nil
}
