package report

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	// golangci-lint UX: issues only by default
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, opts Options) error {
	switch format {
	case OutputSummary:
		verbose := NewVerboseReporter(w, ShouldUseColors(opts.UseColors))
		verbose.PrintStatistics(*result)
		verbose.PrintEmitRate(*result)
		verbose.PrintCategories(*result)
		verbose.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(*result)
		verbose.PrintEmitRate(*result)
		verbose.PrintCategories(*result)
		verbose.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}

	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
