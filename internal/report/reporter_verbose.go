package report

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed lint statistics
func (r *VerboseReporter) PrintStatistics(result Result) {
	errors, warnings := countSeverities(result.Issues)

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Block CSS Statistics", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:           %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Rules Checked:           %d\n", result.RulesChecked)
	fmt.Fprintf(r.w, "Declarations Emitted:    %d\n", result.Emitted)
	fmt.Fprintf(r.w, "Declarations Dropped:    %d\n", result.Suppressed)
	fmt.Fprintf(r.w, "Errors:                  %d\n", errors)
	fmt.Fprintf(r.w, "Warnings:                %d\n", warnings)
}

// PrintEmitRate shows the share of declarations that reached the output
func (r *VerboseReporter) PrintEmitRate(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Emit Rate", r.useColors))
	fmt.Fprintln(r.w, "---------")
	printProgressBar(r.w, result.EmitRate())
}

// PrintCategories shows rendered declarations per property category
func (r *VerboseReporter) PrintCategories(result Result) {
	if len(result.Categories) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Declarations by Category", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	names := make([]string, 0, len(result.Categories))
	for name := range result.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.w, "%-24s %d\n", name+":", result.Categories[name])
	}
	fmt.Fprintf(r.w, "%-24s %d\n", "Token References:", result.TokenValues)
}

// PrintWarnings shows lint warnings that are not tied to a position
func (r *VerboseReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := range barWidth {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
