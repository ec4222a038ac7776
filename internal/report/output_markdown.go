package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a shareable Markdown report
func WriteMarkdown(w io.Writer, result *Result) error {
	bw := bufio.NewWriter(w)
	errors, warnings := countSeverities(result.Issues)

	fmt.Fprintln(bw, "# Block CSS Lint Report")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## Summary")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Metric | Value |")
	fmt.Fprintln(bw, "|---|---|")
	fmt.Fprintf(bw, "| **Status** | %s |\n", markdownStatus(errors, warnings))
	fmt.Fprintf(bw, "| **Total Issues** | %d (%d errors, %d warnings) |\n", len(result.Issues), errors, warnings)
	fmt.Fprintf(bw, "| **Files Scanned** | %d |\n", result.FilesScanned)
	fmt.Fprintf(bw, "| **Rules Checked** | %d |\n", result.RulesChecked)
	fmt.Fprintf(bw, "| **Emit Rate** | %.1f%% |\n", result.EmitRate())

	if errors > 0 {
		writeMarkdownIssues(bw, "Errors", result.Issues, SeverityError)
	}
	if warnings > 0 {
		writeMarkdownIssues(bw, "Warnings", result.Issues, SeverityWarning)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Notes")
		fmt.Fprintln(bw)
		for _, warning := range result.Warnings {
			fmt.Fprintf(bw, "- %s\n", markdownCell(warning))
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "---")
	fmt.Fprintln(bw, "*Generated by blockcss lint*")
	return bw.Flush()
}

func writeMarkdownIssues(w io.Writer, title string, issues []Issue, severity string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "## %s\n", title)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Location | Message | Check |")
	fmt.Fprintln(w, "|---|---|---|")
	for _, issue := range issues {
		if issue.Severity != severity {
			continue
		}
		fmt.Fprintf(w, "| `%s:%d:%d` | %s | %s |\n",
			markdownCell(issue.Pos.Filename), issue.Pos.Line, issue.Pos.Column,
			markdownCell(issue.Text), issue.FromLinter)
	}
}

// markdownCellEscaper keeps pipes and line breaks from ending a table row.
var markdownCellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func markdownCell(text string) string {
	return markdownCellEscaper.Replace(text)
}

func markdownStatus(errors, warnings int) string {
	switch {
	case errors > 0:
		return "Failing"
	case warnings > 0:
		return "Needs Attention"
	default:
		return "Clean"
	}
}
