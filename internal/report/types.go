// Package report prints lint results: golangci-lint style issue lines,
// statistics, and machine-readable exports.
package report

// Issue represents a single lint finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "blockcss"
	Text        string   `json:"Text"`        // "unknown gap token \"huge\""
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the document with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "blocks/hero.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 9 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Result is everything a reporter needs from one lint run.
type Result struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	RulesChecked   int
	Emitted        int            // Declarations the renderer emitted
	Suppressed     int            // Declarations dropped by the empty gate
	Categories     map[string]int // Rendered declarations per property category
	TokenValues    int            // Rendered values that reference custom properties
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits
	Warnings       []string
}

// EmitRate returns the share of declarations that made it into the output,
// as a percentage.
func (r Result) EmitRate() float64 {
	total := r.Emitted + r.Suppressed
	if total == 0 {
		return 100
	}
	return float64(r.Emitted) / float64(total) * 100
}

// Options controls how issues are printed.
type Options struct {
	UseColors        bool // Force color output (default: auto-detect)
	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (blockcss) suffix
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)
