package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains render statistics
type JSONStats struct {
	FilesSkipped int            `json:"files_skipped"`
	RulesChecked int            `json:"rules_checked"`
	Emitted      int            `json:"declarations_emitted"`
	Suppressed   int            `json:"declarations_dropped"`
	EmitRate     float64        `json:"emit_rate"`
	Categories   map[string]int `json:"categories"`
	TokenValues  int            `json:"token_references"`
}

// JSONIssue represents a single lint issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	errors, warnings := countSeverities(result.Issues)

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	warningsOut := result.Warnings
	if warningsOut == nil {
		warningsOut = []string{}
	}

	categories := result.Categories
	if categories == nil {
		categories = map[string]int{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			FilesSkipped: result.FilesSkipped,
			RulesChecked: result.RulesChecked,
			Emitted:      result.Emitted,
			Suppressed:   result.Suppressed,
			EmitRate:     result.EmitRate(),
			Categories:   categories,
			TokenValues:  result.TokenValues,
		},
		Issues:   jsonIssues,
		Warnings: warningsOut,
	}
}
