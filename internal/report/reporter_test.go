package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "      - property: column-gap",
			column:     9,
			want:       "        ^", // 8 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t  kind: gap",
			column:     5,
			want:       "\t\t  ^",
		},
		{
			name:       "start of line",
			sourceLine: "rules:",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssues_SortsAndFormats(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Options{PrintIssuedLines: true, PrintLinterName: true})
	reporter.useColors = false

	issues := []Issue{
		{
			FromLinter:  "tokens",
			Text:        `unknown gap token "huge" in column-gap, renders as "hugepx"`,
			Severity:    SeverityWarning,
			SourceLines: []string{"      - {property: column-gap, kind: gap, value: huge}"},
			Pos:         IssuePos{Filename: "blocks/b.yaml", Line: 7, Column: 9},
		},
		{
			FromLinter: "selector",
			Text:       "rule has no selector and will not be rendered",
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: "blocks/a.yaml", Line: 3, Column: 5},
		},
	}
	reporter.PrintIssues(issues)

	out := buf.String()
	first := bytes.Index(buf.Bytes(), []byte("blocks/a.yaml:3:5:"))
	second := bytes.Index(buf.Bytes(), []byte("blocks/b.yaml:7:9:"))
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)

	assert.Contains(t, out, "error: rule has no selector and will not be rendered (selector)")
	assert.Contains(t, out, `warning: unknown gap token "huge"`)
	assert.Contains(t, out, "\t        ^\n")
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   []string
	}{
		{
			name:   "no issues",
			result: Result{},
			want:   []string{"0 issues:"},
		},
		{
			name: "single type",
			result: Result{Issues: []Issue{
				{FromLinter: "tokens", Severity: SeverityWarning},
			}},
			want: []string{"1 issue:", "* tokens: 1", "Hint:"},
		},
		{
			name: "mixed severities with truncation",
			result: Result{
				Issues: []Issue{
					{FromLinter: "tokens", Severity: SeverityWarning},
					{FromLinter: "kind", Severity: SeverityError},
				},
				TruncatedCount: 3,
			},
			want: []string{"2 issues (1 error, 1 warning; 3 issues truncated):", "* kind: 1", "* tokens: 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := &Reporter{w: &buf}
			reporter.PrintSummary(tt.result)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVerboseReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewVerboseReporter(&buf, false)

	result := Result{
		FilesScanned: 4,
		RulesChecked: 12,
		Emitted:      30,
		Suppressed:   10,
		Categories:   map[string]int{"Layout": 20, "Prefixed": 4},
		TokenValues:  6,
		Warnings:     []string{"Failed to read blocks/x.yaml"},
	}
	r.PrintStatistics(result)
	r.PrintEmitRate(result)
	r.PrintCategories(result)
	r.PrintWarnings(result)

	out := buf.String()
	assert.Contains(t, out, "Files Scanned:           4")
	assert.Contains(t, out, "Declarations Dropped:    10")
	assert.Contains(t, out, "] 75.0%")
	assert.Contains(t, out, "Layout:")
	assert.Contains(t, out, "Token References:")
	assert.Contains(t, out, "• Failed to read blocks/x.yaml")
}

func TestEmitRate(t *testing.T) {
	assert.InDelta(t, 100.0, Result{}.EmitRate(), 0.001)
	assert.InDelta(t, 50.0, Result{Emitted: 2, Suppressed: 2}.EmitRate(), 0.001)
}
