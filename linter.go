package blockcss

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/blockcss/internal/document"
	"github.com/yacobolo/blockcss/internal/report"
)

// LintConfig holds linting configuration
type LintConfig struct {
	SourceDir   string      // "blocks"
	ScanPaths   []string    // Patterns to scan (e.g., "**/*.yaml")
	Tokens      *Tokens     // nil = DefaultTokens()
	Breakpoints Breakpoints // zero = DefaultBreakpoints()
	Logger      *zap.Logger // nil = no logging
	Strict      bool        // Fail on any issue, not just errors

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (check) suffix (default: true)
	UseColors          bool // Force color output (default: auto-detect)
}

// ReportOptions returns the printing options of the config.
func (c LintConfig) ReportOptions() report.Options {
	return report.Options{
		UseColors:        c.UseColors,
		PrintIssuedLines: c.PrintIssuedLines,
		PrintLinterName:  c.PrintLinterName,
	}
}

// Failed applies the exit gate to a lint result: errors always fail, and
// in strict mode so does any issue.
func (c LintConfig) Failed(result *LintResult) bool {
	if c.Strict {
		return len(result.Issues) > 0
	}
	return result.ErrorCount > 0
}

// Lint checks every document matched by config.ScanPaths for values the
// renderer would drop or mangle.
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("lint")

	if config.Breakpoints == (Breakpoints{}) {
		config.Breakpoints = DefaultBreakpoints()
	}
	if err := config.Breakpoints.Validate(); err != nil {
		return nil, err
	}
	if config.Tokens == nil {
		config.Tokens = DefaultTokens()
	}

	files, scan, err := expandGlobPatterns(config.SourceDir, config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result := &LintResult{
		FilesScanned: scan.FilesScanned,
		FilesSkipped: scan.FilesSkipped,
		Categories:   make(map[string]int),
	}
	log.Debug("found documents", zap.Int("files", len(files)))

	renderer := DocumentRenderer{Tokens: config.Tokens, Breakpoints: config.Breakpoints, Logger: log}
	var issues []Issue
	for _, file := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}
		l := &docLinter{
			file:   file,
			lines:  strings.Split(string(content), "\n"),
			tokens: config.Tokens,
		}

		doc, err := document.Parse(content, file)
		if err != nil {
			l.add(CheckDocument, SeverityError, document.Position{Line: 1, Column: 1}, IssueUnparsable, err)
			issues = append(issues, l.issues...)
			continue
		}

		l.checkDocument(doc)
		out, stats := renderer.Render(doc)
		result.RulesChecked += stats.Rules
		result.Emitted += stats.Emitted
		result.Suppressed += stats.Suppressed
		rules, err := ParseRules(out.String())
		if err != nil {
			l.add(CheckReadback, SeverityError, document.Position{Line: 1, Column: 1}, IssueReadback, err)
		}
		result.TokenValues += tallyRules(rules, result.Categories)

		log.Debug("linted document", zap.String("file", file), zap.Int("issues", len(l.issues)))
		issues = append(issues, l.issues...)
	}

	report.SortIssues(issues)
	result.Issues, result.TruncatedCount = limitIssues(issues, config)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

// docLinter collects the issues of one document.
type docLinter struct {
	file   string
	lines  []string
	tokens *Tokens
	issues []Issue
}

func (l *docLinter) add(check, severity string, pos document.Position, format string, args ...any) {
	issue := Issue{
		FromLinter: check,
		Text:       fmt.Sprintf(format, args...),
		Severity:   severity,
		Pos: IssuePos{
			Filename: l.file,
			Line:     pos.Line,
			Column:   pos.Column,
		},
	}
	if pos.Line > 0 && pos.Line <= len(l.lines) {
		issue.SourceLines = []string{strings.TrimRight(l.lines[pos.Line-1], "\r")}
	}
	l.issues = append(l.issues, issue)
}

func (l *docLinter) checkDocument(doc *document.Document) {
	for _, rule := range doc.Rules {
		if rule.Selector == "" {
			l.add(CheckSelector, SeverityError, rule.Pos, IssueMissingSelector)
			continue
		}
		for _, d := range rule.Declarations {
			l.checkDeclaration(d, rule.Pos)
		}
		for _, m := range rule.Measures {
			l.checkMeasure(m, rule.Pos)
		}
		if t := rule.Typography; t != nil {
			for _, v := range tiers(t.Size.Value, t.Size.Tablet, t.Size.Mobile) {
				l.checkToken(v, "typography size", rule.Pos, l.tokens.IsFontSize, IssueUnknownFontSize, unitOr(t.SizeUnit, "px"))
			}
		}
		if b := rule.Borders; b != nil {
			for _, style := range []*document.BorderStyle{b.Value, b.Tablet, b.Mobile} {
				if style == nil {
					continue
				}
				for _, side := range []document.BorderSide{style.Top, style.Right, style.Bottom, style.Left} {
					l.checkHex(side.Color, "borders", rule.Pos)
				}
			}
		}
	}
}

func (l *docLinter) checkDeclaration(d document.Declaration, rulePos document.Position) {
	pos := d.Pos
	if pos.Line == 0 {
		pos = rulePos
	}

	kind := d.EffectiveKind()
	if !slices.Contains(document.Kinds, kind) {
		l.add(CheckKind, SeverityError, pos, IssueUnknownKind, d.Kind, strings.Join(document.Kinds, ", "))
		return
	}

	values := tiers(d.Value, d.Tablet, d.Mobile)
	if len(values) == 0 {
		l.add(CheckEmpty, SeverityWarning, pos, IssueEmptyDeclaration, d.Property)
		return
	}

	for _, v := range values {
		switch kind {
		case document.KindGap:
			l.checkToken(v, d.Property, pos, l.tokens.IsGap, IssueUnknownGap, unitOr(d.Unit, "px"))
		case document.KindFontSize:
			l.checkToken(v, d.Property, pos, l.tokens.IsFontSize, IssueUnknownFontSize, unitOr(d.Unit, "px"))
		case document.KindColor:
			l.checkHex(formatValue(v), d.Property, pos)
		}
	}
}

func (l *docLinter) checkMeasure(m document.Measure, rulePos document.Position) {
	pos := m.Pos
	if pos.Line == 0 {
		pos = rulePos
	}

	for _, tier := range []struct {
		device Device
		values []any
	}{
		{DeviceDesktop, m.Value},
		{DeviceTablet, m.Tablet},
		{DeviceMobile, m.Mobile},
	} {
		if len(tier.values) > 4 {
			l.add(CheckMeasure, SeverityWarning, pos, IssueTooManySlots, m.Property, len(tier.values), strings.ToLower(tier.device.String()))
		}
		if m.Property == "position" {
			continue
		}
		for _, v := range tier.values {
			if IsEmpty(v) || isNumeric(v) {
				continue
			}
			if name := formatValue(v); !l.tokens.IsSpacing(name) {
				l.add(CheckTokens, SeverityWarning, pos, IssueUnknownSpacing, name, m.Property)
			}
		}
	}
}

// checkToken flags a non-numeric value that is not a known token; such a
// value is rendered with the unit glued on.
func (l *docLinter) checkToken(v any, where string, pos document.Position, known func(string) bool, format, unit string) {
	if isNumeric(v) {
		return
	}
	name := formatValue(v)
	if known(name) {
		return
	}
	l.add(CheckTokens, SeverityWarning, pos, format, name, where, name+unit)
}

func (l *docLinter) checkHex(color, where string, pos document.Position) {
	if strings.HasPrefix(color, "#") && !ValidHex(color) {
		l.add(CheckColor, SeverityWarning, pos, IssueInvalidHex, color, where)
	}
}

// tiers returns the non-empty values among a desktop/tablet/mobile triple.
func tiers(values ...any) []any {
	var out []any
	for _, v := range values {
		if !IsEmpty(v) {
			out = append(out, v)
		}
	}
	return out
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < config.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
