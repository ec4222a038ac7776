package blockcss

import "github.com/yacobolo/blockcss/internal/report"

// Issue types are shared with the reporters in internal/report.
type (
	Issue      = report.Issue
	IssuePos   = report.IssuePos
	LintResult = report.Result
)

// IssueSeverity constants
const (
	SeverityError   = report.SeverityError
	SeverityWarning = report.SeverityWarning
)

// Check names, printed as the linter suffix of each issue
const (
	CheckDocument = "document"
	CheckSelector = "selector"
	CheckKind     = "kind"
	CheckEmpty    = "empty"
	CheckTokens   = "tokens"
	CheckColor    = "color"
	CheckMeasure  = "measure"
	CheckReadback = "readback"
)

// Issue message formats
const (
	IssueUnparsable       = "document cannot be parsed: %v"
	IssueMissingSelector  = "rule has no selector and will not be rendered"
	IssueUnknownKind      = "unknown declaration kind %q (want one of %s)"
	IssueEmptyDeclaration = "%s has no value on any device and will be dropped"
	IssueUnknownSpacing   = "unknown spacing token %q in %s will be dropped"
	IssueUnknownGap       = "unknown gap token %q in %s, renders as %q"
	IssueUnknownFontSize  = "unknown font-size token %q in %s, renders as %q"
	IssueInvalidHex       = "invalid hex color %q in %s"
	IssueTooManySlots     = "%s has %d slots on %s, only the first 4 are used"
	IssueReadback         = "rendered CSS does not parse back: %v"
)
