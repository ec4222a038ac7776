package blockcss

import "strings"

// Typography describes a block's font settings. Sizes are responsive and
// may be numbers, numeric strings or font-size token names.
type Typography struct {
	Size          Responsive[any]
	SizeUnit      string
	LineHeight    Responsive[any]
	LineUnit      string
	LetterSpacing Responsive[any]
	LetterUnit    string
	TextTransform string
	Family        string
	Style         string
	Weight        string
}

// TypographyFormatter renders font settings as declaration text.
type TypographyFormatter interface {
	FormatTypography(t Typography, device Device) string
}

// TokenTypographyFormatter resolves font-size token names through Tokens.
type TokenTypographyFormatter struct {
	tokens *Tokens
}

// NewTypographyFormatter creates a formatter bound to tokens.
func NewTypographyFormatter(tokens *Tokens) *TokenTypographyFormatter {
	if tokens == nil {
		tokens = DefaultTokens()
	}
	return &TokenTypographyFormatter{tokens: tokens}
}

// FormatTypography implements TypographyFormatter.
func (f *TokenTypographyFormatter) FormatTypography(t Typography, device Device) string {
	var b strings.Builder
	write := func(property, value string) {
		if value != "" {
			b.WriteString(property + ":" + value + ";")
		}
	}

	if size := t.Size.Resolve(device); !IsEmpty(size) {
		text := formatValue(size)
		if v, ok := f.tokens.FontSize(text); ok {
			write("font-size", v)
		} else {
			write("font-size", text+unitOr(t.SizeUnit, "px"))
		}
	}
	if lh := t.LineHeight.Resolve(device); !IsEmpty(lh) {
		write("line-height", formatValue(lh)+t.LineUnit)
	}
	if ls := t.LetterSpacing.Resolve(device); !IsEmpty(ls) {
		write("letter-spacing", formatValue(ls)+unitOr(t.LetterUnit, "px"))
	}
	write("text-transform", t.TextTransform)
	write("font-family", t.Family)
	write("font-style", t.Style)
	write("font-weight", t.Weight)
	return b.String()
}

func unitOr(unit, fallback string) string {
	if unit == "" {
		return fallback
	}
	return unit
}
