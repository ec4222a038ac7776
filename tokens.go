package blockcss

import (
	"fmt"
	"maps"
	"sort"

	"github.com/go-playground/validator/v10"
)

// TokenTables is the configuration shape of the design-token scales.
// Keys are symbolic scale names ("md", "xxl", "ss-auto"), values are CSS.
type TokenTables struct {
	Spacing   map[string]string `koanf:"spacing" yaml:"spacing" validate:"dive,keys,required,endkeys,required"`
	FontSizes map[string]string `koanf:"font-sizes" yaml:"font-sizes" validate:"dive,keys,required,endkeys,required"`
	Gaps      map[string]string `koanf:"gaps" yaml:"gaps" validate:"dive,keys,required,endkeys,required"`
}

// DefaultTokenTables returns the stock spacing, font-size and gap scales.
func DefaultTokenTables() TokenTables {
	return TokenTables{
		Spacing: map[string]string{
			"0":       "0",
			"none":    "var(--global-kb-spacing-none, 0)",
			"ss-auto": "var(--global-kb-spacing-auto, auto)",
			"xxs":     "var(--global-kb-spacing-xxs, 0.5rem)",
			"xs":      "var(--global-kb-spacing-xs, 1rem)",
			"sm":      "var(--global-kb-spacing-sm, 1.5rem)",
			"md":      "var(--global-kb-spacing-md, 2rem)",
			"lg":      "var(--global-kb-spacing-lg, 3rem)",
			"xl":      "var(--global-kb-spacing-xl, 4rem)",
			"xxl":     "var(--global-kb-spacing-xxl, 5rem)",
			"3xl":     "var(--global-kb-spacing-3xl, 6.5rem)",
			"4xl":     "var(--global-kb-spacing-4xl, 8rem)",
			"5xl":     "var(--global-kb-spacing-5xl, 10rem)",
		},
		FontSizes: map[string]string{
			"sm":   "var(--global-kb-font-size-sm, 0.9rem)",
			"md":   "var(--global-kb-font-size-md, 1.25rem)",
			"lg":   "var(--global-kb-font-size-lg, 2rem)",
			"xl":   "var(--global-kb-font-size-xl, 3rem)",
			"xxl":  "var(--global-kb-font-size-xxl, 4rem)",
			"xxxl": "var(--global-kb-font-size-xxxl, 5rem)",
		},
		Gaps: map[string]string{
			"none": "var(--global-kb-gap-none, 0)",
			"xs":   "var(--global-kb-gap-xs, 0.5rem)",
			"sm":   "var(--global-kb-gap-sm, 1rem)",
			"md":   "var(--global-kb-gap-md, 2rem)",
			"lg":   "var(--global-kb-gap-lg, 4rem)",
			"xl":   "var(--global-kb-gap-xl, 6rem)",
		},
	}
}

// Merge returns a copy of t with the entries of override added on top.
func (t TokenTables) Merge(override TokenTables) TokenTables {
	return TokenTables{
		Spacing:   mergeTable(t.Spacing, override.Spacing),
		FontSizes: mergeTable(t.FontSizes, override.FontSizes),
		Gaps:      mergeTable(t.Gaps, override.Gaps),
	}
}

func mergeTable(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// Tokens is an immutable set of design-token lookups. It is safe for
// concurrent use by any number of builders.
type Tokens struct {
	spacing   map[string]string
	fontSizes map[string]string
	gaps      map[string]string
}

var defaultTokens = mustTokens(DefaultTokenTables())

// DefaultTokens returns the shared stock token set.
func DefaultTokens() *Tokens {
	return defaultTokens
}

// NewTokens validates tables and freezes them into a Tokens.
func NewTokens(tables TokenTables) (*Tokens, error) {
	if err := validate().Struct(tables); err != nil {
		return nil, fmt.Errorf("invalid token tables: %w", err)
	}
	return &Tokens{
		spacing:   maps.Clone(tables.Spacing),
		fontSizes: maps.Clone(tables.FontSizes),
		gaps:      maps.Clone(tables.Gaps),
	}, nil
}

func mustTokens(tables TokenTables) *Tokens {
	t, err := NewTokens(tables)
	if err != nil {
		panic(err)
	}
	return t
}

// IsSpacing reports whether name is a spacing token.
func (t *Tokens) IsSpacing(name string) bool {
	_, ok := t.spacing[name]
	return ok
}

// Spacing resolves a spacing token. Unknown names resolve to "0".
func (t *Tokens) Spacing(name string) string {
	if v, ok := t.spacing[name]; ok {
		return v
	}
	return "0"
}

// IsGap reports whether name is a gap token.
func (t *Tokens) IsGap(name string) bool {
	_, ok := t.gaps[name]
	return ok
}

// Gap resolves a gap token; ok is false for unknown names.
func (t *Tokens) Gap(name string) (string, bool) {
	v, ok := t.gaps[name]
	return v, ok
}

// IsFontSize reports whether name is a font-size token.
func (t *Tokens) IsFontSize(name string) bool {
	_, ok := t.fontSizes[name]
	return ok
}

// FontSize resolves a font-size token; ok is false for unknown names.
func (t *Tokens) FontSize(name string) (string, bool) {
	v, ok := t.fontSizes[name]
	return v, ok
}

// Tables returns a mutable copy of the token tables.
func (t *Tokens) Tables() TokenTables {
	return TokenTables{
		Spacing:   maps.Clone(t.spacing),
		FontSizes: maps.Clone(t.fontSizes),
		Gaps:      maps.Clone(t.gaps),
	}
}

// SortedNames returns the keys of table in a stable display order.
func SortedNames(table map[string]string) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Breakpoints are the media conditions used for the tablet and mobile tiers.
type Breakpoints struct {
	Tablet string `koanf:"tablet" yaml:"tablet" validate:"required"`
	Mobile string `koanf:"mobile" yaml:"mobile" validate:"required"`
}

// DefaultBreakpoints returns the stock media conditions.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Tablet: "(max-width: 1024px)",
		Mobile: "(max-width: 767px)",
	}
}

// Validate checks that both conditions are set.
func (b Breakpoints) Validate() error {
	if err := validate().Struct(b); err != nil {
		return fmt.Errorf("invalid breakpoints: %w", err)
	}
	return nil
}

// For returns the media condition for device; desktop has none.
func (b Breakpoints) For(device Device) string {
	switch device {
	case DeviceTablet:
		return b.Tablet
	case DeviceMobile:
		return b.Mobile
	default:
		return ""
	}
}

var validateInst = validator.New(validator.WithRequiredStructEnabled())

func validate() *validator.Validate {
	return validateInst
}
