// Package document reads block style documents: YAML files describing the
// style attributes of one block instance.
package document

// Declaration kinds
const (
	KindPlain    = "plain"
	KindSize     = "size"
	KindHalfSize = "half-size"
	KindColor    = "color"
	KindGap      = "gap"
	KindFontSize = "font-size"
)

// Kinds lists every valid declaration kind.
var Kinds = []string{KindPlain, KindSize, KindHalfSize, KindColor, KindGap, KindFontSize}

// Position is a 1-based location in the source file.
type Position struct {
	Line   int
	Column int
}

// Document is one parsed block style file.
type Document struct {
	Path        string       `yaml:"-"`
	Breakpoints *Breakpoints `yaml:"breakpoints"`
	Rules       []Rule       `yaml:"rules"`
}

// Breakpoints overrides the configured media conditions for one document.
type Breakpoints struct {
	Tablet string `yaml:"tablet"`
	Mobile string `yaml:"mobile"`
}

// Rule is the style of one selector.
type Rule struct {
	Selector     string        `yaml:"selector"`
	States       []string      `yaml:"states"`
	Declarations []Declaration `yaml:"declarations"`
	Measures     []Measure     `yaml:"measures"`
	Typography   *Typography   `yaml:"typography"`
	Borders      *Borders      `yaml:"borders"`

	Pos Position `yaml:"-"`
}

// Declaration is one responsive property value.
type Declaration struct {
	Property string   `yaml:"property"`
	Kind     string   `yaml:"kind"`
	Value    any      `yaml:"value"`
	Tablet   any      `yaml:"tablet"`
	Mobile   any      `yaml:"mobile"`
	Unit     string   `yaml:"unit"`
	Opacity  *float64 `yaml:"opacity"`

	Pos Position `yaml:"-"`
}

// EffectiveKind returns Kind, defaulting to plain.
func (d Declaration) EffectiveKind() string {
	if d.Kind == "" {
		return KindPlain
	}
	return d.Kind
}

// Measure is a four-slot box measure (padding, margin, border-width, ...).
type Measure struct {
	Property string `yaml:"property"`
	Unit     string `yaml:"unit"`
	Value    []any  `yaml:"value"`
	Tablet   []any  `yaml:"tablet"`
	Mobile   []any  `yaml:"mobile"`
	First    string `yaml:"first"`
	Second   string `yaml:"second"`
	Third    string `yaml:"third"`
	Fourth   string `yaml:"fourth"`

	Pos Position `yaml:"-"`
}

// Responsive is a value with optional tablet and mobile overrides.
type Responsive struct {
	Value  any `yaml:"value"`
	Tablet any `yaml:"tablet"`
	Mobile any `yaml:"mobile"`
}

// Typography mirrors the typography attribute of a block.
type Typography struct {
	Size          Responsive `yaml:"size"`
	SizeUnit      string     `yaml:"size-unit"`
	LineHeight    Responsive `yaml:"line-height"`
	LineUnit      string     `yaml:"line-unit"`
	LetterSpacing Responsive `yaml:"letter-spacing"`
	LetterUnit    string     `yaml:"letter-unit"`
	TextTransform string     `yaml:"text-transform"`
	Family        string     `yaml:"family"`
	Style         string     `yaml:"style"`
	Weight        string     `yaml:"weight"`
}

// BorderSide is one side of a border.
type BorderSide struct {
	Color string `yaml:"color"`
	Style string `yaml:"style"`
	Width any    `yaml:"width"`
}

// BorderStyle is a four-sided border for one device tier.
type BorderStyle struct {
	Top    BorderSide `yaml:"top"`
	Right  BorderSide `yaml:"right"`
	Bottom BorderSide `yaml:"bottom"`
	Left   BorderSide `yaml:"left"`
	Unit   string     `yaml:"unit"`
}

// Borders renders border-<side> declarations for the listed sides.
type Borders struct {
	Sides   []string     `yaml:"sides"`
	Inherit bool         `yaml:"inherit"`
	Value   *BorderStyle `yaml:"value"`
	Tablet  *BorderStyle `yaml:"tablet"`
	Mobile  *BorderStyle `yaml:"mobile"`
}

// EffectiveSides returns Sides, defaulting to all four.
func (b Borders) EffectiveSides() []string {
	if len(b.Sides) == 0 {
		return []string{"top", "right", "bottom", "left"}
	}
	return b.Sides
}
