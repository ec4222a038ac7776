package blockcss

import "strings"

// Side names one edge of a box.
type Side string

// Box sides in CSS shorthand order.
const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Sides lists the four sides in shorthand order.
var Sides = []Side{SideTop, SideRight, SideBottom, SideLeft}

// BorderSide is the border of one side. Width is a number or numeric string.
type BorderSide struct {
	Color string
	Style string
	Width any
}

// BorderStyle is the border of all four sides for one device tier.
type BorderStyle struct {
	Top    BorderSide
	Right  BorderSide
	Bottom BorderSide
	Left   BorderSide
	Unit   string
}

// Side returns the border of side s.
func (b BorderStyle) Side(s Side) BorderSide {
	switch s {
	case SideRight:
		return b.Right
	case SideBottom:
		return b.Bottom
	case SideLeft:
		return b.Left
	default:
		return b.Top
	}
}

// BorderFormatter renders one border side as a shorthand value.
type BorderFormatter interface {
	FormatBorder(device Device, side Side, styles Responsive[BorderStyle], inherit bool) string
}

// ShorthandBorderFormatter emits "width style color" shorthands.
type ShorthandBorderFormatter struct {
	colors ColorFormatter
	// InheritedStyle is used for an inherited border without a line style.
	InheritedStyle string
}

// NewBorderFormatter creates a formatter that renders colors through colors.
func NewBorderFormatter(colors ColorFormatter) *ShorthandBorderFormatter {
	if colors == nil {
		colors = PaletteColorFormatter{}
	}
	return &ShorthandBorderFormatter{colors: colors, InheritedStyle: "solid"}
}

// FormatBorder implements BorderFormatter. Width, style and color cascade
// independently across tiers; an empty width means no border.
func (f *ShorthandBorderFormatter) FormatBorder(device Device, side Side, styles Responsive[BorderStyle], inherit bool) string {
	d, t, m := styles.Desktop.Side(side), styles.Tablet.Side(side), styles.Mobile.Side(side)

	width := Resolve(device, d.Width, t.Width, m.Width)
	if IsEmpty(width) {
		return ""
	}
	unit := Resolve(device, styles.Desktop.Unit, styles.Tablet.Unit, styles.Mobile.Unit)
	style := Resolve(device, d.Style, t.Style, m.Style)
	if style == "" && inherit {
		style = f.InheritedStyle
	}
	color := f.colors.FormatColor(Resolve(device, d.Color, t.Color, m.Color), 1)

	parts := []string{formatValue(width) + unitOr(unit, "px")}
	if style != "" {
		parts = append(parts, style)
	}
	if color != "" {
		parts = append(parts, color)
	}
	return strings.Join(parts, " ")
}
