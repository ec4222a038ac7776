package blockcss

import (
	"go.uber.org/zap"
)

// RenderSize resolves a responsive size and appends unit ("em" when empty).
// ok is false when the resolved value is empty.
func RenderSize(device Device, size Responsive[any], unit string) (string, bool) {
	v := size.Resolve(device)
	if IsEmpty(v) {
		return "", false
	}
	return formatValue(v) + unitOr(unit, "em"), true
}

// RenderHalfSize is RenderSize wrapped in calc(... / 2).
func RenderHalfSize(device Device, size Responsive[any], unit string) (string, bool) {
	s, ok := RenderSize(device, size, unit)
	if !ok {
		return "", false
	}
	return "calc(" + s + " / 2)", true
}

// RenderColor resolves a responsive color and formats it with opacity.
// Pass an opacity of 1 for an opaque color.
func (b *Builder) RenderColor(device Device, color Responsive[string], opacity float64) (string, bool) {
	v := color.Resolve(device)
	if v == "" {
		return "", false
	}
	out := b.colors.FormatColor(v, opacity)
	return out, out != ""
}

// RenderFont appends the typography declarations for device verbatim.
func (b *Builder) RenderFont(t Typography, device Device) *Builder {
	return b.addRaw(b.fonts.FormatTypography(t, device))
}

// RenderBorder returns the shorthand value for one border side.
func (b *Builder) RenderBorder(device Device, side Side, styles Responsive[BorderStyle], inherit bool) (string, bool) {
	out := b.borders.FormatBorder(device, side, styles, inherit)
	return out, out != ""
}

// MeasureNames overrides the property names RenderMeasureOutput derives for
// its four slots. Empty fields keep the derived name.
type MeasureNames struct {
	First  string
	Second string
	Third  string
	Fourth string
}

func (n MeasureNames) apply(names [4]string) [4]string {
	for i, override := range [4]string{n.First, n.Second, n.Third, n.Fourth} {
		if override != "" {
			names[i] = override
		}
	}
	return names
}

// measureProperties derives the four longhand names for property.
func measureProperties(property string) [4]string {
	switch property {
	case "border-width":
		return [4]string{"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"}
	case "border-radius":
		return [4]string{"border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"}
	case "position":
		return [4]string{"top", "right", "bottom", "left"}
	default:
		return [4]string{property + "-top", property + "-right", property + "-bottom", property + "-left"}
	}
}

// RenderMeasureOutput emits the four longhands of a box measure (padding,
// margin, border-width, border-radius, position). Each slot cascades across
// tiers on its own. Numeric slots get unit appended, position slots are
// emitted verbatim, spacing token names resolve through the token table and
// anything else is skipped.
func (b *Builder) RenderMeasureOutput(device Device, measure Responsive[[]any], property, unit string, names ...MeasureNames) *Builder {
	props := measureProperties(property)
	for _, n := range names {
		props = n.apply(props)
	}

	for i, prop := range props {
		v := Resolve(device, slot(measure.Desktop, i), slot(measure.Tablet, i), slot(measure.Mobile, i))
		switch {
		case isNumeric(v):
			b.AddProperty(prop, formatValue(v)+unit)
		case property == "position" && !IsEmpty(v):
			b.AddProperty(prop, v)
		case !IsEmpty(v) && b.tokens.IsSpacing(formatValue(v)):
			b.AddProperty(prop, b.tokens.Spacing(formatValue(v)))
		case !IsEmpty(v):
			b.log.Debug("dropping unknown measure value",
				zap.String("property", prop), zap.String("value", formatValue(v)))
		}
	}
	return b
}

func slot(values []any, i int) any {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func isNumeric(v any) bool {
	_, ok := numericValue(v)
	return ok
}

// GapSize resolves a gap token name, or appends unit ("px" when empty) to a
// plain size. An empty size yields "".
func (b *Builder) GapSize(size any, unit string) string {
	if IsEmpty(size) {
		return ""
	}
	text := formatValue(size)
	if v, ok := b.tokens.Gap(text); ok {
		return v
	}
	return text + unitOr(unit, "px")
}

// FontSize resolves a font-size token name, or appends unit ("px" when
// empty) to a plain size. An empty size yields "".
func (b *Builder) FontSize(size any, unit string) string {
	if IsEmpty(size) {
		return ""
	}
	text := formatValue(size)
	if v, ok := b.tokens.FontSize(text); ok {
		return v
	}
	return text + unitOr(unit, "px")
}
