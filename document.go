package blockcss

import (
	"go.uber.org/zap"

	"github.com/yacobolo/blockcss/internal/document"
)

// RenderStats counts what one document render produced.
type RenderStats struct {
	Rules      int
	Emitted    int
	Suppressed int
}

// Add accumulates other into s.
func (s *RenderStats) Add(other RenderStats) {
	s.Rules += other.Rules
	s.Emitted += other.Emitted
	s.Suppressed += other.Suppressed
}

// DocumentRenderer renders block style documents into stylesheets.
type DocumentRenderer struct {
	Tokens      *Tokens
	Breakpoints Breakpoints
	Logger      *zap.Logger
}

// Render renders doc once per device. The desktop pass produces the base
// rules; the tablet and mobile passes emit only values set for that tier and
// are returned as media blocks.
func (r DocumentRenderer) Render(doc *document.Document) (Output, RenderStats) {
	bp := r.Breakpoints
	if doc.Breakpoints != nil {
		if doc.Breakpoints.Tablet != "" {
			bp.Tablet = doc.Breakpoints.Tablet
		}
		if doc.Breakpoints.Mobile != "" {
			bp.Mobile = doc.Breakpoints.Mobile
		}
	}

	var out Output
	stats := RenderStats{Rules: len(doc.Rules)}
	for _, device := range Devices {
		b := New(WithTokens(r.Tokens), WithLogger(r.Logger))
		if device != DeviceDesktop {
			b.SetMediaQuery(bp.For(device))
		}
		for _, rule := range doc.Rules {
			if rule.Selector == "" {
				continue
			}
			applyRule(b, rule, device)
		}

		if device == DeviceDesktop {
			out.Base = b.CSSOutput()
		} else if css := b.MediaQueryOutput(); css != "" {
			out.Media = append(out.Media, MediaBlock{Query: bp.For(device), CSS: css})
		}
		st := b.State()
		stats.Emitted += st.Emitted
		stats.Suppressed += st.Suppressed
	}
	return out, stats
}

func applyRule(b *Builder, rule document.Rule, device Device) {
	b.SetSelector(rule.Selector)
	b.SetSelectorStates(rule.States...)

	for _, d := range rule.Declarations {
		if !tierSet(device, d.Tablet, d.Mobile) {
			continue
		}
		applyDeclaration(b, d, device)
	}

	for _, m := range rule.Measures {
		measure := Responsive[[]any]{Desktop: m.Value, Tablet: m.Tablet, Mobile: m.Mobile}
		b.RenderMeasureOutput(device, tierOnly(measure, device), m.Property, m.Unit, MeasureNames{
			First: m.First, Second: m.Second, Third: m.Third, Fourth: m.Fourth,
		})
	}

	if t := rule.Typography; t != nil {
		b.RenderFont(typographyFor(t, device), device)
	}

	if bd := rule.Borders; bd != nil && tierSet(device, bd.Tablet, bd.Mobile) {
		styles := Responsive[BorderStyle]{
			Desktop: borderStyle(bd.Value),
			Tablet:  borderStyle(bd.Tablet),
			Mobile:  borderStyle(bd.Mobile),
		}
		for _, side := range bd.EffectiveSides() {
			if v, ok := b.RenderBorder(device, Side(side), styles, bd.Inherit); ok {
				b.AddProperty("border-"+side, v)
			}
		}
	}
}

func applyDeclaration(b *Builder, d document.Declaration, device Device) {
	value := Responsive[any]{Desktop: d.Value, Tablet: d.Tablet, Mobile: d.Mobile}

	switch d.EffectiveKind() {
	case document.KindPlain:
		v := value.Resolve(device)
		if d.Unit != "" && isNumeric(v) {
			v = formatValue(v) + d.Unit
		}
		b.AddProperty(d.Property, v)
	case document.KindSize:
		if v, ok := RenderSize(device, value, d.Unit); ok {
			b.AddProperty(d.Property, v)
		}
	case document.KindHalfSize:
		if v, ok := RenderHalfSize(device, value, d.Unit); ok {
			b.AddProperty(d.Property, v)
		}
	case document.KindColor:
		opacity := 1.0
		if d.Opacity != nil {
			opacity = *d.Opacity
		}
		color := Responsive[string]{
			Desktop: formatValue(d.Value),
			Tablet:  formatValue(d.Tablet),
			Mobile:  formatValue(d.Mobile),
		}
		if v, ok := b.RenderColor(device, color, opacity); ok {
			b.AddProperty(d.Property, v)
		}
	case document.KindGap:
		b.AddProperty(d.Property, b.GapSize(value.Resolve(device), d.Unit))
	case document.KindFontSize:
		b.AddProperty(d.Property, b.FontSize(value.Resolve(device), d.Unit))
	}
}

// tierSet reports whether a value needs output in the pass for device. The
// desktop pass always renders; the others only render their own overrides.
func tierSet(device Device, tablet, mobile any) bool {
	switch device {
	case DeviceTablet:
		return !IsEmpty(tablet)
	case DeviceMobile:
		return !IsEmpty(mobile)
	default:
		return true
	}
}

// tierOnly keeps just the tier rendered by device so media passes do not
// repeat inherited values.
func tierOnly[T any](r Responsive[T], device Device) Responsive[T] {
	switch device {
	case DeviceTablet:
		return Responsive[T]{Tablet: r.Tablet}
	case DeviceMobile:
		return Responsive[T]{Mobile: r.Mobile}
	default:
		return r
	}
}

func typographyFor(t *document.Typography, device Device) Typography {
	out := Typography{
		Size:          tierOnly(responsive(t.Size), device),
		SizeUnit:      t.SizeUnit,
		LineHeight:    tierOnly(responsive(t.LineHeight), device),
		LineUnit:      t.LineUnit,
		LetterSpacing: tierOnly(responsive(t.LetterSpacing), device),
		LetterUnit:    t.LetterUnit,
	}
	if device == DeviceDesktop {
		out.TextTransform = t.TextTransform
		out.Family = t.Family
		out.Style = t.Style
		out.Weight = t.Weight
	}
	return out
}

func responsive(r document.Responsive) Responsive[any] {
	return Responsive[any]{Desktop: r.Value, Tablet: r.Tablet, Mobile: r.Mobile}
}

func borderStyle(s *document.BorderStyle) BorderStyle {
	if s == nil {
		return BorderStyle{}
	}
	side := func(d document.BorderSide) BorderSide {
		return BorderSide{Color: d.Color, Style: d.Style, Width: d.Width}
	}
	return BorderStyle{
		Top:    side(s.Top),
		Right:  side(s.Right),
		Bottom: side(s.Bottom),
		Left:   side(s.Left),
		Unit:   s.Unit,
	}
}
