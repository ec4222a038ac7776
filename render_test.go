package blockcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMeasureOutput(t *testing.T) {
	tests := []struct {
		name     string
		device   Device
		measure  Responsive[[]any]
		property string
		unit     string
		names    []MeasureNames
		want     string
	}{
		{
			name:     "numeric slots",
			device:   DeviceDesktop,
			measure:  Only([]any{10, "", "", 5}),
			property: "padding",
			unit:     "px",
			want:     "padding-top:10px;padding-left:5px;",
		},
		{
			name:     "zero is emitted",
			device:   DeviceDesktop,
			measure:  Only([]any{0, 0}),
			property: "margin",
			unit:     "px",
			want:     "margin-top:0px;margin-right:0px;",
		},
		{
			name:     "spacing tokens",
			device:   DeviceDesktop,
			measure:  Only([]any{"md", "ss-auto"}),
			property: "margin",
			unit:     "px",
			want:     "margin-top:var(--global-kb-spacing-md, 2rem);margin-right:var(--global-kb-spacing-auto, auto);",
		},
		{
			name:     "unknown words are dropped",
			device:   DeviceDesktop,
			measure:  Only([]any{"huge", 4}),
			property: "padding",
			unit:     "em",
			want:     "padding-right:4em;",
		},
		{
			name:     "non-finite and hex strings are dropped",
			device:   DeviceDesktop,
			measure:  Only([]any{"Inf", "NaN", "1e3", "0x10"}),
			property: "padding",
			unit:     "px",
			want:     "padding-bottom:1e3px;",
		},
		{
			name:     "position values are verbatim",
			device:   DeviceDesktop,
			measure:  Only([]any{"auto", 0, "", "10%"}),
			property: "position",
			unit:     "px",
			want:     "top:auto;right:0px;left:10%;",
		},
		{
			name:   "slots cascade independently",
			device: DeviceMobile,
			measure: Responsive[[]any]{
				Desktop: []any{10, 10, 10, 10},
				Tablet:  []any{"", 8},
				Mobile:  []any{"", "", 4},
			},
			property: "padding",
			unit:     "px",
			want:     "padding-top:10px;padding-right:8px;padding-bottom:4px;padding-left:10px;",
		},
		{
			name:     "border width longhands",
			device:   DeviceDesktop,
			measure:  Only([]any{1, 2}),
			property: "border-width",
			unit:     "px",
			want:     "border-top-width:1px;border-right-width:2px;",
		},
		{
			name:     "border radius corners are prefixed",
			device:   DeviceDesktop,
			measure:  Only([]any{4}),
			property: "border-radius",
			unit:     "px",
			want:     "border-top-left-radius:4px;-webkit-border-top-left-radius:4px;-moz-border-radius-topleft:4px;",
		},
		{
			name:     "name overrides",
			device:   DeviceDesktop,
			measure:  Only([]any{1, 2, 3, 4}),
			property: "margin",
			unit:     "rem",
			names:    []MeasureNames{{First: "margin-block-start", Third: "margin-block-end"}},
			want:     "margin-block-start:1rem;margin-right:2rem;margin-block-end:3rem;margin-left:4rem;",
		},
		{
			name:     "empty measure",
			device:   DeviceTablet,
			measure:  Responsive[[]any]{},
			property: "padding",
			unit:     "px",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New().SetSelector(".a")
			b.RenderMeasureOutput(tt.device, tt.measure, tt.property, tt.unit, tt.names...)
			want := ""
			if tt.want != "" {
				want = ".a{" + tt.want + "}"
			}
			assert.Equal(t, want, b.CSSOutput())
		})
	}
}

func TestGapSize(t *testing.T) {
	tests := []struct {
		name string
		size any
		unit string
		want string
	}{
		{name: "token", size: "md", unit: "px", want: "var(--global-kb-gap-md, 2rem)"},
		{name: "number", size: 20, unit: "px", want: "20px"},
		{name: "default unit", size: 20, unit: "", want: "20px"},
		{name: "other unit", size: 1.5, unit: "rem", want: "1.5rem"},
		{name: "empty", size: "", unit: "px", want: ""},
		{name: "nil", size: nil, unit: "px", want: ""},
	}

	b := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.GapSize(tt.size, tt.unit))
		})
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		name string
		size any
		unit string
		want string
	}{
		{name: "token", size: "lg", unit: "px", want: "var(--global-kb-font-size-lg, 2rem)"},
		{name: "number", size: 18, unit: "", want: "18px"},
		{name: "unit", size: "1.2", unit: "em", want: "1.2em"},
		{name: "empty", size: "", unit: "px", want: ""},
	}

	b := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.FontSize(tt.size, tt.unit))
		})
	}
}

func TestRenderSize(t *testing.T) {
	tests := []struct {
		name     string
		device   Device
		size     Responsive[any]
		unit     string
		want     string
		wantHalf string
		wantOK   bool
	}{
		{name: "default unit", device: DeviceDesktop, size: Only[any](2), want: "2em", wantHalf: "calc(2em / 2)", wantOK: true},
		{name: "unit", device: DeviceDesktop, size: Only[any](30), unit: "px", want: "30px", wantHalf: "calc(30px / 2)", wantOK: true},
		{name: "tablet override", device: DeviceTablet, size: Responsive[any]{Desktop: 3, Tablet: 1}, want: "1em", wantHalf: "calc(1em / 2)", wantOK: true},
		{name: "zero", device: DeviceDesktop, size: Only[any](0), unit: "px", want: "0px", wantHalf: "calc(0px / 2)", wantOK: true},
		{name: "empty", device: DeviceMobile, size: Responsive[any]{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RenderSize(tt.device, tt.size, tt.unit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)

			half, ok := RenderHalfSize(tt.device, tt.size, tt.unit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHalf, half)
		})
	}
}

func TestRenderColor(t *testing.T) {
	b := New()

	got, ok := b.RenderColor(DeviceMobile, Responsive[string]{Desktop: "#fff", Mobile: "palette3"}, 1)
	assert.True(t, ok)
	assert.Equal(t, "var(--global-palette3)", got)

	got, ok = b.RenderColor(DeviceTablet, Responsive[string]{Desktop: "#ff0000"}, 0.5)
	assert.True(t, ok)
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", got)

	_, ok = b.RenderColor(DeviceDesktop, Responsive[string]{}, 1)
	assert.False(t, ok)
}

func TestRenderBorder(t *testing.T) {
	b := New().SetSelector(".a")
	styles := Only(BorderStyle{Top: BorderSide{Width: 1, Style: "dashed", Color: "palette2"}})

	for _, side := range Sides {
		if v, ok := b.RenderBorder(DeviceDesktop, side, styles, false); ok {
			b.AddProperty("border-"+string(side), v)
		}
	}
	assert.Equal(t, ".a{border-top:1px dashed var(--global-palette2);}", b.CSSOutput())
}
