package blockcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShorthandBorderFormatter(t *testing.T) {
	desktop := BorderStyle{
		Top:    BorderSide{Width: 2, Style: "solid", Color: "#000"},
		Bottom: BorderSide{Width: 1, Color: "palette1"},
	}

	tests := []struct {
		name    string
		device  Device
		side    Side
		styles  Responsive[BorderStyle]
		inherit bool
		want    string
	}{
		{
			name:   "full shorthand",
			device: DeviceDesktop,
			side:   SideTop,
			styles: Only(desktop),
			want:   "2px solid #000",
		},
		{
			name:   "no width means no border",
			device: DeviceDesktop,
			side:   SideLeft,
			styles: Only(desktop),
			want:   "",
		},
		{
			name:   "no style",
			device: DeviceDesktop,
			side:   SideBottom,
			styles: Only(desktop),
			want:   "1px var(--global-palette1)",
		},
		{
			name:    "inherited style",
			device:  DeviceDesktop,
			side:    SideBottom,
			styles:  Only(desktop),
			inherit: true,
			want:    "1px solid var(--global-palette1)",
		},
		{
			name:   "tablet color cascades with desktop width",
			device: DeviceTablet,
			side:   SideTop,
			styles: Responsive[BorderStyle]{
				Desktop: desktop,
				Tablet:  BorderStyle{Top: BorderSide{Color: "#fff"}},
			},
			want: "2px solid #fff",
		},
		{
			name:   "mobile unit",
			device: DeviceMobile,
			side:   SideTop,
			styles: Responsive[BorderStyle]{
				Desktop: desktop,
				Mobile:  BorderStyle{Top: BorderSide{Width: 0.5}, Unit: "em"},
			},
			want: "0.5em solid #000",
		},
	}

	f := NewBorderFormatter(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatBorder(tt.device, tt.side, tt.styles, tt.inherit))
		})
	}
}

func TestBorderStyleSide(t *testing.T) {
	s := BorderStyle{
		Top:    BorderSide{Style: "a"},
		Right:  BorderSide{Style: "b"},
		Bottom: BorderSide{Style: "c"},
		Left:   BorderSide{Style: "d"},
	}
	var got []string
	for _, side := range Sides {
		got = append(got, s.Side(side).Style)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}
