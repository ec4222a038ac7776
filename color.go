package blockcss

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorFormatter turns a color token plus opacity into a CSS color
// expression. An opacity outside [0, 1) means fully opaque.
type ColorFormatter interface {
	FormatColor(color string, opacity float64) string
}

// PaletteColorFormatter maps "paletteN" names to global palette custom
// properties and converts hex colors with opacity to rgba().
type PaletteColorFormatter struct {
	// Prefix is the custom property prefix; "--global-" when empty.
	Prefix string
}

// FormatColor implements ColorFormatter.
func (f PaletteColorFormatter) FormatColor(color string, opacity float64) string {
	color = strings.TrimSpace(color)
	if color == "" {
		return ""
	}
	translucent := opacity >= 0 && opacity < 1

	if strings.HasPrefix(color, "palette") {
		prefix := f.Prefix
		if prefix == "" {
			prefix = "--global-"
		}
		if translucent {
			return "rgba(var(" + prefix + color + "-rgb), " + formatOpacity(opacity) + ")"
		}
		return "var(" + prefix + color + ")"
	}

	if translucent && strings.HasPrefix(color, "#") {
		c, err := colorful.Hex(expandShortHex(color))
		if err != nil {
			return color
		}
		r, g, b := c.RGB255()
		return "rgba(" + strconv.Itoa(int(r)) + ", " + strconv.Itoa(int(g)) + ", " +
			strconv.Itoa(int(b)) + ", " + formatOpacity(opacity) + ")"
	}

	return color
}

// ValidHex reports whether color is a #rgb or #rrggbb literal.
func ValidHex(color string) bool {
	_, err := colorful.Hex(expandShortHex(color))
	return err == nil
}

// expandShortHex turns #abc into #aabbcc; other input is returned unchanged.
func expandShortHex(color string) string {
	if len(color) != 4 || color[0] != '#' {
		return color
	}
	return "#" + strings.Repeat(color[1:2], 2) + strings.Repeat(color[2:3], 2) + strings.Repeat(color[3:4], 2)
}

func formatOpacity(opacity float64) string {
	return strconv.FormatFloat(math.Round(opacity*1000)/1000, 'f', -1, 64)
}
