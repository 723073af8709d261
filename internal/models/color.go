// internal/models/color.go

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal foreground/background color. It accepts hex and
// a small named set at the boundary and knows the three encodings the
// rest of the system needs: the legacy signed-RGB-int property value,
// the xterm rgb: spec and the AppleScript 16-bit triple.
type Color struct {
	c  colorful.Color
	ok bool
}

// IsSet distinguishes a parsed color from the zero value, so callers
// can substitute their own default for an absent one.
func (c Color) IsSet() bool {
	return c.ok
}

var (
	DefaultForeground = MustParseColor("#000000")
	DefaultBackground = MustParseColor("#ffffff")
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
}

// ParseColor accepts "#rrggbb" hex or a named color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{c: c, ok: true}, nil
}

// MustParseColor is for package-level constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseLegacyRGB decodes the Java-style signed 32-bit ARGB integer the
// legacy tool stores in the properties file. Undecodable input falls
// back to black, matching the legacy reader.
func ParseLegacyRGB(s string) Color {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return DefaultForeground
	}
	if n < 0 {
		n += 1 << 32
	}
	r := uint8(n >> 16)
	g := uint8(n >> 8)
	b := uint8(n)
	return Color{c: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, ok: true}
}

// LegacyRGB encodes the color as the signed 32-bit ARGB integer string
// (alpha forced to 255) used by the legacy properties format.
func (c Color) LegacyRGB() string {
	r, g, b := c.c.RGB255()
	n := int64(255)<<24 | int64(r)<<16 | int64(g)<<8 | int64(b)
	if n >= 1<<31 {
		n -= 1 << 32
	}
	return strconv.FormatInt(n, 10)
}

// Hex renders "#rrggbb".
func (c Color) Hex() string {
	return c.c.Hex()
}

// XTermSpec renders the rgb:rr/gg/bb form xterm's -fg/-bg flags take.
func (c Color) XTermSpec() string {
	r, g, b := c.c.RGB255()
	return fmt.Sprintf("rgb:%02x/%02x/%02x", r, g, b)
}

// AppleScriptTriple renders the {r, g, b} triple Terminal.app expects,
// with each component scaled to 0..65535.
func (c Color) AppleScriptTriple() string {
	r, g, b := c.c.RGB255()
	return fmt.Sprintf("{%d, %d, %d}", int(r)*257, int(g)*257, int(b)*257)
}

func (c Color) String() string {
	return c.Hex()
}
