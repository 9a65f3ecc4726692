// Package color provides the packed RGB colour value shared by curves,
// primitives and render styles.
//
// Colours are written the way the original scene code wrote them: as a
// 0xRRGGBB integer. They serialize as "#rrggbb" strings in JSON and TOML.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit colour packed as 0xRRGGBB.
type RGB uint32

// Palette used by the built-in scenes.
const (
	Background RGB = 0x111111
	Axis       RGB = 0xaaaaaa
	White      RGB = 0xffffff
	Grid       RGB = 0x444444
	GridMinor  RGB = 0x222222
	GammaRay   RGB = 0x00ff88
	Density    RGB = 0xff5566
	Neutron    RGB = 0x55aaff
)

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// RGBA implements image/color.Color. The colour is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the colour as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// String implements fmt.Stringer.
func (c RGB) String() string { return c.Hex() }

// ParseHex parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h) != 6 {
		return 0, fmt.Errorf("invalid colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return RGB(v), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
