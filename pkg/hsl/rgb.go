package hsl

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/identicon/pkg/errors"
)

// RGB is an 8-bit red/green/blue color.
type RGB struct {
	R, G, B uint8
}

// White is the background color of every identicon.
var White = RGB{R: 255, G: 255, B: 255}

// NewRGB derives an RGB color from a 7-character hex color pattern.
// The pattern must be exactly [PatternLength] characters; the error carries
// the observed length otherwise.
func NewRGB(pattern string) (RGB, error) {
	if err := errors.ValidateHexLength("color pattern", pattern, PatternLength); err != nil {
		return RGB{}, err
	}

	c, err := FromPattern(pattern)
	if err != nil {
		return RGB{}, err
	}
	return FromHSL(c), nil
}

// FromHSL converts an already parsed color to 8-bit channels.
func FromHSL(c HSL) RGB {
	r, g, b := c.RGB()
	return RGB{R: scale(r), G: scale(g), B: scale(b)}
}

// scale maps a unit-interval value to [0, 255] by truncation.
func scale(v float64) uint8 {
	f := math.Floor(v * 255)
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	}
	return uint8(f)
}

// Tuple returns the channels as (R, G, B).
func (c RGB) Tuple() [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// Slice returns the channels as a three-element slice, the shape accepted by
// pattern.ApplyColor.
func (c RGB) Slice() []int {
	t := c.Tuple()
	return t[:]
}

// Red returns the red channel.
func (c RGB) Red() int { return int(c.R) }

// Green returns the green channel.
func (c RGB) Green() int { return int(c.G) }

// Blue returns the blue channel.
func (c RGB) Blue() int { return int(c.B) }

// NRGBA returns the color as an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
