package hsl

import (
	"math"
	"strconv"

	"github.com/matzehuels/identicon/pkg/errors"
)

// Component bounds of an HSL color.
const (
	MaxHue        = 360
	MaxSaturation = 100
	MaxLuminance  = 100
)

// Sub-field layout of a color pattern.
const (
	hueDigits        = 3
	saturationDigits = 2
	luminanceDigits  = 2

	// PatternLength is the number of hex characters in a color pattern.
	PatternLength = hueDigits + saturationDigits + luminanceDigits

	maxHueValue       = 0xFFF
	maxComponentValue = 0xFF
)

// HSL is a hue/saturation/luminance triple. Values are not rounded.
type HSL struct {
	Hue        float64 // [0, 360]
	Saturation float64 // [0, 100]
	Luminance  float64 // [0, 100]
}

// FromPattern splits a 7-character hex pattern into its hue, saturation and
// luminance sub-fields and scales each one linearly to its range.
//
// Length is normally validated by the caller ([NewRGB]); FromPattern still
// returns an INVALID_INPUT error rather than panicking on a short pattern.
func FromPattern(pattern string) (HSL, error) {
	if len(pattern) < PatternLength {
		return HSL{}, errors.New(errors.ErrCodeInvalidInput,
			"color pattern must be at least %d characters long (got %d)", PatternLength, len(pattern))
	}

	hue, err := calculateHue(pattern[:hueDigits])
	if err != nil {
		return HSL{}, err
	}
	saturation, err := calculatePercent(pattern[hueDigits : hueDigits+saturationDigits])
	if err != nil {
		return HSL{}, err
	}
	luminance, err := calculatePercent(pattern[hueDigits+saturationDigits : PatternLength])
	if err != nil {
		return HSL{}, err
	}

	return HSL{Hue: hue, Saturation: saturation, Luminance: luminance}, nil
}

// calculateHue scales a 3-digit hex value to [0, 360].
func calculateHue(hex string) (float64, error) {
	v, err := parseHex(hex)
	if err != nil {
		return 0, err
	}
	return float64(v) / maxHueValue * MaxHue, nil
}

// calculatePercent scales a 2-digit hex value to [0, 100].
func calculatePercent(hex string) (float64, error) {
	v, err := parseHex(hex)
	if err != nil {
		return 0, err
	}
	return float64(v) / maxComponentValue * 100, nil
}

func parseHex(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"color pattern must only contain hexadecimal characters (0-9, a-f)")
	}
	return v, nil
}

// RGB converts the color to unit-interval red, green and blue values using
// the HLS model: hue is divided by 360, saturation and luminance by 100.
func (c HSL) RGB() (r, g, b float64) {
	return hlsToRGB(c.Hue/MaxHue, c.Luminance/MaxLuminance, c.Saturation/MaxSaturation)
}

const (
	oneThird = 1.0 / 3.0
	oneSixth = 1.0 / 6.0
	twoThird = 2.0 / 3.0
)

func hlsToRGB(h, l, s float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hueToRGB(m1, m2, h+oneThird), hueToRGB(m1, m2, h), hueToRGB(m1, m2, h-oneThird)
}

func hueToRGB(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < oneSixth:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < twoThird:
		return m1 + (m2-m1)*(twoThird-hue)*6
	}
	return m1
}
