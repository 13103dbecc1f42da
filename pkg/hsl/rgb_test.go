package hsl

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/identicon/pkg/errors"
)

func TestNewRGB(t *testing.T) {
	tests := []struct {
		pattern string
		want    [3]int
	}{
		{"0000000", [3]int{0, 0, 0}},
		{"fffffff", [3]int{255, 255, 255}},
		{"8008080", [3]int{64, 191, 191}},
		{"abcdef1", [3]int{229, 228, 253}},
		{"1234567", [3]int{130, 98, 75}},
		{"fff8040", [3]int{96, 31, 31}},
		{"FFF8040", [3]int{96, 31, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			rgb, err := NewRGB(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rgb.Tuple())

			parsed, err := FromPattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, rgb, FromHSL(parsed))
		})
	}
}

func TestNewRGBInvalidLength(t *testing.T) {
	for _, pattern := range []string{"", "123", "12345678"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := NewRGB(pattern)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
			assert.ErrorContains(t, err, "must be exactly 7 characters")
		})
	}

	_, err := NewRGB("123")
	assert.ErrorContains(t, err, "(got 3)")
}

func TestNewRGBInvalidChars(t *testing.T) {
	_, err := NewRGB("00g0000")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestRGBAccessorsAgree(t *testing.T) {
	rgb, err := NewRGB("1234567")
	require.NoError(t, err)

	tuple := rgb.Tuple()
	assert.Equal(t, tuple[0], rgb.Red())
	assert.Equal(t, tuple[1], rgb.Green())
	assert.Equal(t, tuple[2], rgb.Blue())
	assert.Equal(t, tuple[:], rgb.Slice())

	n := rgb.NRGBA()
	assert.Equal(t, [3]int{int(n.R), int(n.G), int(n.B)}, tuple)
	assert.EqualValues(t, 0xFF, n.A)
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#40bfbf", RGB{R: 64, G: 191, B: 191}.Hex())
	assert.Equal(t, "#ffffff", White.Hex())
}

// The conversion truncates, so it may sit at most one step below a rounding
// implementation such as go-colorful's.
func TestNewRGBAgreesWithColorful(t *testing.T) {
	for _, pattern := range []string{"8008080", "abcdef1", "1234567", "fff8040", "5a3c2d1"} {
		t.Run(pattern, func(t *testing.T) {
			c, err := FromPattern(pattern)
			require.NoError(t, err)
			rgb, err := NewRGB(pattern)
			require.NoError(t, err)

			ref := colorful.Hsl(c.Hue, c.Saturation/100, c.Luminance/100)
			r, g, b := ref.RGB255()
			assert.InDelta(t, float64(r), float64(rgb.R), 1)
			assert.InDelta(t, float64(g), float64(rgb.G), 1)
			assert.InDelta(t, float64(b), float64(rgb.B), 1)
		})
	}
}
