package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/hsl"
	"github.com/matzehuels/identicon/pkg/pattern"
)

var teal = hsl.RGB{R: 64, G: 191, B: 191}

func testGrid(t *testing.T) pattern.ColorGrid {
	t.Helper()
	p, err := pattern.New("02468135790000f")
	require.NoError(t, err)
	grid, err := p.ApplyColor(teal.Slice())
	require.NoError(t, err)
	return grid
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	return img
}

func TestToImage(t *testing.T) {
	img := ToImage(testGrid(t))
	assert.Equal(t, image.Rect(0, 0, pattern.Size, pattern.Size), img.Bounds())

	// Last row of "02468135790000f" is "..#..".
	assert.Equal(t, hsl.White.NRGBA(), img.NRGBAAt(0, 4))
	assert.Equal(t, teal.NRGBA(), img.NRGBAAt(2, 4))
	assert.Equal(t, teal.NRGBA(), img.NRGBAAt(0, 0))
	assert.Equal(t, hsl.White.NRGBA(), img.NRGBAAt(1, 0))
}

func TestPNGEncoderSize(t *testing.T) {
	for _, size := range []int{1, 5, 128, 420} {
		data, err := NewPNGEncoder().Encode(testGrid(t), size)
		require.NoError(t, err)
		img := decode(t, data)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestPNGEncoderNearestKeepsBlocks(t *testing.T) {
	data, err := NewPNGEncoder().Encode(testGrid(t), 100)
	require.NoError(t, err)
	img := decode(t, data)

	toNRGBA := func(x, y int) [4]uint32 {
		r, g, b, a := img.At(x, y).RGBA()
		return [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
	}
	assert.Equal(t, [4]uint32{64, 191, 191, 255}, toNRGBA(10, 10))
	assert.Equal(t, [4]uint32{255, 255, 255, 255}, toNRGBA(30, 10))
	assert.Equal(t, [4]uint32{64, 191, 191, 255}, toNRGBA(50, 90))
	assert.Equal(t, [4]uint32{255, 255, 255, 255}, toNRGBA(10, 90))
}

func TestPNGEncoderDeterministic(t *testing.T) {
	enc := NewPNGEncoder()
	a, err := enc.Encode(testGrid(t), 64)
	require.NoError(t, err)
	b, err := enc.Encode(testGrid(t), 64)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPNGEncoderOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []PNGOption
	}{
		{"lanczos", []PNGOption{WithFilter(Lanczos)}},
		{"xdraw nearest", []PNGOption{WithScaler(XDrawScaler(NearestNeighbor))}},
		{"xdraw catmullrom", []PNGOption{WithScaler(XDrawScaler(CatmullRom))}},
		{"best compression", []PNGOption{WithCompression(png.BestCompression)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewPNGEncoder(tt.opts...).Encode(testGrid(t), 64)
			require.NoError(t, err)
			img := decode(t, data)
			assert.Equal(t, 64, img.Bounds().Dx())
		})
	}
}

func TestPNGEncoderInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := NewPNGEncoder().Encode(testGrid(t), size)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		want    Filter
		wantErr bool
	}{
		{"", NearestNeighbor, false},
		{"nearest", NearestNeighbor, false},
		{"Lanczos", Lanczos, false},
		{" box ", Box, false},
		{"bicubic", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.name)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScaler(t *testing.T) {
	s, err := ParseScaler("")
	require.NoError(t, err)
	assert.Equal(t, ScalerImaging, s)

	s, err = ParseScaler("XDraw")
	require.NoError(t, err)
	assert.Equal(t, ScalerXDraw, s)

	_, err = ParseScaler("gpu")
	assert.Error(t, err)
}
