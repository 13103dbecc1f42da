package render

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/pattern"
)

// Encoder turns a color grid into a size×size image.
type Encoder interface {
	Encode(grid pattern.ColorGrid, size int) ([]byte, error)
}

// ToImage converts grid to a pattern.Size×pattern.Size opaque image. Row i of
// the grid becomes pixel row y=i.
func ToImage(grid pattern.ColorGrid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pattern.Size, pattern.Size))
	for y, row := range grid {
		for x, c := range row {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}

// PNGOption configures a PNGEncoder.
type PNGOption func(*PNGEncoder)

// WithFilter sets the imaging resampling filter (default NearestNeighbor).
func WithFilter(f Filter) PNGOption {
	return func(e *PNGEncoder) { e.filter = f }
}

// WithScaler resizes with an x/image scaler instead of imaging.
func WithScaler(s draw.Scaler) PNGOption {
	return func(e *PNGEncoder) { e.scaler = s }
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) PNGOption {
	return func(e *PNGEncoder) { e.compression = level }
}

// PNGEncoder resizes and encodes grids as PNG. The zero value is not usable;
// construct with NewPNGEncoder. A PNGEncoder is safe for concurrent use.
type PNGEncoder struct {
	filter      Filter
	scaler      draw.Scaler
	compression png.CompressionLevel
}

// NewPNGEncoder returns an encoder with the given options applied over the
// defaults.
func NewPNGEncoder(opts ...PNGOption) *PNGEncoder {
	e := &PNGEncoder{
		filter:      DefaultFilter,
		compression: png.DefaultCompression,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode implements Encoder.
func (e *PNGEncoder) Encode(grid pattern.ColorGrid, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "image size must be positive (got %d)", size)
	}

	img := e.resize(ToImage(grid), size)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(e.compression)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (e *PNGEncoder) resize(src *image.NRGBA, size int) image.Image {
	if e.scaler != nil {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		e.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return dst
	}
	return imaging.Resize(src, size, size, e.filter.resample())
}
