// Package render turns a composited identicon grid into image bytes.
//
// # Overview
//
// The identicon core produces a [pattern.ColorGrid]: a 5×5 matrix of RGB
// cells. This package supplies the codec that the core treats as an external
// collaborator:
//
//   - [ToImage] converts the grid to a 5×5 opaque [image.NRGBA]
//   - [PNGEncoder] resizes that image to the requested square size and
//     encodes it as PNG
//
// # Resizing
//
// Resizing uses github.com/disintegration/imaging by default. The resampling
// filter is selected with [WithFilter]; [NearestNeighbor] keeps the blocky
// identicon look and is the default.
//
//	enc := render.NewPNGEncoder(render.WithFilter(render.NearestNeighbor))
//	png, err := enc.Encode(grid, 420)
//
// [WithScaler] swaps in a golang.org/x/image/draw scaler instead, and
// [XDrawScaler] maps a [Filter] to the closest x/image interpolator.
//
// # Encoder
//
// Anything satisfying [Encoder] can replace [PNGEncoder], which is how tests
// inject codec failures.
//
// [pattern.ColorGrid]: github.com/matzehuels/identicon/pkg/pattern.ColorGrid
package render
