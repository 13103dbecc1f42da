package render

import (
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/matzehuels/identicon/pkg/errors"
)

// Filter names a resampling filter.
type Filter string

// Supported filters.
const (
	NearestNeighbor Filter = "nearest"
	Box             Filter = "box"
	Linear          Filter = "linear"
	CatmullRom      Filter = "catmullrom"
	Lanczos         Filter = "lanczos"
)

// DefaultFilter is used when no filter is configured.
const DefaultFilter = NearestNeighbor

// Filters lists every supported filter name, for flag help and completion.
var Filters = []Filter{NearestNeighbor, Box, Linear, CatmullRom, Lanczos}

// ParseFilter maps a name to a Filter. The empty string selects DefaultFilter.
func ParseFilter(name string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return DefaultFilter, nil
	}
	for _, known := range Filters {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown resize filter %q", name)
}

func (f Filter) resample() imaging.ResampleFilter {
	switch f {
	case Box:
		return imaging.Box
	case Linear:
		return imaging.Linear
	case CatmullRom:
		return imaging.CatmullRom
	case Lanczos:
		return imaging.Lanczos
	}
	return imaging.NearestNeighbor
}

// Scaler names a resize backend.
type Scaler string

// Supported backends.
const (
	ScalerImaging Scaler = "imaging"
	ScalerXDraw   Scaler = "xdraw"
)

// ParseScaler maps a name to a Scaler. The empty string selects ScalerImaging.
func ParseScaler(name string) (Scaler, error) {
	switch s := Scaler(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return ScalerImaging, nil
	case ScalerImaging, ScalerXDraw:
		return s, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown scaler %q (want imaging or xdraw)", name)
}

// XDrawScaler returns the x/image interpolator closest to f. x/image has no
// Lanczos kernel, so Lanczos maps to CatmullRom.
func XDrawScaler(f Filter) draw.Scaler {
	switch f {
	case Box:
		return draw.ApproxBiLinear
	case Linear:
		return draw.BiLinear
	case CatmullRom, Lanczos:
		return draw.CatmullRom
	}
	return draw.NearestNeighbor
}
