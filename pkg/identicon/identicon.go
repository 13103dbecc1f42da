package identicon

import (
	"github.com/google/uuid"

	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/hsl"
	"github.com/matzehuels/identicon/pkg/pattern"
)

// Identicon holds every value derived from one identifier.
type Identicon struct {
	digest  digest.Digest
	pattern *pattern.Pattern
	hsl     hsl.HSL
	color   hsl.RGB
}

// New derives an Identicon from identifier.
func New(identifier string, opts ...digest.Option) (*Identicon, error) {
	d, err := digest.FromIdentifier(identifier, opts...)
	if err != nil {
		return nil, err
	}
	return FromDigest(d)
}

// FromUUID derives an Identicon from the canonical form of u.
func FromUUID(u uuid.UUID, opts ...digest.Option) (*Identicon, error) {
	d, err := digest.FromUUID(u, opts...)
	if err != nil {
		return nil, err
	}
	return FromDigest(d)
}

// FromDigest builds an Identicon from an existing digest. d is revalidated,
// so a hand-built Digest with bad characters is rejected here.
func FromDigest(d digest.Digest) (*Identicon, error) {
	d, err := digest.Parse(string(d))
	if err != nil {
		return nil, err
	}

	p, err := pattern.New(d.PatternSlice())
	if err != nil {
		return nil, err
	}
	c, err := hsl.FromPattern(d.ColorSlice())
	if err != nil {
		return nil, err
	}

	return &Identicon{digest: d, pattern: p, hsl: c, color: hsl.FromHSL(c)}, nil
}

// Digest returns the 22-character digest.
func (i *Identicon) Digest() digest.Digest { return i.digest }

// Pattern returns the bit pattern.
func (i *Identicon) Pattern() *pattern.Pattern { return i.pattern }

// HSL returns the unrounded color before RGB conversion.
func (i *Identicon) HSL() hsl.HSL { return i.hsl }

// Color returns the foreground color.
func (i *Identicon) Color() hsl.RGB { return i.color }

// Grid composites the pattern with the foreground color.
func (i *Identicon) Grid() (pattern.ColorGrid, error) {
	return i.pattern.ApplyColor(i.color.Slice())
}
