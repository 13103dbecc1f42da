// Package digest derives the fixed-length hex digest that drives an identicon.
//
// A [Digest] is 22 hexadecimal characters. The first 15 characters select the
// pattern and the remaining 7 select the color:
//
//	d, _ := digest.FromIdentifier("octocat")
//	d.PatternSlice() // 15 chars, fed to pattern.New
//	d.ColorSlice()   // 7 chars, fed to hsl.NewRGB
//
// Identifiers that parse as UUIDs are canonicalized before hashing, so
// "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}" and
// "6ba7b810-9dad-11d1-80b4-00c04fd430c8" produce the same digest.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"lukechampine.com/blake3"

	"github.com/matzehuels/identicon/pkg/errors"
)

// Digest layout.
const (
	Length        = 22
	PatternLength = 15
	ColorLength   = Length - PatternLength
)

// Algorithm selects the hash function behind a digest.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	BLAKE3 Algorithm = "blake3"
)

// DefaultAlgorithm is used when no algorithm is given.
const DefaultAlgorithm = SHA256

// ParseAlgorithm maps a configuration name to an Algorithm. The empty string
// selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultAlgorithm, nil
	case SHA256:
		return SHA256, nil
	case BLAKE3:
		return BLAKE3, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown digest algorithm %q (want sha256 or blake3)", name)
}

func (a Algorithm) sum(data []byte) []byte {
	if a == BLAKE3 {
		h := blake3.Sum256(data)
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}

// Digest is a validated 22-character lowercase hex string.
type Digest string

// Option configures FromIdentifier.
type Option func(*options)

type options struct {
	algorithm Algorithm
}

// WithAlgorithm selects the hash function. The empty value selects
// DefaultAlgorithm; FromIdentifier rejects anything other than SHA256 and
// BLAKE3.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		if a != "" {
			o.algorithm = a
		}
	}
}

// FromIdentifier hashes identifier into a Digest. Any string is accepted,
// including the empty string; the only failure is an unknown algorithm.
func FromIdentifier(identifier string, opts ...Option) (Digest, error) {
	o := options{algorithm: DefaultAlgorithm}
	for _, opt := range opts {
		opt(&o)
	}
	if o.algorithm != SHA256 && o.algorithm != BLAKE3 {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"unknown digest algorithm %q (want sha256 or blake3)", o.algorithm)
	}

	sum := o.algorithm.sum([]byte(Canonical(identifier)))
	return Digest(hex.EncodeToString(sum)[:Length]), nil
}

// FromUUID hashes the canonical form of u.
func FromUUID(u uuid.UUID, opts ...Option) (Digest, error) {
	return FromIdentifier(u.String(), opts...)
}

// Canonical returns the form of identifier that is hashed: the lowercase,
// hyphenated string for anything uuid.Parse accepts, identifier otherwise.
func Canonical(identifier string) string {
	if u, err := uuid.Parse(strings.TrimSpace(identifier)); err == nil {
		return u.String()
	}
	return identifier
}

// Parse validates s as a digest. Length is checked before the charset. The
// result is lowercased.
func Parse(s string) (Digest, error) {
	if err := errors.ValidateHex("digest", s, Length); err != nil {
		return "", err
	}
	return Digest(strings.ToLower(s)), nil
}

// String implements fmt.Stringer.
func (d Digest) String() string {
	return string(d)
}

// PatternSlice returns characters [0, 15).
func (d Digest) PatternSlice() string {
	return string(d[:PatternLength])
}

// ColorSlice returns characters [15, 22).
func (d Digest) ColorSlice() string {
	return string(d[PatternLength:Length])
}
