package identicon

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/pattern"
	"github.com/matzehuels/identicon/pkg/render"
)

// DefaultSize is the edge length in pixels used when no size is requested.
const DefaultSize = 420

// colorizer composites a pattern with a color. Tests replace it to inject
// failures.
type colorizer func(p *pattern.Pattern, rgb []int) (pattern.ColorGrid, error)

// Option configures a Generator.
type Option func(*Generator)

// WithEncoder replaces the PNG encoder.
func WithEncoder(enc render.Encoder) Option {
	return func(g *Generator) {
		if enc != nil {
			g.encoder = enc
		}
	}
}

// WithDefaultSize sets the size used when Generate is called with size <= 0.
func WithDefaultSize(size int) Option {
	return func(g *Generator) {
		if size > 0 {
			g.defaultSize = size
		}
	}
}

// WithAlgorithm selects the digest algorithm.
func WithAlgorithm(a digest.Algorithm) Option {
	return func(g *Generator) { g.algorithm = a }
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// Generator renders identicons to image bytes. Its configuration is fixed at
// construction, so one Generator can serve many goroutines.
type Generator struct {
	encoder     render.Encoder
	defaultSize int
	algorithm   digest.Algorithm
	logger      *log.Logger
	colorize    colorizer
}

// NewGenerator returns a Generator that encodes PNGs with render.PNGEncoder
// at DefaultSize unless options say otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		encoder:     render.NewPNGEncoder(),
		defaultSize: DefaultSize,
		algorithm:   digest.DefaultAlgorithm,
		logger:      log.NewWithOptions(io.Discard, log.Options{}),
		colorize:    (*pattern.Pattern).ApplyColor,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DefaultSize returns the size used for non-positive requests.
func (g *Generator) DefaultSize() int { return g.defaultSize }

// Algorithm returns the digest algorithm.
func (g *Generator) Algorithm() digest.Algorithm { return g.algorithm }

// Identicon derives the Identicon for identifier with the generator's digest
// algorithm.
func (g *Generator) Identicon(identifier string) (*Identicon, error) {
	return New(identifier, digest.WithAlgorithm(g.algorithm))
}

// Generate derives the identicon for identifier and encodes it as a
// size×size image. size <= 0 selects the default size.
func (g *Generator) Generate(identifier string, size int) ([]byte, error) {
	icon, err := g.Identicon(identifier)
	if err != nil {
		return nil, err
	}
	return g.Render(icon, size)
}

// Render encodes an already derived Identicon.
func (g *Generator) Render(icon *Identicon, size int) ([]byte, error) {
	if size <= 0 {
		size = g.defaultSize
	}
	start := time.Now()

	grid, err := g.colorize(icon.pattern, icon.color.Slice())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, errors.MsgApplyColorFailed)
	}

	data, err := g.encoder.Encode(grid, size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, errors.MsgImageGenerationFailed)
	}

	g.logger.Debug("generated identicon",
		"digest", icon.digest,
		"color", icon.color.Hex(),
		"size", size,
		"bytes", len(data),
		"duration", time.Since(start))
	return data, nil
}
