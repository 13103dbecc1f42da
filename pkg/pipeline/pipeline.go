// Package pipeline runs identicon generation with caching.
//
// The CLI and the HTTP server both go through a [Runner] so that option
// defaults, cache keys, and logging stay identical across entry points.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Identifier: "octocat",
//	    Size:       128,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("octocat.png", result.PNG, 0o644)
//
// Several identifiers can be rendered concurrently with [Runner.ExecuteBatch].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/identicon"
	"github.com/matzehuels/identicon/pkg/render"
)

const (
	// DefaultSize is the output edge length when none is requested.
	DefaultSize = identicon.DefaultSize

	// MaxSize bounds the output edge length.
	MaxSize = 4096
)

// Options describes one identicon to render. The zero value of every field
// except Identifier selects a default.
type Options struct {
	Identifier string `json:"identifier"`
	Size       int    `json:"size,omitempty"`
	Filter     string `json:"filter,omitempty"`
	Scaler     string `json:"scaler,omitempty"`
	Algorithm  string `json:"algorithm,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result is the output of one pipeline run.
type Result struct {
	Identifier string
	Digest     digest.Digest
	PNG        []byte
	Stats      Stats
	CacheHit   bool
}

// Stats holds timing and size information.
type Stats struct {
	GenerateTime time.Duration
	Bytes        int
}

// ValidateAndSetDefaults checks the options and fills in defaults. Names are
// normalized to lowercase. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateIdentifier(o.Identifier); err != nil {
		return err
	}

	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Size < 0 || o.Size > MaxSize {
		return errors.New(errors.ErrCodeInvalidInput, "size must be between 1 and %d (got %d)", MaxSize, o.Size)
	}

	f, err := render.ParseFilter(o.Filter)
	if err != nil {
		return err
	}
	o.Filter = string(f)

	s, err := render.ParseScaler(o.Scaler)
	if err != nil {
		return err
	}
	o.Scaler = string(s)

	a, err := digest.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return err
	}
	o.Algorithm = string(a)

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// AvatarKeyOpts returns the cache key options for these render settings.
func (o *Options) AvatarKeyOpts() cache.AvatarKeyOpts {
	return cache.AvatarKeyOpts{
		Size:      o.Size,
		Filter:    o.Filter,
		Scaler:    o.Scaler,
		Algorithm: o.Algorithm,
	}
}

// Encoder builds the PNG encoder selected by Filter and Scaler.
func (o *Options) Encoder() render.Encoder {
	f := render.Filter(o.Filter)
	if render.Scaler(o.Scaler) == render.ScalerXDraw {
		return render.NewPNGEncoder(render.WithScaler(render.XDrawScaler(f)))
	}
	return render.NewPNGEncoder(render.WithFilter(f))
}

// Generator builds an identicon.Generator for these options.
func (o *Options) Generator() *identicon.Generator {
	return identicon.NewGenerator(
		identicon.WithEncoder(o.Encoder()),
		identicon.WithAlgorithm(digest.Algorithm(o.Algorithm)),
		identicon.WithLogger(o.Logger),
	)
}
