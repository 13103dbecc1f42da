package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/pipeline"
	"github.com/matzehuels/identicon/pkg/render"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	size      int
	output    string
	noCache   bool
	refresh   bool
	filter    string
	scaler    string
	algorithm string
	jobs      int
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [identifier...]",
		Short: "Render identicons as PNG files",
		Long: `Render one PNG per identifier. Without arguments a random UUIDv4 is used.

By default files are written to the current directory and named after the
identifier. --output takes a directory, or a .png file when exactly one
identifier is given.`,
		Example: `  identicon generate octocat
  identicon generate 6ba7b810-9dad-11d1-80b4-00c04fd430c8 -s 128 -o avatars/
  identicon generate alice bob carol --jobs 4 --filter lanczos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", 0, "edge length in pixels (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "resampling filter: "+filterNames())
	cmd.Flags().StringVar(&opts.scaler, "scaler", "", "resize backend: imaging, xdraw")
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "", "digest algorithm: sha256, blake3")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "concurrent renders (default GOMAXPROCS)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, ids []string, opts generateOpts) error {
	logger := loggerFromContext(ctx)
	opts = c.withConfigDefaults(opts)

	if len(ids) == 0 {
		ids = []string{uuid.NewString()}
		logger.Debug("no identifier given, using a random UUID", "identifier", ids[0])
	}
	if unique := dedupe(ids); len(unique) != len(ids) {
		logger.Debug("skipping repeated identifiers", "given", len(ids), "unique", len(unique))
		ids = unique
	}
	if err := validateOutput(opts.output, len(ids)); err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	batch := make([]pipeline.Options, len(ids))
	for i, id := range ids {
		batch[i] = pipeline.Options{
			Identifier: id,
			Size:       opts.size,
			Filter:     opts.filter,
			Scaler:     opts.scaler,
			Algorithm:  opts.algorithm,
			Refresh:    opts.refresh,
			Logger:     logger,
		}
	}

	prog := newProgress(logger)
	var spinner *Spinner
	if len(ids) > 1 {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d identicons...", len(ids)))
		spinner.Start()
	}
	results, err := runner.ExecuteBatch(ctx, batch, opts.jobs)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	paths, err := outputPaths(opts.output, results)
	if err != nil {
		return err
	}
	for i, res := range results {
		if err := os.WriteFile(paths[i], res.PNG, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", paths[i])
		}
		printSuccess("%s", StyleHighlight.Render(res.Identifier))
		printFile(paths[i])
		printStats(batch[i].Size, res.Stats, res.CacheHit)
	}

	prog.done(fmt.Sprintf("Generated %d identicon(s)", len(results)))
	return nil
}

// withConfigDefaults fills unset flags from the configuration file.
func (c *CLI) withConfigDefaults(opts generateOpts) generateOpts {
	cfg := c.config()
	if opts.size == 0 {
		opts.size = cfg.Size
	}
	if opts.filter == "" {
		opts.filter = cfg.Filter
	}
	if opts.scaler == "" {
		opts.scaler = cfg.Scaler
	}
	if opts.algorithm == "" {
		opts.algorithm = cfg.Algorithm
	}
	return opts
}

// validateOutput rejects a .png output path shared by several identifiers.
func validateOutput(output string, n int) error {
	if output == "" {
		return nil
	}
	if err := errors.ValidatePath(output); err != nil {
		return err
	}
	if isPNGPath(output) && n > 1 {
		return errors.New(errors.ErrCodeInvalidPath,
			"output %q names a single file but %d identifiers were given", output, n)
	}
	return nil
}

// outputPaths resolves the file each result is written to, creating
// directories as needed.
func outputPaths(output string, results []*pipeline.Result) ([]string, error) {
	if isPNGPath(output) {
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", filepath.Dir(output))
		}
		return []string{output}, nil
	}

	dir := output
	if dir == "" {
		dir = "."
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
	}

	paths := make([]string, len(results))
	taken := make(map[string]bool, len(results))
	for i, res := range results {
		name := fileName(res.Identifier, res.Digest)
		if taken[strings.ToLower(name)] {
			name = uniqueName(res.Digest.String(), taken)
		}
		taken[strings.ToLower(name)] = true
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// uniqueName returns base.png, or base-N.png for the smallest N >= 2 not in
// taken. Keys of taken are lowercase so case-insensitive filesystems are safe.
func uniqueName(base string, taken map[string]bool) string {
	name := base + ".png"
	for n := 2; taken[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s-%d.png", base, n)
	}
	return name
}

// dedupe drops repeated identifiers, keeping the first occurrence.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func isPNGPath(p string) bool {
	return strings.EqualFold(filepath.Ext(p), ".png")
}

// fileName derives a file name from identifier, keeping letters, digits and
// "._-@". Identifiers with nothing usable are named after their digest.
func fileName(identifier string, d digest.Digest) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-', r == '@':
			return r
		}
		return '_'
	}, strings.TrimSpace(identifier))
	name = strings.TrimLeft(name, "._")
	if name == "" {
		name = d.String()
	}
	return name + ".png"
}

func filterNames() string {
	names := make([]string, len(render.Filters))
	for i, f := range render.Filters {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
