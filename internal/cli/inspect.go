package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/identicon"
	"github.com/matzehuels/identicon/pkg/pattern"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "inspect <identifier>",
		Short: "Show how an identifier maps to its identicon",
		Long: `Print the digest of an identifier, the pattern and color slices taken from
it, the derived HSL and RGB colors, and a preview of the 5×5 grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if algorithm == "" {
				algorithm = c.config().Algorithm
			}
			return runInspect(cmd.Context(), args[0], algorithm)
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "", "digest algorithm: sha256, blake3")
	return cmd
}

func runInspect(ctx context.Context, identifier, algorithm string) error {
	alg, err := digest.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	icon, err := identicon.New(identifier, digest.WithAlgorithm(alg))
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("inspected identifier", "identifier", identifier, "digest", icon.Digest())

	d := icon.Digest()
	h := icon.HSL()
	rgb := icon.Color()
	p := icon.Pattern()

	fmt.Fprintln(output, StyleTitle.Render(identifier))
	if canonical := digest.Canonical(identifier); canonical != identifier {
		printKeyValue("Canonical", canonical)
	}
	printKeyValue("Algorithm", string(alg))
	printKeyValue("Digest", d.String())
	printKeyValue("Pattern", d.PatternSlice())
	printKeyValue("Color", d.ColorSlice())
	printKeyValue("HSL", fmt.Sprintf("%.2f°, %.2f%%, %.2f%%", h.Hue, h.Saturation, h.Luminance))
	printKeyValue("RGB", fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B))
	printKeyValue("Hex", rgb.Hex())
	printKeyValue("Filled", fmt.Sprintf("%d/%d", p.Filled(), pattern.Size*pattern.Size))
	printNewline()
	printGrid(p, rgb)
	printNewline()
	printNextStep("Render it", fmt.Sprintf("%s generate %q", appName, identifier))
	return nil
}
