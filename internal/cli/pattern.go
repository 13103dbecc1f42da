package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/hsl"
	"github.com/matzehuels/identicon/pkg/pattern"
)

// patternCommand creates the pattern debugging command.
func (c *CLI) patternCommand() *cobra.Command {
	var rgbFlag string

	cmd := &cobra.Command{
		Use:   "pattern <hex>",
		Short: "Debug the grid built from a 15-character hex pattern",
		Long: `Show the mirrored grid and the final rotated grid for a 15-character hex
pattern. Even nibbles become filled cells. With --rgb the grid is colored.`,
		Example: `  identicon pattern a6658157f0df839
  identicon pattern a6658157f0df839 --rgb 190,96,95`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPattern(cmd.Context(), args[0], rgbFlag)
		},
	}

	cmd.Flags().StringVar(&rgbFlag, "rgb", "", "fill color as r,g,b")
	return cmd
}

func runPattern(ctx context.Context, hex, rgbFlag string) error {
	p, err := pattern.New(hex)
	if err != nil {
		return err
	}

	fill := hsl.RGB{}
	var cells *pattern.ColorGrid
	if rgbFlag != "" {
		rgb, err := pattern.ParseRGB(rgbFlag)
		if err != nil {
			return err
		}
		grid, err := p.ApplyColor(rgb)
		if err != nil {
			return err
		}
		fill = hsl.RGB{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}
		cells = &grid
	}
	loggerFromContext(ctx).Debug("built pattern", "hex", hex, "filled", p.Filled())

	printInfo("Mirrored")
	printText(p.Mirrored().String())
	printNewline()
	printInfo("Rotated")
	printText(p.Grid().String())
	printNewline()
	printGrid(p, fill)
	printDetail("%d of %d cells filled", p.Filled(), pattern.Size*pattern.Size)

	if cells != nil {
		printNewline()
		printInfo("Colors")
		printText(formatColorGrid(*cells))
	}
	return nil
}

// formatColorGrid lists every cell as an "r,g,b" triple, one row per line.
func formatColorGrid(grid pattern.ColorGrid) string {
	rows := make([]string, 0, pattern.Size)
	for _, row := range grid.Values() {
		cells := make([]string, 0, pattern.Size)
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%3d,%3d,%3d", v[0], v[1], v[2]))
		}
		rows = append(rows, strings.Join(cells, "  "))
	}
	return strings.Join(rows, "\n")
}
