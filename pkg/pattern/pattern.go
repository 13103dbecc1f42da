package pattern

import (
	"strconv"
	"strings"

	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/hsl"
)

// Geometry of the source cells and the final grid.
const (
	Width  = 5
	Height = 3
	Size   = 5

	// Length is the number of hex characters consumed by New.
	Length = Width * Height
)

// Grid is a Size×Size matrix of bits.
type Grid [Size][Size]uint8

// ColorGrid is a Size×Size matrix of colors.
type ColorGrid [Size][Size]hsl.RGB

// Pattern is an immutable identicon pattern.
type Pattern struct {
	mirrored Grid
	grid     Grid
}

// New builds a pattern from a 15-character hex string. Length is checked
// before the charset; both failures are INVALID_INPUT errors.
func New(hex string) (*Pattern, error) {
	if err := errors.ValidateHex("hex pattern", hex, Length); err != nil {
		return nil, err
	}

	mirrored := mirror(binaryRows(hex))
	return &Pattern{
		mirrored: mirrored,
		grid:     rotateClockwise(mirrored),
	}, nil
}

// binaryRows maps each nibble to 1 when even and 0 when odd, row-major.
// hex must already be validated.
func binaryRows(hex string) [Height][Width]uint8 {
	var rows [Height][Width]uint8
	for i := 0; i < Length; i++ {
		if nibble(hex[i])%2 == 0 {
			rows[i/Width][i%Width] = 1
		}
	}
	return rows
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// mirror stacks the rows as [row2, row1, row0, row1, row2].
func mirror(rows [Height][Width]uint8) Grid {
	return Grid{rows[2], rows[1], rows[0], rows[1], rows[2]}
}

// rotateClockwise rotates g by 90° clockwise.
func rotateClockwise(g Grid) Grid {
	var out Grid
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[i][j] = g[Size-1-j][i]
		}
	}
	return out
}

// Grid returns the final (rotated) pattern.
func (p *Pattern) Grid() Grid {
	return p.grid
}

// Mirrored returns the pattern before rotation. Rows 0/4 and 1/3 are equal.
func (p *Pattern) Mirrored() Grid {
	return p.mirrored
}

// At returns the bit at row, col of the final pattern.
func (p *Pattern) At(row, col int) uint8 {
	return p.grid[row][col]
}

// Filled returns the number of colored cells.
func (p *Pattern) Filled() int {
	n := 0
	for _, row := range p.grid {
		for _, v := range row {
			n += int(v)
		}
	}
	return n
}

// String renders the pattern as rows of '#' and '.'.
func (p *Pattern) String() string {
	return p.grid.String()
}

// String renders the grid as rows of '#' and '.'.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// ApplyColor composites the pattern with rgb. Cells set to 1 take rgb, cells
// set to 0 are white. rgb must hold exactly three values in [0, 255].
func (p *Pattern) ApplyColor(rgb []int) (ColorGrid, error) {
	c, err := validateRGB(rgb)
	if err != nil {
		return ColorGrid{}, err
	}

	var out ColorGrid
	for i, row := range p.grid {
		for j, v := range row {
			if v == 1 {
				out[i][j] = c
			} else {
				out[i][j] = hsl.White
			}
		}
	}
	return out, nil
}

func validateRGB(rgb []int) (hsl.RGB, error) {
	if len(rgb) != 3 {
		return hsl.RGB{}, errList()
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return hsl.RGB{}, errRange()
		}
	}
	return hsl.RGB{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}, nil
}

func errList() error {
	return errors.New(errors.ErrCodeInvalidInput, "rgb_pattern must be a list of 3 integers (R, G, B)")
}

func errRange() error {
	return errors.New(errors.ErrCodeInvalidInput, "Each RGB value must be an integer between 0 and 255")
}

// ParseRGB parses "r,g,b" text into a three-element slice. Non-integer
// channels (for example "3.14") are rejected, never truncated.
func ParseRGB(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errList()
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, errList()
	}

	rgb := make([]int, 0, 3)
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errRange()
		}
		rgb = append(rgb, v)
	}
	if _, err := validateRGB(rgb); err != nil {
		return nil, err
	}
	return rgb, nil
}

// Values returns the grid as nested integer triples.
func (g ColorGrid) Values() [Size][Size][3]int {
	var out [Size][Size][3]int
	for i, row := range g {
		for j, c := range row {
			out[i][j] = c.Tuple()
		}
	}
	return out
}
