// Package hsl derives identicon colors from short hex patterns.
//
// A 7-character color pattern is split into three sub-fields:
//
//	chars[0:3] -> hue        (0x000-0xFFF scaled to [0, 360])
//	chars[3:5] -> saturation (0x00-0xFF scaled to [0, 100])
//	chars[5:7] -> luminance  (0x00-0xFF scaled to [0, 100])
//
// [FromPattern] performs that split and scaling. [NewRGB] validates the
// pattern, converts the HSL triple with the standard HLS to RGB algorithm and
// truncates each channel to an integer in [0, 255]. Truncation (not rounding)
// is part of the contract: the same pattern always yields the same bytes.
//
// # Example
//
//	rgb, err := hsl.NewRGB("8008080")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rgb.Tuple(), rgb.Hex())
package hsl
