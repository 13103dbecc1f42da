// Package identicon derives GitHub-style identicons from identifiers.
//
// # Overview
//
// An identifier (a UUID or any string) is hashed into a 22-character hex
// [digest.Digest]. The digest is split in two:
//
//   - characters [0, 15) become a 5×5 symmetric bit pattern ([pattern.New])
//   - characters [15, 22) become an HSL color, converted to RGB ([hsl.NewRGB])
//
// The pattern is composited with the color over a white background and handed
// to a [render.Encoder], which produces a square PNG.
//
// # Usage
//
//	gen := identicon.NewGenerator()
//	png, err := gen.Generate("octocat", 128)
//
// Inspect the intermediate values without encoding:
//
//	icon, err := identicon.New("octocat")
//	fmt.Println(icon.Digest(), icon.Color().Hex())
//	fmt.Println(icon.Pattern())
//
// # Errors
//
// Malformed input is reported with [errors.ErrCodeInvalidInput]. Failures in
// the compositing or encoding stages are wrapped in
// [errors.ErrCodeGenerationFailed] with [errors.MsgApplyColorFailed] or
// [errors.MsgImageGenerationFailed] respectively.
//
// All functions in this package are deterministic, and a [Generator] is safe
// for concurrent use.
//
// [digest.Digest]: github.com/matzehuels/identicon/pkg/digest.Digest
// [pattern.New]: github.com/matzehuels/identicon/pkg/pattern.New
// [hsl.NewRGB]: github.com/matzehuels/identicon/pkg/hsl.NewRGB
// [render.Encoder]: github.com/matzehuels/identicon/pkg/render.Encoder
// [errors.ErrCodeInvalidInput]: github.com/matzehuels/identicon/pkg/errors.ErrCodeInvalidInput
// [errors.ErrCodeGenerationFailed]: github.com/matzehuels/identicon/pkg/errors.ErrCodeGenerationFailed
// [errors.MsgApplyColorFailed]: github.com/matzehuels/identicon/pkg/errors.MsgApplyColorFailed
// [errors.MsgImageGenerationFailed]: github.com/matzehuels/identicon/pkg/errors.MsgImageGenerationFailed
package identicon
