// Package pkg provides the libraries behind the identicon generator.
//
// # Overview
//
// An identicon is a 5×5 symmetric avatar derived from an identifier. The same
// identifier always produces the same image. The pkg directory is organized
// into three areas:
//
//  1. Domain logic: [digest], [pattern], [hsl], [identicon], [render]
//  2. Infrastructure: [cache], [observability], [errors], [buildinfo]
//  3. Orchestration: [pipeline]
//
// # Architecture
//
// The data flow for one identifier:
//
//	identifier (UUID, username, email, ...)
//	         ↓
//	    [digest] package (22 hex characters)
//	         ↓               ↓
//	    chars 0-14       chars 15-21
//	         ↓               ↓
//	    [pattern]        [hsl] (HSL → RGB)
//	         ↓               ↓
//	    [identicon] (5×5 color grid)
//	         ↓
//	    [render] package (scaled PNG)
//
// # Quick Start
//
//	icon, err := identicon.New("octocat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(icon.Color().Hex()) // #be605f
//
//	png, err := identicon.NewGenerator().Generate("octocat", 420)
//
// # Main Packages
//
// [digest] hashes identifiers. Anything that parses as a UUID is hashed in its
// canonical lowercase hyphenated form, so "6BA7B810-9DAD-..." and
// "{6ba7b810-9dad-...}" share an avatar.
//
// [pattern] turns 15 hex characters into the 5×5 grid: one bit per nibble
// (even nibbles are filled), mirrored into five rows, then rotated clockwise.
//
// [hsl] turns 7 hex characters into a hue, saturation and luminance and
// converts the result to 8-bit RGB.
//
// [render] scales the 5×5 grid to the requested size and encodes it as PNG.
//
// [cache] stores rendered PNGs in files, memory (LRU) or Redis.
//
// [pipeline] ties generation and caching together for the CLI and the HTTP
// server.
//
// [digest]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/digest
// [pattern]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/pattern
// [hsl]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/hsl
// [identicon]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/identicon
// [render]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/buildinfo
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/identicon/pkg/pipeline
package pkg
