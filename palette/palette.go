// Package palette holds character ramps ordered from visually densest to
// sparsest, used to express pixel brightness as text.
package palette

import (
	"fmt"
	"os"
	"strings"
)

// Palette is an ordered character ramp. Index 0 renders the darkest pixels,
// the last index the lightest.
type Palette []rune

var builtin = map[string]string{
	"classic": "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ",
	"blocks":  "█▓▒░ ",
	"minimal": "@%#*+=-:. ",
}

// Load resolves a ramp by built-in name, falling back to reading a custom
// ramp from a file at that path. A ramp needs at least two characters to
// express any contrast.
func Load(name string) (Palette, error) {
	if ramp, ok := builtin[name]; ok {
		return Palette(ramp), nil
	}

	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q and could not read it as a file: %w", name, err)
	}

	ramp := strings.TrimRight(string(buf), "\r\n")
	pal := Palette(ramp)
	if len(pal) < 2 {
		return nil, fmt.Errorf("palette file %q holds %d characters, need at least 2", name, len(pal))
	}
	return pal, nil
}

// Names lists the built-in ramps for help and error messages.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	return names
}

// Reversed returns a copy of the ramp with the density order flipped, so
// light pixels map to dense characters.
func (p Palette) Reversed() Palette {
	rev := make(Palette, len(p))
	for i, c := range p {
		rev[len(p)-1-i] = c
	}
	return rev
}

// Char maps a luminance value to its ramp character. The index
// lum*(len-1)/255 stays within [0, len-1] for the full luminance range and
// never decreases as luminance grows.
func (p Palette) Char(lum uint8) rune {
	return p[int(lum)*(len(p)-1)/255]
}
