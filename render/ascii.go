// Package render scales an image down to terminal proportions and expresses
// its brightness with a character ramp.
package render

import (
	"image"
	"log/slog"
	"strings"

	"asciify/palette"
)

// Render converts an image into a block of text: one line per pixel row of
// the scaled image, each line exactly width characters and newline
// terminated. Rows come out top to bottom, pixels left to right.
func Render(logger *slog.Logger, img image.Image, width int, ramp palette.Palette) string {
	gray := grayscale(resize(logger, img, width))

	bounds := gray.Bounds()
	var b strings.Builder
	b.Grow((bounds.Dx() + 1) * bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b.WriteRune(ramp.Char(gray.GrayAt(x, y).Y))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
