package render

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// cellAspect compensates for terminal glyphs being taller than wide, so the
// printed art keeps the source proportions.
const cellAspect = 0.55

func resize(logger *slog.Logger, img image.Image, width int) *image.RGBA {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	height := int(math.Round(float64(width) * srcHeight / srcWidth * cellAspect))
	if height < 1 {
		height = 1
	}

	logger.Info("resizing", "width", width, "height", height)
	dest := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dest, dest.Bounds(), img, srcBounds, draw.Over, nil)

	return dest
}
