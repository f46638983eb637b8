package render

import (
	"image"

	"github.com/disintegration/gift"
)

func grayscale(img image.Image) *image.Gray {
	g := gift.New(gift.Grayscale())
	dest := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dest, img)

	return dest
}
