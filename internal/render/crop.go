package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// tightCrop crops the image to the smallest rectangle containing every
// pixel that differs from the background, grown by pad pixels and clamped
// to the canvas. A canvas with no foreground comes back unchanged.
func tightCrop(img *image.RGBA, background color.Color, pad int) *image.RGBA {
	bounds := img.Bounds()
	bg := color.RGBAModel.Convert(background).(color.RGBA)

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y) == bg {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if !found {
		return img
	}

	crop := image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad).Intersect(bounds)

	dst := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(dst, dst.Bounds(), img, crop.Min, draw.Src)
	return dst
}
