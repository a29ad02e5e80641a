package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle
const kappa = 0.5522847498

// Circle returns a (2r+1)-pixel square image holding an antialiased filled
// circle centered on pixel (r, r). It covers that pixel's full width, so its
// radius is r+0.5; pixels outside the circle are transparent.
func Circle(r int, c color.Color) *image.RGBA {
	size := 2*r + 1
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	cx, cy := float32(r)+0.5, float32(r)+0.5
	rad := float32(r) + 0.5
	k := rad * kappa

	z := vector.NewRasterizer(size, size)
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})

	return img
}
