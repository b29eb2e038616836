// Package export writes artwork as images.
package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/san-kum/pixpal/internal/pixel"
	"golang.org/x/image/draw"
)

// Image returns the canvas at one image pixel per cell.
func Image(c pixel.Canvas) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pixel.Width, pixel.Height))
	for _, cell := range c.Cells() {
		if !cell.Coord().Valid() {
			continue
		}
		col, err := pixel.ParseColor(cell.Color)
		if err != nil {
			continue
		}
		r, g, b := col.Clamped().RGB255()
		img.SetNRGBA(cell.X, cell.Y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
	}
	return img
}

// Scale enlarges img by an integer factor without smoothing.
func Scale(img image.Image, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the canvas as a PNG with each cell scale pixels wide.
func WritePNG(w io.Writer, c pixel.Canvas, scale int) error {
	return png.Encode(w, Scale(Image(c), scale))
}
