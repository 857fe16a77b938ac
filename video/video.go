// Package video converts video memory into images.
//
// Video memory holds one palette index per pixel, row-major, from the
// top-left corner of the display.
package video

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/ezrec/vm6502/memory"
)

const (
	WIDTH  = memory.VIDEO_WIDTH
	HEIGHT = memory.VIDEO_HEIGHT
)

// Palette maps the low 16 palette indexes to colors.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0xff, 0x00, 0xff, 0xff}, // magenta
	{0x00, 0x00, 0x8b, 0xff}, // dark blue
	{0x80, 0x00, 0x80, 0xff}, // purple
	{0x00, 0x64, 0x00, 0xff}, // dark green
	{0xa8, 0xa8, 0xa8, 0xff}, // dark grey
	{0x00, 0x00, 0xcd, 0xff}, // medium blue
	{0xad, 0xd8, 0xe6, 0xff}, // light blue
	{0x8b, 0x45, 0x13, 0xff}, // brown
	{0xff, 0xa5, 0x00, 0xff}, // orange
	{0xd3, 0xd3, 0xd3, 0xff}, // light grey
	{0xff, 0x69, 0xb4, 0xff}, // pink
	{0x90, 0xee, 0x90, 0xff}, // light green
	{0xff, 0xff, 0x00, 0xff}, // yellow
	{0x00, 0xff, 0xff, 0xff}, // cyan
	{0xff, 0xff, 0xff, 0xff}, // white
}

// Invalid is the color of palette indexes above 15.
var Invalid = color.RGBA{0x00, 0xff, 0x00, 0xff}

// Color returns the color of a palette index.
func Color(index byte) color.RGBA {
	if int(index) >= len(Palette) {
		return Invalid
	}
	return Palette[index]
}

// Frame renders video memory as an image. Missing pixels are black.
func Frame(vram []byte) (img *image.RGBA) {
	img = image.NewRGBA(image.Rect(0, 0, WIDTH, HEIGHT))

	for n := range min(len(vram), WIDTH*HEIGHT) {
		c := Color(vram[n])
		pix := img.Pix[n*4 : n*4+4]
		pix[0] = c.R
		pix[1] = c.G
		pix[2] = c.B
		pix[3] = c.A
	}

	for n := len(vram); n < WIDTH*HEIGHT; n++ {
		img.Pix[n*4+3] = 0xff
	}

	return
}

// Scale enlarges an image by an integer zoom, keeping pixel edges sharp.
func Scale(src image.Image, zoom int) (img *image.RGBA) {
	zoom = max(zoom, 1)
	bounds := src.Bounds()
	img = image.NewRGBA(image.Rect(0, 0, bounds.Dx()*zoom, bounds.Dy()*zoom))
	draw.NearestNeighbor.Scale(img, img.Bounds(), src, bounds, draw.Src, nil)
	return
}

// WritePNG writes video memory as a PNG, scaled by zoom.
func WritePNG(w io.Writer, vram []byte, zoom int) (err error) {
	err = png.Encode(w, Scale(Frame(vram), zoom))
	return
}
