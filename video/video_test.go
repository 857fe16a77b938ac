package video

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(color.RGBA{0, 0, 0, 0xff}, Color(0))
	assert.Equal(color.RGBA{0xff, 0xff, 0xff, 0xff}, Color(15))
	assert.Equal(Invalid, Color(16))
	assert.Equal(Invalid, Color(0xff))
}

func TestFrame(t *testing.T) {
	assert := assert.New(t)

	vram := make([]byte, WIDTH*HEIGHT)
	vram[0] = 1
	vram[WIDTH+2] = 13
	vram[WIDTH*HEIGHT-1] = 42

	img := Frame(vram)
	assert.Equal(WIDTH, img.Bounds().Dx())
	assert.Equal(HEIGHT, img.Bounds().Dy())
	assert.Equal(Palette[1], img.RGBAAt(0, 0))
	assert.Equal(Palette[13], img.RGBAAt(2, 1))
	assert.Equal(Palette[0], img.RGBAAt(1, 0))
	assert.Equal(Invalid, img.RGBAAt(WIDTH-1, HEIGHT-1))

	short := Frame(vram[:4])
	assert.Equal(Palette[1], short.RGBAAt(0, 0))
	assert.Equal(color.RGBA{0, 0, 0, 0xff}, short.RGBAAt(WIDTH-1, HEIGHT-1))
}

func TestScale(t *testing.T) {
	assert := assert.New(t)

	vram := make([]byte, WIDTH*HEIGHT)
	vram[1] = 9

	img := Scale(Frame(vram), 4)
	assert.Equal(WIDTH*4, img.Bounds().Dx())
	assert.Equal(HEIGHT*4, img.Bounds().Dy())
	assert.Equal(Palette[0], img.RGBAAt(3, 3))
	assert.Equal(Palette[9], img.RGBAAt(4, 0))
	assert.Equal(Palette[9], img.RGBAAt(7, 3))
	assert.Equal(Palette[0], img.RGBAAt(8, 0))

	assert.Equal(WIDTH, Scale(Frame(vram), 0).Bounds().Dx())
}

func TestWritePNG(t *testing.T) {
	assert := assert.New(t)

	vram := make([]byte, WIDTH*HEIGHT)
	vram[0] = 14

	var buf bytes.Buffer
	assert.NoError(WritePNG(&buf, vram, 2))

	img, err := png.Decode(&buf)
	assert.NoError(err)
	assert.Equal(WIDTH*2, img.Bounds().Dx())

	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal([]uint32{0, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}
