package debayer

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ draw.Image = (*RGB565Image)(nil)

func TestRGB565ImageSetAt(t *testing.T) {
	img := NewRGB565Image(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	img.Set(2, 0, color.White)
	img.Set(5, 5, color.White) // out of bounds, ignored

	assert.Equal(t, uint16(0xF800), img.Pix[img.PixOffset(1, 1)])
	assert.Equal(t, RGB565Color(0xFFFF), img.At(2, 0))
	assert.Equal(t, RGB565Color(0), img.At(-1, 0))

	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0xFFFF, 0, 0, 0xFFFF}, [4]uint32{r, g, b, a})
}

func TestRGB565ImageBytesLittleEndian(t *testing.T) {
	img := NewRGB565Image(image.Rect(0, 0, 2, 1))
	img.Pix[0] = 0xF800
	img.Pix[1] = 0x07E0
	assert.Equal(t, []byte{0x00, 0xF8, 0xE0, 0x07}, img.Bytes())
}

func TestRGB565ImageToRGBA(t *testing.T) {
	img := NewRGB565Image(image.Rect(0, 0, 2, 2))
	img.Pix[3] = RGBToRGB565(255, 255, 255)

	rgba := img.ToRGBA()
	require.Equal(t, image.Rect(0, 0, 2, 2), rgba.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba.RGBAAt(1, 1))
}
