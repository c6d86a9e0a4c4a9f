package debayer

import (
	"image"
	"image/color"
)

// RGB565Model converts any color to RGB565.
var RGB565Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(RGB565Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB565Color(RGBToRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
})

// RGB565Color is a packed RGB565 pixel. It is always opaque.
type RGB565Color uint16

// RGBA implements color.Color.
func (c RGB565Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := RGB565ToRGB(uint16(c))
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	a = 0xFFFF
	return
}

// RGB565Image is an in-memory image of packed RGB565 pixels. It implements
// draw.Image, so it can be passed to any image encoder.
type RGB565Image struct {
	Pix    []uint16
	Stride int
	Rect   image.Rectangle
}

// NewRGB565Image returns a zeroed image with the given bounds.
func NewRGB565Image(r image.Rectangle) *RGB565Image {
	return &RGB565Image{
		Pix:    make([]uint16, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (p *RGB565Image) Bounds() image.Rectangle { return p.Rect }
func (p *RGB565Image) ColorModel() color.Model { return RGB565Model }

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return RGB565Color(0)
	}
	return RGB565Color(p.Pix[p.PixOffset(x, y)])
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint16(RGB565Model.Convert(c).(RGB565Color))
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *RGB565Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// Bytes returns the pixels as little-endian byte pairs, the layout display
// controllers and OpenCV's BGR565 conversions expect.
func (p *RGB565Image) Bytes() []byte {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	out := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		for _, v := range p.Pix[y*p.Stride : y*p.Stride+w] {
			out = append(out, byte(v), byte(v>>8))
		}
	}
	return out
}

// ToRGBA converts the image to an *image.RGBA.
func (p *RGB565Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, p.Rect.Dx(), p.Rect.Dy()))
	for y := 0; y < p.Rect.Dy(); y++ {
		for x := 0; x < p.Rect.Dx(); x++ {
			r, g, b := RGB565ToRGB(p.Pix[y*p.Stride+x])
			i := out.PixOffset(x, y)
			out.Pix[i+0] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 0xFF
		}
	}
	return out
}
