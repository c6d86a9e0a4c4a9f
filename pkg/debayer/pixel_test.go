package debayer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToRGB565(t *testing.T) {
	assert.Equal(t, uint16(0xFFFF), RGBToRGB565(255, 255, 255))
	assert.Equal(t, uint16(0x0000), RGBToRGB565(0, 0, 0))
	assert.Equal(t, uint16(0xF800), RGBToRGB565(255, 0, 0))
	assert.Equal(t, uint16(0x07E0), RGBToRGB565(0, 255, 0))
	assert.Equal(t, uint16(0x001F), RGBToRGB565(0, 0, 255))
	assert.Equal(t, uint16(25<<11), RGBToRGB565(200, 0, 0))
	// low bits are dropped, not rounded
	assert.Equal(t, uint16(0), RGBToRGB565(7, 3, 7))
}

func TestRGB565ToRGB(t *testing.T) {
	r, g, b := RGB565ToRGB(0xFFFF)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
	r, g, b = RGB565ToRGB(0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	// expansion preserves the high bits of the packed value
	for _, c := range [][3]uint8{{200, 100, 50}, {8, 4, 8}, {248, 252, 248}} {
		r, g, b := RGB565ToRGB(RGBToRGB565(c[0], c[1], c[2]))
		assert.Equal(t, c[0]>>3, r>>3)
		assert.Equal(t, c[1]>>2, g>>2)
		assert.Equal(t, c[2]>>3, b>>3)
	}
}

func TestClampFloatU8(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want uint8
	}{
		"negative":      {-1, 0},
		"zero":          {0, 0},
		"fraction":      {0.9, 0},
		"truncates":     {12.9, 12},
		"near top":      {254.99, 254},
		"max":           {255, 255},
		"above":         {300, 255},
		"nan":           {math.NaN(), 0},
		"plus infinity": {math.Inf(1), 255},
		"neg infinity":  {math.Inf(-1), 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampFloatU8(tc.in))
		})
	}
	for v := 0; v <= 255; v++ {
		assert.Equal(t, uint8(v), ClampFloatU8(float64(v)))
	}
}

func TestClampIntU8(t *testing.T) {
	assert.Equal(t, uint8(0), ClampIntU8(-5))
	assert.Equal(t, uint8(0), ClampIntU8(math.MinInt))
	assert.Equal(t, uint8(255), ClampIntU8(256))
	assert.Equal(t, uint8(255), ClampIntU8(math.MaxInt))
	for v := 0; v <= 255; v++ {
		assert.Equal(t, uint8(v), ClampIntU8(v))
	}
}
