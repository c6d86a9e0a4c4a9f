package debayer

import "math"

// RGBToRGB565 packs 8-bit channels into RGB565 by dropping the low bits of
// each channel.
//
//	bit 15..11  10..5   4..0
//	    RRRRR   GGGGGG  BBBBB
func RGBToRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// RGB565ToRGB expands a packed pixel to 8-bit channels. The short bit
// pattern is replicated into the low bits so 0 and full scale map to 0 and 255.
func RGB565ToRGB(c uint16) (r, g, b uint8) {
	r5 := uint8((c >> 11) & 0x1F)
	g6 := uint8((c >> 5) & 0x3F)
	b5 := uint8(c & 0x1F)
	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2
	return
}

// ClampFloatU8 saturates v to [0, 255]. In-range values are truncated toward
// zero; NaN maps to 0.
func ClampFloatU8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// ClampIntU8 saturates v to [0, 255].
func ClampIntU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
