package debayer

import "fmt"

// Passthrough splits a RAW8 Bayer frame into its RGB channels without
// interpolation: each sample lands in the channel of its role and the other
// two channels stay zero. Useful for inspecting the mosaic itself.
func Passthrough(raw []byte, width, height int, dst []uint16) error {
	if err := checkFrame(len(raw), width, height); err != nil {
		return err
	}
	if len(dst) < width*height {
		return bufferError("destination", len(dst), width*height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := raw[y*width+x]
			var p uint16
			switch RoleAt(x, y) {
			case RoleRed:
				p = RGBToRGB565(v, 0, 0)
			case RoleBlue:
				p = RGBToRGB565(0, 0, v)
			default:
				p = RGBToRGB565(0, v, 0)
			}
			dst[y*width+x] = p
		}
	}
	return nil
}

// BilinearDemosaic performs bilinear interpolation on a RAW8 RGGB frame and
// writes RGB565 pixels to dst. Edge pixels use clamped (replicated) neighbor
// lookups.
func BilinearDemosaic(raw []byte, width, height int, dst []uint16) error {
	if err := checkFrame(len(raw), width, height); err != nil {
		return err
	}
	if len(dst) < width*height {
		return bufferError("destination", len(dst), width*height)
	}

	s := sampler{raw: raw, width: width, height: height}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst[y*width+x] = s.interpolate(x, y)
		}
	}
	return nil
}

// BilinearDemosaicCrop debayers the dstWidth x dstHeight window at
// (offsetX, offsetY) of the source frame. Neighbors are clamped against the
// full source, so pixels on the crop border are interpolated from real data
// outside the window.
func BilinearDemosaicCrop(raw []byte, srcWidth, srcHeight, offsetX, offsetY int, dst []uint16, dstWidth, dstHeight int) error {
	if err := checkFrame(len(raw), srcWidth, srcHeight); err != nil {
		return err
	}
	if checkExtent(dstWidth, dstHeight) != nil || offsetX < 0 || offsetY < 0 {
		return fmt.Errorf("crop %dx%d+%d+%d: %w", dstWidth, dstHeight, offsetX, offsetY, ErrInvalidGeometry)
	}
	if dstWidth > srcWidth-offsetX || dstHeight > srcHeight-offsetY {
		return fmt.Errorf("crop %dx%d+%d+%d of %dx%d: %w",
			dstWidth, dstHeight, offsetX, offsetY, srcWidth, srcHeight, ErrCropOutOfBounds)
	}
	if len(dst) < dstWidth*dstHeight {
		return bufferError("destination", len(dst), dstWidth*dstHeight)
	}

	s := sampler{raw: raw, width: srcWidth, height: srcHeight}
	for y := 0; y < dstHeight; y++ {
		for x := 0; x < dstWidth; x++ {
			dst[y*dstWidth+x] = s.interpolate(x+offsetX, y+offsetY)
		}
	}
	return nil
}

type sampler struct {
	raw           []byte
	width, height int
}

func (s sampler) px(x, y int) int {
	return int(s.raw[IndexOf(x, y, s.width, s.height)])
}

// cross is the mean of the four orthogonal neighbors.
func (s sampler) cross(x, y int) int {
	return (s.px(x-1, y) + s.px(x+1, y) + s.px(x, y-1) + s.px(x, y+1)) / 4
}

// diagonal is the mean of the four diagonal neighbors.
func (s sampler) diagonal(x, y int) int {
	return (s.px(x-1, y-1) + s.px(x+1, y-1) + s.px(x-1, y+1) + s.px(x+1, y+1)) / 4
}

func (s sampler) horizontal(x, y int) int {
	return (s.px(x-1, y) + s.px(x+1, y)) / 2
}

func (s sampler) vertical(x, y int) int {
	return (s.px(x, y-1) + s.px(x, y+1)) / 2
}

func (s sampler) interpolate(x, y int) uint16 {
	var r, g, b int

	switch RoleAt(x, y) {
	case RoleRed:
		r = s.px(x, y)
		g = s.cross(x, y)
		b = s.diagonal(x, y)
	case RoleGreenRed:
		r = s.horizontal(x, y)
		g = s.px(x, y)
		b = s.vertical(x, y)
	case RoleGreenBlue:
		r = s.vertical(x, y)
		g = s.px(x, y)
		b = s.horizontal(x, y)
	default:
		r = s.diagonal(x, y)
		g = s.cross(x, y)
		b = s.px(x, y)
	}

	return RGBToRGB565(ClampIntU8(r), ClampIntU8(g), ClampIntU8(b))
}
