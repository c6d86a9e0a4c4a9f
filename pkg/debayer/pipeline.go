package debayer

import (
	"fmt"
	"image"
)

// ConvertResult is the output of the conversion pipeline.
type ConvertResult struct {
	Image *RGB565Image
	Gains Gains
}

// Convert runs the full pipeline on a RAW8 frame: optional white balance,
// then passthrough or bilinear demosaicing of the whole frame or of
// params.Crop. Unless params.InPlace is set, white balance works on a copy
// and raw is left untouched. Every precondition is checked before any
// output is produced.
func Convert(raw []byte, width, height int, params *ConvertParams) (*ConvertResult, error) {
	if params == nil {
		params = NewConvertParams()
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if err := checkFrame(len(raw), width, height); err != nil {
		return nil, err
	}
	crop := params.Crop
	if crop.IsZero() {
		crop = Window{Width: width, Height: height}
	} else if !crop.within(width, height) {
		return nil, fmt.Errorf("crop %v of %dx%d: %w", crop, width, height, ErrCropOutOfBounds)
	}

	result := &ConvertResult{Gains: IdentityGains}
	src := raw
	if params.WhiteBalance {
		gains, err := GrayWorldGains(raw, width, height)
		if err != nil {
			return nil, err
		}
		if !params.InPlace {
			src = make([]byte, width*height)
			copy(src, raw)
		}
		if err := ApplyGains(src, width, height, gains); err != nil {
			return nil, err
		}
		result.Gains = gains
	}

	img := NewRGB565Image(image.Rect(0, 0, crop.Width, crop.Height))
	var err error
	switch {
	case params.Mode == ModePassthrough:
		err = Passthrough(src, width, height, img.Pix)
	case crop.Width == width && crop.Height == height:
		err = BilinearDemosaic(src, width, height, img.Pix)
	default:
		err = BilinearDemosaicCrop(src, width, height, crop.X, crop.Y, img.Pix, crop.Width, crop.Height)
	}
	if err != nil {
		return nil, err
	}
	result.Image = img
	return result, nil
}
