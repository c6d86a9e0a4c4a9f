//go:build !purego && !js

package debayer

import (
	"fmt"

	"gocv.io/x/gocv"
)

// WriteImage encodes img with OpenCV; the format follows the file extension.
func WriteImage(path string, img *RGB565Image) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	src, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC2, img.Bytes())
	if err != nil {
		return fmt.Errorf("wrapping RGB565 pixels: %w", err)
	}
	defer src.Close()

	// OpenCV's BGR565 keeps blue in the low bits and red in the high bits,
	// the same packing as ours.
	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(src, &bgr, gocv.ColorBGR5652BGR)

	if !gocv.IMWrite(path, bgr) {
		return fmt.Errorf("writing image: %s", path)
	}
	return nil
}
