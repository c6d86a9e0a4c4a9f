package debayer

import "math"

// XOf returns the x coordinate of a row-major index.
func XOf(index, xres int) int {
	return index % xres
}

// YOf returns the y coordinate of a row-major index.
func YOf(index, xres int) int {
	return index / xres
}

// IndexOf returns the row-major index of (x, y). Coordinates outside the
// frame are clamped to the nearest edge, so neighbor lookups at the border
// replicate edge samples.
func IndexOf(x, y, xres, yres int) int {
	return clampCoord(y, yres)*xres + clampCoord(x, xres)
}

func clampCoord(v, res int) int {
	if v < 0 {
		return 0
	}
	if v >= res {
		return res - 1
	}
	return v
}

// checkExtent rejects non-positive extents and extents whose pixel count
// does not fit in an int.
func checkExtent(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return geometryError(width, height)
	}
	return nil
}

// checkFrame verifies that a buffer of length n can hold a width x height frame.
func checkFrame(n, width, height int) error {
	if err := checkExtent(width, height); err != nil {
		return err
	}
	if n < width*height {
		return bufferError("raw", n, width*height)
	}
	return nil
}
