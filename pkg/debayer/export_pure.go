//go:build purego || js

package debayer

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// WriteImage encodes img as PNG, JPEG or BMP depending on the file extension.
func WriteImage(path string, img *RGB565Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp":
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	rgba := img.ToRGBA()
	switch ext {
	case ".png":
		err = png.Encode(f, rgba)
	case ".bmp":
		err = bmp.Encode(f, rgba)
	default:
		err = jpeg.Encode(f, rgba, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
