package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"debayer/pkg/debayer"
)

type frame struct {
	raw    []byte
	width  int
	height int
}

// loadFrame reads a RAW8 Bayer frame. FITS files carry their own geometry,
// .raw/.bin files need width and height, anything else is decoded as an
// image and converted to 8-bit gray.
func loadFrame(path string, width, height int) (*frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fits", ".fit":
		fits, err := debayer.ReadFits(path)
		if err != nil {
			return nil, fmt.Errorf("reading FITS: %w", err)
		}
		log.Printf("FITS loaded: %dx%d, %d-bit", fits.Width, fits.Height, fits.BitDepth)
		if pat := fits.Header.BayerPattern(); pat != "" && pat != "RGGB" {
			log.Printf("WARNING: %s has Bayer pattern %s, colors assume RGGB", path, pat)
		}
		return &frame{raw: fits.ToRaw8(), width: fits.Width, height: fits.Height}, nil

	case ".raw", ".bin":
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("%s: --width and --height are required for raw input", path)
		}
		raw, err := debayer.ReadRawFile(path, width, height)
		if err != nil {
			return nil, err
		}
		return &frame{raw: raw, width: width, height: height}, nil

	default:
		raw, w, h, err := loadMosaicImage(path)
		if err != nil {
			return nil, err
		}
		return &frame{raw: raw, width: w, height: h}, nil
	}
}
