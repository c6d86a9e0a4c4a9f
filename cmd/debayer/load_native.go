//go:build !purego && !js

package main

import (
	"fmt"

	"gocv.io/x/gocv"
)

func loadMosaicImage(path string) ([]byte, int, int, error) {
	src := gocv.IMRead(path, gocv.IMReadGrayScale)
	if src.Empty() {
		return nil, 0, 0, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	raw := make([]byte, src.Rows()*src.Cols())
	copy(raw, src.ToBytes())
	return raw, src.Cols(), src.Rows(), nil
}
