package debayer

import "fmt"

func geometryError(width, height int) error {
	return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidGeometry)
}

func bufferError(which string, got, want int) error {
	return fmt.Errorf("%s buffer has %d pixels, need %d: %w", which, got, want, ErrBufferTooSmall)
}
