package debayer

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadRaw reads one RAW8 frame of width x height bytes.
func ReadRaw(r io.Reader, width, height int) ([]byte, error) {
	if err := checkExtent(width, height); err != nil {
		return nil, err
	}
	raw := make([]byte, width*height)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("reading %dx%d raw frame: %w", width, height, err)
	}
	return raw, nil
}

// ReadRawFile reads a RAW8 frame from a file. Trailing bytes are ignored.
func ReadRawFile(path string, width, height int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening raw file: %w", err)
	}
	defer f.Close()
	return ReadRaw(f, width, height)
}

// ReadRawBytes reads a RAW8 frame from a byte slice.
func ReadRawBytes(data []byte, width, height int) ([]byte, error) {
	return ReadRaw(bytes.NewReader(data), width, height)
}
