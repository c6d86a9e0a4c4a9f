package debayer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	fitsCardSize    = 80
	fitsCardsPerBlk = 36
)

// FitsHeader holds parsed FITS header key-value pairs.
type FitsHeader map[string]string

// Get returns the value of a keyword, or "" if absent.
func (h FitsHeader) Get(key string) string {
	return h[strings.ToUpper(key)]
}

func (h FitsHeader) Int(key string) (int, bool) {
	v, ok := h[strings.ToUpper(key)]
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// BayerPattern returns the BAYERPAT keyword, upper-cased, or "" if absent.
func (h FitsHeader) BayerPattern() string {
	return strings.ToUpper(strings.TrimSpace(h.Get("BAYERPAT")))
}

// FitsFrame is a single-plane FITS image holding a Bayer mosaic.
type FitsFrame struct {
	Pixels   []uint16
	Width    int
	Height   int
	BitDepth int
	Header   FitsHeader
}

// ReadFits reads a Bayer frame from a FITS file.
func ReadFits(path string) (*FitsFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening FITS file: %w", err)
	}
	defer f.Close()
	return readFits(f)
}

// ReadFitsBytes reads a Bayer frame from an in-memory FITS file.
func ReadFitsBytes(data []byte) (*FitsFrame, error) {
	return readFits(bytes.NewReader(data))
}

func readFits(r io.Reader) (*FitsFrame, error) {
	var bitpix, naxis, width, height int
	bzero, bscale := 0.0, 1.0
	header := make(FitsHeader)
	card := make([]byte, fitsCardSize)

	for done := false; !done; {
		for i := 0; i < fitsCardsPerBlk; i++ {
			if _, err := io.ReadFull(r, card); err != nil {
				return nil, fmt.Errorf("reading FITS header record: %w", err)
			}
			if done {
				// drain the rest of the block
				continue
			}
			keyword := strings.TrimSpace(string(card[:8]))
			if keyword == "END" {
				done = true
				continue
			}
			if card[8] != '=' || card[9] != ' ' {
				continue
			}
			raw := strings.TrimSpace(strings.SplitN(string(card[10:]), "/", 2)[0])
			value := parseFitsValue(raw)
			if keyword != "" && value != "" {
				header[strings.ToUpper(keyword)] = value
			}

			switch keyword {
			case "BITPIX":
				bitpix, _ = strconv.Atoi(raw)
			case "NAXIS":
				naxis, _ = strconv.Atoi(raw)
			case "NAXIS1":
				width, _ = strconv.Atoi(raw)
			case "NAXIS2":
				height, _ = strconv.Atoi(raw)
			case "BZERO":
				bzero, _ = strconv.ParseFloat(raw, 64)
			case "BSCALE":
				bscale, _ = strconv.ParseFloat(raw, 64)
			}
		}
	}

	if naxis != 2 || checkExtent(width, height) != nil {
		return nil, fmt.Errorf("invalid FITS: NAXIS=%d, NAXIS1=%d, NAXIS2=%d: %w", naxis, width, height, ErrInvalidGeometry)
	}

	n := width * height
	bytesPer := int(math.Abs(float64(bitpix))) / 8
	switch bitpix {
	case 8, 16, 32, -32:
	default:
		return nil, fmt.Errorf("unsupported BITPIX: %d", bitpix)
	}
	if n > math.MaxInt/bytesPer {
		return nil, fmt.Errorf("invalid FITS: %dx%d at BITPIX %d: %w", width, height, bitpix, ErrInvalidGeometry)
	}
	data := make([]byte, n*bytesPer)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("reading %d-bit pixel data: %w", bitpix, err)
	}

	frame := &FitsFrame{
		Pixels:   make([]uint16, n),
		Width:    width,
		Height:   height,
		BitDepth: 16,
		Header:   header,
	}
	if bitpix == 8 {
		frame.BitDepth = 8
	}
	for i := 0; i < n; i++ {
		var v float64
		switch bitpix {
		case 8:
			v = float64(data[i])
		case 16:
			v = float64(int16(binary.BigEndian.Uint16(data[i*2:])))
		case 32:
			v = float64(int32(binary.BigEndian.Uint32(data[i*4:])))
		case -32:
			v = float64(math.Float32frombits(binary.BigEndian.Uint32(data[i*4:])))
		}
		frame.Pixels[i] = uint16(math.Max(0, math.Min(65535, v*bscale+bzero)))
	}
	return frame, nil
}

// ToRaw8 scales the frame down to one byte per pixel by dropping the low
// bits of each sample.
func (f *FitsFrame) ToRaw8() []byte {
	shift := uint(0)
	if f.BitDepth > 8 {
		shift = uint(f.BitDepth - 8)
	}
	raw := make([]byte, len(f.Pixels))
	for i, p := range f.Pixels {
		raw[i] = byte(p >> shift)
	}
	return raw
}

func parseFitsValue(raw string) string {
	switch {
	case raw == "":
		return ""
	case raw == "T":
		return "True"
	case raw == "F":
		return "False"
	case strings.HasPrefix(raw, "'"):
		if end := strings.LastIndex(raw, "'"); end > 0 {
			return strings.TrimRight(raw[1:end], " ")
		}
		return strings.TrimLeft(strings.TrimRight(raw, " "), "'")
	}
	return raw
}
