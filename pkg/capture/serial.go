// Package capture reads RAW8 Bayer frames from a camera board that streams
// them over a USB-CDC serial port.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// ErrNoPort is returned when no port was given and none could be detected.
var ErrNoPort = errors.New("no camera serial port found")

const readPoll = 100 * time.Millisecond

// Config describes how to reach the camera board and what it sends.
type Config struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
	// VendorID is used to autodetect the port when Port is empty.
	VendorID string `yaml:"vendor_id"`
	// Trigger is written before reading, e.g. "capture\n". Empty means the
	// board streams on its own.
	Trigger string `yaml:"trigger"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// DefaultConfig returns settings for an Analog Devices (Maxim) evaluation
// kit streaming 320x240 frames.
func DefaultConfig() Config {
	return Config{
		BaudRate: 921600,
		VendorID: "0B6A",
		Width:    320,
		Height:   240,
	}
}

// Capture opens the serial port, optionally sends the trigger and reads one
// frame. The context bounds the whole capture.
func Capture(ctx context.Context, cfg Config) ([]byte, error) {
	portName := cfg.Port
	if portName == "" {
		var err error
		if portName, err = detectPort(cfg.VendorID); err != nil {
			return nil, err
		}
		log.Printf("Using serial port %s", portName)
	}

	p, err := serial.Open(portName, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", portName, err)
	}
	defer p.Close()

	if err := p.SetReadTimeout(readPoll); err != nil {
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}
	if err := p.ResetInputBuffer(); err != nil {
		return nil, fmt.Errorf("failed to flush input: %w", err)
	}

	return ReadFrame(ctx, p, []byte(cfg.Trigger), cfg.Width*cfg.Height)
}

// ReadFrame writes trigger (if any) to rw and then reads exactly size bytes.
// Reads returning no data are treated as poll timeouts and retried until the
// context is done.
func ReadFrame(ctx context.Context, rw io.ReadWriter, trigger []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid frame size %d", size)
	}
	if len(trigger) > 0 {
		if _, err := rw.Write(trigger); err != nil {
			return nil, fmt.Errorf("failed to send trigger: %w", err)
		}
	}

	frame := make([]byte, size)
	for n := 0; n < size; {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("frame incomplete after %d of %d bytes: %w", n, size, err)
		}
		m, err := rw.Read(frame[n:])
		n += m
		if err != nil && !(errors.Is(err, io.EOF) && n == size) {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("failed to read frame: %w", err)
		}
	}
	return frame, nil
}

func detectPort(vendorID string) (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("failed to autodetect camera serial port: %w", err)
	}
	for _, port := range ports {
		if port.IsUSB && strings.EqualFold(port.VID, vendorID) {
			return port.Name, nil
		}
	}
	return "", ErrNoPort
}
