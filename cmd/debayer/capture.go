package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"debayer/pkg/capture"
	"debayer/pkg/debayer"
)

type captureOptions struct {
	port    string
	trigger string
	timeout time.Duration
	output  string
	image   string
}

func newCaptureCmd(global *globalOptions) *cobra.Command {
	opts := &captureOptions{}
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Read one RAW8 frame from a camera board over serial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("port") {
				cfg.Capture.Port = opts.port
			}
			if flags.Changed("trigger") {
				cfg.Capture.Trigger = opts.trigger
			}
			return runCapture(cmd.Context(), cfg, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.port, "port", "p", "", "serial port (autodetected when empty)")
	f.StringVar(&opts.trigger, "trigger", "", "command sent to request a frame")
	f.DurationVar(&opts.timeout, "timeout", 10*time.Second, "capture timeout")
	f.StringVarP(&opts.output, "output", "o", "frame.raw", "raw frame output file")
	f.StringVar(&opts.image, "image", "", "also debayer the frame into this image file")
	return cmd
}

func runCapture(ctx context.Context, cfg *fileConfig, opts *captureOptions) error {
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	log.Printf("Capturing %dx%d frame", cfg.Capture.Width, cfg.Capture.Height)
	raw, err := capture.Capture(ctx, cfg.Capture)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, raw, 0o644); err != nil {
		return fmt.Errorf("writing raw frame: %w", err)
	}
	fmt.Printf("Captured %d bytes to %s\n", len(raw), opts.output)

	if opts.image == "" {
		return nil
	}
	res, err := debayer.Convert(raw, cfg.Capture.Width, cfg.Capture.Height, cfg.Convert)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.image, res.Image); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (gains %v)\n", opts.image, res.Gains)
	return nil
}
