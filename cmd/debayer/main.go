package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type globalOptions struct {
	configPath string
	verbose    bool
	width      int
	height     int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "debayer",
		Short:         "Convert RAW8 Bayer frames to RGB565 images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(log.Ltime)
			if !opts.verbose {
				log.SetOutput(io.Discard)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	root.PersistentFlags().IntVar(&opts.width, "width", 0, "frame width for .raw inputs")
	root.PersistentFlags().IntVar(&opts.height, "height", 0, "frame height for .raw inputs")

	root.AddCommand(newConvertCmd(opts), newStatsCmd(opts), newCaptureCmd(opts))
	return root
}
