package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"debayer/pkg/debayer"
)

type convertOptions struct {
	output      string
	outDir      string
	format      string
	overlay     string
	mode        string
	noWB        bool
	crop        []int
	parallelism int
}

func newConvertCmd(global *globalOptions) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <input>...",
		Short: "Debayer frames and write them as images",
		Long: "Debayer one or more RAW8 Bayer frames. A single input may be written to --output;\n" +
			"several inputs are converted concurrently into --out-dir. Files ending in .rgb565\n" +
			"receive the packed little-endian pixels instead of an encoded image.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}
			params := cfg.Convert
			flags := cmd.Flags()
			if flags.Changed("mode") {
				params.Mode = debayer.Mode(opts.mode)
			}
			if flags.Changed("no-wb") {
				params.WhiteBalance = !opts.noWB
			}
			if flags.Changed("crop") {
				if len(opts.crop) != 4 {
					return fmt.Errorf("--crop takes x,y,width,height")
				}
				params.Crop = debayer.Window{X: opts.crop[0], Y: opts.crop[1], Width: opts.crop[2], Height: opts.crop[3]}
			}
			if err := params.Validate(); err != nil {
				return err
			}
			if len(args) > 1 && opts.output != "" {
				return fmt.Errorf("--output takes a single input, use --out-dir")
			}
			if len(args) > 1 && opts.overlay != "" {
				return fmt.Errorf("--overlay takes a single input")
			}
			return runConvert(args, cfg, params, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single input)")
	f.StringVar(&opts.outDir, "out-dir", ".", "output directory for batch conversion")
	f.StringVar(&opts.format, "format", "png", "output extension used with --out-dir")
	f.StringVar(&opts.overlay, "overlay", "", "also write a color cast overlay JPEG")
	f.StringVar(&opts.mode, "mode", string(debayer.ModeBilinear), "bilinear or passthrough")
	f.BoolVar(&opts.noWB, "no-wb", false, "skip gray-world white balance")
	f.IntSliceVar(&opts.crop, "crop", nil, "crop window x,y,width,height")
	f.IntVar(&opts.parallelism, "jobs", runtime.NumCPU(), "frames converted concurrently")
	return cmd
}

func runConvert(inputs []string, cfg *fileConfig, params *debayer.ConvertParams, opts *convertOptions) error {
	startTime := time.Now()

	outs, err := outputPaths(inputs, opts)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(max(opts.parallelism, 1))
	for i, in := range inputs {
		in, out := in, outs[i]
		g.Go(func() error {
			if err := convertOne(in, out, cfg, params, opts.overlay); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Converted %d frame(s) in %.2fs\n", len(inputs), time.Since(startTime).Seconds())
	return nil
}

// outputPaths names the output of every input and fails when two inputs
// would write the same file.
func outputPaths(inputs []string, opts *convertOptions) ([]string, error) {
	outs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := opts.output
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
			out = filepath.Join(opts.outDir, base+"."+strings.TrimPrefix(opts.format, "."))
		}
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("inputs %s and %s both write %s", prev, in, out)
		}
		seen[out] = in
		outs[i] = out
	}
	return outs, nil
}

// overlayParams returns params for the uncropped conversion behind the
// overlay. With InPlace the frame is already balanced by the first pass.
func overlayParams(params *debayer.ConvertParams) *debayer.ConvertParams {
	full := *params
	full.Crop = debayer.Window{}
	if params.InPlace {
		full.WhiteBalance = false
	}
	return &full
}

func convertOne(in, out string, cfg *fileConfig, params *debayer.ConvertParams, overlayPath string) error {
	log.Printf("Loading: %s", in)
	fr, err := loadFrame(in, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	var cast *debayer.ColorCastAnalysis
	if overlayPath != "" {
		// analyze before white balance so the overlay shows the sensor's cast
		if cast, err = debayer.AnalyzeColorCast(fr.raw, fr.width, fr.height); err != nil {
			return err
		}
	}

	res, err := debayer.Convert(fr.raw, fr.width, fr.height, params)
	if err != nil {
		return err
	}
	log.Printf("%s: %dx%d, mode=%s, gains=%v", in, res.Image.Rect.Dx(), res.Image.Rect.Dy(), params.Mode, res.Gains)

	if err := writeOutput(out, res.Image); err != nil {
		return err
	}
	log.Printf("Wrote %s", out)

	if cast != nil {
		// zones cover the full frame, so a cropped conversion is redone uncropped
		overlaySrc := res.Image
		if !params.Crop.IsZero() {
			fullRes, err := debayer.Convert(fr.raw, fr.width, fr.height, overlayParams(params))
			if err != nil {
				return err
			}
			overlaySrc = fullRes.Image
		}
		if err := debayer.RenderColorCastOverlay(overlaySrc, cast, overlayPath); err != nil {
			return err
		}
		log.Printf("Wrote overlay %s", overlayPath)
	}
	return nil
}

func writeOutput(path string, img *debayer.RGB565Image) error {
	if strings.EqualFold(filepath.Ext(path), ".rgb565") {
		if err := os.WriteFile(path, img.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing RGB565 buffer: %w", err)
		}
		return nil
	}
	return debayer.WriteImage(path, img)
}
