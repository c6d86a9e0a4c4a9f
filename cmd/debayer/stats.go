package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"debayer/pkg/debayer"
)

func newStatsCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <input>",
		Short: "Print channel statistics and the 3x3 color cast of a frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}
			fr, err := loadFrame(args[0], cfg.Width, cfg.Height)
			if err != nil {
				return err
			}
			return printStats(fr)
		},
	}
}

func printStats(fr *frame) error {
	stats, err := debayer.CalculateChannelStatistics(fr.raw, fr.width, fr.height)
	if err != nil {
		return err
	}
	cast, err := debayer.AnalyzeColorCast(fr.raw, fr.width, fr.height)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("=== Frame Statistics ===")
	fmt.Printf("  Frame size:  %d x %d\n", fr.width, fr.height)
	for _, ch := range []struct {
		name string
		s    debayer.ChannelStatistics
	}{{"R", stats.R}, {"G", stats.G}, {"B", stats.B}} {
		fmt.Printf("  %s  mean=%6.2f  median=%6.1f  saturated=%d/%d\n", ch.name, ch.s.Mean, ch.s.Median, ch.s.Saturated, ch.s.Count)
	}
	fmt.Printf("  Gray-world gains: R=%.3f G=%.3f B=%.3f\n", cast.Gains.R, cast.Gains.G, cast.Gains.B)
	fmt.Println("==============================")

	fmt.Println()
	fmt.Println("=== Color Cast (3x3) ===")
	zoneOrder := []debayer.ZonePosition{
		debayer.ZoneTopLeft, debayer.ZoneTop, debayer.ZoneTopRight,
		debayer.ZoneLeft, debayer.ZoneCenter, debayer.ZoneRight,
		debayer.ZoneBottomLeft, debayer.ZoneBottom, debayer.ZoneBottomRight,
	}
	for i, pos := range zoneOrder {
		z := cast.Zones[pos]
		fmt.Printf("  %-8s R/G=%.3f  B/G=%.3f\n", z.Label, z.RatioRG, z.RatioBG)
		if (i+1)%3 == 0 && i < 8 {
			fmt.Println("  ---")
		}
	}
	fmt.Printf("\n  Cast:     %.1f%% (worst: %s)\n", cast.CastPct, cast.WorstZone)
	if !cast.Reliable {
		fmt.Println("  [FRAME TOO SMALL - UNRELIABLE]")
	}
	fmt.Println("==============================")
	return nil
}
