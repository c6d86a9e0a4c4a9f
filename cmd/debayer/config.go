package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"debayer/pkg/capture"
	"debayer/pkg/debayer"
)

// fileConfig is the layout of the --config YAML file.
type fileConfig struct {
	Width   int                    `yaml:"width"`
	Height  int                    `yaml:"height"`
	Convert *debayer.ConvertParams `yaml:"convert"`
	Capture capture.Config         `yaml:"capture"`
}

func defaultFileConfig() *fileConfig {
	cfg := &fileConfig{
		Convert: debayer.NewConvertParams(),
		Capture: capture.DefaultConfig(),
	}
	// capture geometry follows the top-level width and height unless set
	cfg.Capture.Width, cfg.Capture.Height = 0, 0
	return cfg
}

// loadConfig reads the config file, if any, and applies persistent flags
// the user set explicitly on top of it.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*fileConfig, error) {
	cfg := defaultFileConfig()
	if opts.configPath != "" {
		data, err := os.ReadFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", opts.configPath, err)
		}
		if cfg.Convert == nil {
			cfg.Convert = debayer.NewConvertParams()
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if cfg.Capture.Width == 0 || flags.Changed("width") {
		cfg.Capture.Width = cfg.Width
	}
	if cfg.Capture.Height == 0 || flags.Changed("height") {
		cfg.Capture.Height = cfg.Height
	}
	if cfg.Capture.Width == 0 || cfg.Capture.Height == 0 {
		def := capture.DefaultConfig()
		cfg.Capture.Width, cfg.Capture.Height = def.Width, def.Height
	}
	return cfg, nil
}
