package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Scene preset to render")
	flagWidth      = flag.Int("width", 0, "Image width in pixels")
	flagHeight     = flag.Int("height", 0, "Image height in pixels")
	flagDepth      = flag.Int("depth", 0, "Maximum reflection depth")
	flagWorkers    = flag.Int("workers", -1, "Render workers (0 = one per CPU)")
	flagOut        = flag.String("out", "", "Output image path (.png, .bmp, .tiff)")
	flagPreview    = flag.Bool("preview", false, "Show the frame in a window after rendering")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the -save-config target, empty when not requested.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Render.Scene = *flagScene
	}
	if *flagWidth > 0 {
		cfg.View.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.View.Height = *flagHeight
	}
	if *flagDepth > 0 {
		cfg.Render.MaxDepth = *flagDepth
	}
	if *flagWorkers >= 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagPreview {
		cfg.Output.Preview = true
	}
}
