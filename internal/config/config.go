// Package config handles render configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
	"go.uber.org/multierr"

	"github.com/Faultbox/mirrorcast/internal/logger"
	"github.com/Faultbox/mirrorcast/internal/scene"
	"github.com/Faultbox/mirrorcast/pkg/camera"
	"github.com/Faultbox/mirrorcast/pkg/raster"
	"github.com/Faultbox/mirrorcast/pkg/trace"
)

// Config holds all render settings.
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewConfig holds camera placement and image size.
type ViewConfig struct {
	Origin      [3]float64 `yaml:"origin"`
	Forward     [3]float64 `yaml:"forward"`
	Up          [3]float64 `yaml:"up"`
	VFovDegrees float64    `yaml:"vfov_degrees"`
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
}

// RenderConfig holds casting settings.
type RenderConfig struct {
	Scene      string     `yaml:"scene"`
	MaxDepth   int        `yaml:"max_depth"`
	Workers    int        `yaml:"workers"` // 0 or less uses every CPU
	Background [3]float64 `yaml:"background"`
}

// OutputConfig holds where the frame goes.
type OutputConfig struct {
	Path    string `yaml:"path"`
	Preview bool   `yaml:"preview"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := trace.DefaultOptions()
	return &Config{
		View: ViewConfig{
			Origin:      [3]float64{0, 0, 5},
			Forward:     [3]float64{0, 1, 0},
			Up:          [3]float64{0, 0, 1},
			VFovDegrees: 65,
			Width:       1280,
			Height:      960,
		},
		Render: RenderConfig{
			Scene:      scene.DefaultName,
			MaxDepth:   opts.MaxDepth,
			Workers:    1,
			Background: [3]float64{opts.Background.R, opts.Background.G, opts.Background.B},
		},
		Output: OutputConfig{
			Path: "output/render.png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Camera converts the view settings into camera parameters.
func (v ViewConfig) Camera() camera.View {
	return camera.View{
		Origin:  vector(v.Origin),
		Forward: vector(v.Forward),
		Up:      vector(v.Up),
		VFov:    v.VFovDegrees * math.Pi / 180,
		Width:   v.Width,
		Height:  v.Height,
	}
}

// CasterOptions converts the render settings into caster options.
func (r RenderConfig) CasterOptions() trace.Options {
	return trace.Options{
		MaxDepth:   r.MaxDepth,
		Background: pt.Color{R: r.Background[0], G: r.Background[1], B: r.Background[2]},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if viewErr := c.View.Camera().Validate(); viewErr != nil {
		for _, e := range multierr.Errors(viewErr) {
			err = multierr.Append(err, fmt.Errorf("view: %w", e))
		}
	}

	if !scene.Exists(c.Render.Scene) {
		err = multierr.Append(err, fmt.Errorf("render: %w: %q", scene.ErrUnknownScene, c.Render.Scene))
	}
	if c.Render.MaxDepth < 1 {
		err = multierr.Append(err, fmt.Errorf("render: max_depth %d must be at least 1", c.Render.MaxDepth))
	}

	if c.Output.Path == "" {
		err = multierr.Append(err, errors.New("output: path is empty"))
	} else if formatErr := raster.CheckFormat(c.Output.Path); formatErr != nil {
		err = multierr.Append(err, fmt.Errorf("output: %w", formatErr))
	}

	if _, levelErr := logger.ParseLevel(c.Logging.Level); levelErr != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", levelErr))
	}

	return err
}

func vector(v [3]float64) pt.Vector {
	return pt.Vector{X: v[0], Y: v[1], Z: v[2]}
}
