// Package main is the entry point for the mirrorcast renderer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/mirrorcast/internal/config"
	"github.com/Faultbox/mirrorcast/internal/logger"
	"github.com/Faultbox/mirrorcast/internal/preview"
	"github.com/Faultbox/mirrorcast/internal/render"
	"github.com/Faultbox/mirrorcast/internal/scene"
	"github.com/Faultbox/mirrorcast/pkg/trace"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== mirrorcast ===",
		zap.String("scene", cfg.Render.Scene),
		zap.Int("width", cfg.View.Width),
		zap.Int("height", cfg.View.Height))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", path))
	}

	s, err := scene.Build(cfg.Render.Scene)
	if err != nil {
		return err
	}

	caster := trace.NewCaster(s, cfg.Render.CasterOptions())
	r := render.New(caster, cfg.View.Camera(), cfg.Render.Workers, logger.Named("render"))

	frame, _, err := r.Render()
	if err != nil {
		return err
	}

	if err := frame.Save(cfg.Output.Path); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.Path, err)
	}
	logger.Info("image written", zap.String("path", cfg.Output.Path))

	if !cfg.Output.Preview {
		return nil
	}

	win, err := preview.Open("mirrorcast - "+cfg.Render.Scene, frame)
	if err != nil {
		return err
	}
	defer win.Close()

	return win.Run()
}
