package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/deltasampler/block-world/internal/config"
	"github.com/deltasampler/block-world/internal/logger"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	closer.Bind(logger.Sync)
	defer closer.Close()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockworld: %v\n", err)
		closer.Exit(1)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "blockworld: %v\n", err)
		closer.Exit(1)
		return
	}
	logger.Debug("effective config", zap.Any("config", cfg))

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("writing config", zap.Error(err))
			closer.Exit(1)
			return
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	if cfg.Graphics.VSync && cfg.Graphics.FPSLimit > 0 {
		logger.Warn("fps_limit is ignored while vsync is on", zap.Int("fps_limit", cfg.Graphics.FPSLimit))
	}
	logger.Info("starting",
		zap.String("preset", cfg.World.Preset),
		zap.Int64("seed", cfg.World.Seed),
		zap.Int("radius", cfg.World.Radius),
		zap.Bool("headless", cfg.Graphics.Headless))

	log := logger.Named("blockworld")
	if cfg.Graphics.Headless {
		err = runHeadless(cfg, log)
	} else {
		err = runWindowed(cfg, log)
	}
	if err != nil {
		logger.Error("exiting", zap.Error(err))
		closer.Exit(1)
	}
}
