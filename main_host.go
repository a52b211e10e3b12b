//go:build !js

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"playground/app"
	"playground/hal"
	"playground/internal/buildinfo"
	"playground/internal/config"
	"playground/internal/crash"
	"playground/internal/log"
)

func main() {
	var hc hal.HeadlessConfig
	var configPath, logLevel, hold string
	var hud bool
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&hold, "hold", "", "Comma separated keys held down in headless mode (up,down,left,right,w,a,s,d).")
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error.")
	flag.BoolVar(&hud, "hud", false, "Show the player position.")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if hud {
		cfg.HUD = true
	}

	logger, err := log.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	defer crash.Recover(logger)

	logger.Info("playground starting",
		zap.String("version", buildinfo.Version),
		zap.String("commit", buildinfo.Commit),
		zap.String("date", buildinfo.Date),
		zap.String("target", buildinfo.Target()),
		zap.Bool("headless", hc.Enabled),
	)

	if hc.Enabled {
		if hc.Hold, err = hal.ParseKeys(strings.Split(hold, ",")); err != nil {
			logger.Error("invalid -hold", zap.Error(err))
			os.Exit(2)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := app.RunHeadless(ctx, cfg, hc, logger); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("headless run failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := app.Run(cfg, logger); err != nil {
		logger.Error("window run failed", zap.Error(err))
		os.Exit(1)
	}
}
