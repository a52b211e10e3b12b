//go:build js && wasm

package main

import (
	"fmt"
	"os"
	"syscall/js"

	"go.uber.org/zap"

	"playground/app"
	"playground/internal/buildinfo"
	"playground/internal/config"
	"playground/internal/crash"
	"playground/internal/log"
)

// main exports a global start() for the page to call. The window runner stays on the
// main goroutine; start only signals it.
func main() {
	started := make(chan struct{})
	var once bool
	js.Global().Set("start", js.FuncOf(func(js.Value, []js.Value) any {
		if once {
			return nil
		}
		once = true
		close(started)
		return nil
	}))

	<-started
	run()
}

func run() {
	cfg := config.Default()
	logger, err := log.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer func() { _ = logger.Sync() }()
	defer crash.Recover(logger)

	logger.Info("playground starting",
		zap.String("version", buildinfo.Version),
		zap.String("target", buildinfo.Target()),
	)
	if err := app.Run(cfg, logger); err != nil {
		logger.Error("window run failed", zap.Error(err))
	}
}
