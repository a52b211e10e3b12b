//go:build !js

// Package crash reports panics that escape the frame loop.
package crash

import (
	"fmt"
	"os"
	"runtime/debug"

	"go.uber.org/zap"
)

var (
	osExit = os.Exit
	exit   = osExit
)

// Recover must be deferred directly. It logs the panic value and stack, then exits with status 1.
func Recover(logger *zap.Logger) {
	if r := recover(); r != nil {
		Handle(logger, r)
	}
}

// Handle reports r and terminates the process. A nil r is ignored.
func Handle(logger *zap.Logger, r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()
	if logger != nil {
		logger.Error("crash",
			zap.String("panic", fmt.Sprint(r)),
			zap.ByteString("stack", stack),
		)
		_ = logger.Sync()
	} else {
		fmt.Fprintf(os.Stderr, "CRASH: %v\nStack:\n%s\n", r, stack)
	}
	exit(1)
}
