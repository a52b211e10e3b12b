//go:build js && wasm

package crash

import (
	"fmt"
	"runtime/debug"
	"syscall/js"

	"go.uber.org/zap"
)

// Recover must be deferred directly. It writes the panic to the browser console and re-panics.
func Recover(logger *zap.Logger) {
	if r := recover(); r != nil {
		Handle(logger, r)
	}
}

// Handle logs r to console.error and re-panics so dev tools show the failure. A nil r is ignored.
func Handle(logger *zap.Logger, r any) {
	if r == nil {
		return
	}
	if logger != nil {
		logger.Error("crash", zap.String("panic", fmt.Sprint(r)))
		_ = logger.Sync()
	}

	console := js.Global().Get("console")
	console.Call("error", fmt.Sprintf("CRASH: %v", r))
	console.Call("error", fmt.Sprintf("Stack:\n%s", debug.Stack()))

	// No os.Exit in the browser.
	panic(r)
}
