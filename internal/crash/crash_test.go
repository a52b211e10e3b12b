//go:build !js

package crash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverLogsAndExits(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = osExit }()

	func() {
		defer Recover(logger)
		panic("player missing")
	}()

	assert.Equal(t, 1, code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "crash", entry.Message)
	assert.Equal(t, "player missing", entry.ContextMap()["panic"])
}

func TestHandleIgnoresNil(t *testing.T) {
	called := false
	exit = func(int) { called = true }
	defer func() { exit = osExit }()

	Handle(zap.NewNop(), nil)
	func() {
		defer Recover(zap.NewNop())
	}()
	assert.False(t, called)
}
