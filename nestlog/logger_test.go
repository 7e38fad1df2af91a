package nestlog_test

import (
	"testing"

	"github.com/shapenest/nestcore/nestlog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWithNilDefaultsToNoop(t *testing.T) {
	l := nestlog.New(nil)
	require.NotPanics(t, func() { l.Event("hello") })
}

func TestEventLogsStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := nestlog.New(zap.New(core))

	l.Generation(3, 12.5)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "generation advanced", entry.Message)
	require.Equal(t, int64(3), entry.ContextMap()["generation"])
	require.Equal(t, 12.5, entry.ContextMap()["best_fitness"])
}

func TestCallbackRoutesStringsThroughZap(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := nestlog.New(zap.New(core))

	cb := l.Callback()
	cb("sheet 2 started")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "sheet 2 started", logs.All()[0].Message)
}
