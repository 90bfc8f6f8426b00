package guardlog_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ffiguard/ffiguard-go/pkg/ffiguard"
	"github.com/ffiguard/ffiguard-go/pkg/ffiguard/guardlog"
)

func TestSinkLogsInterceptedPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	sink := guardlog.Sink(zap.New(core), "mylib_do_work")

	got := ffiguard.GuardWithSink(-1, nil, sink, func() (int, error) {
		panic("div by zero")
	})
	require.Equal(t, -1, got)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "panic intercepted at foreign boundary", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "mylib_do_work", fields["site"])
	require.Contains(t, fields["panic"], "div by zero")
}

func TestSinkNotInvokedOnSuccess(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	sink := guardlog.Sink(zap.New(core), "mylib_do_work")

	got := ffiguard.GuardWithSink(-1, nil, sink, func() (int, error) {
		return 5, nil
	})
	require.Equal(t, 5, got)
	require.Zero(t, logs.Len())
}

func TestDefaultSinkUsesNopLoggerByDefault(t *testing.T) {
	sink := guardlog.Default("quiet_site")
	require.NotPanics(t, func() { sink("message") })
}

func TestSetLoggerIgnoredAfterFirstUse(t *testing.T) {
	first := guardlog.Logger()
	guardlog.SetLogger(zap.NewExample())
	require.Same(t, first, guardlog.Logger())
}
