package guardlog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ffiguard/ffiguard-go/pkg/ffiguard"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger used by Default sinks. It is a no-op
// logger unless SetLogger installed one first.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		logger = zap.NewNop()
	})
	return logger
}

// SetLogger installs the package logger. Call it once at process start,
// before any guarded call runs. The first install wins: calls after the
// package logger has been used (or after an earlier SetLogger) are
// ignored, so concurrent readers never observe a change.
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	loggerOnce.Do(func() {
		logger = l
	})
}

// Sink returns a PanicSink that logs every intercepted panic through l at
// error level, tagged with the boundary site (conventionally the exported
// C symbol name). A nil l binds to the package logger.
func Sink(l *zap.Logger, site string) ffiguard.PanicSink {
	if l == nil {
		l = Logger()
	}
	return func(msg string) {
		l.Error("panic intercepted at foreign boundary",
			zap.String("site", site),
			zap.String("panic", msg),
		)
	}
}

// Default returns a Sink over the package logger.
func Default(site string) ffiguard.PanicSink {
	return Sink(nil, site)
}
