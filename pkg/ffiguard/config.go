package ffiguard

import (
	"fmt"
	"os"
	"sync"
)

// Config expresses the process-wide policy knobs of the boundary layer.
// All fields are read on every guarded call, so the configuration must be
// installed once at process start, before any guarded call runs, and never
// changed afterwards.
type Config struct {
	// FallbackMessage is reported when a panic payload carries no
	// string-like content. An empty value falls back to the package
	// default; a guarded panic always produces a non-empty diagnostic.
	FallbackMessage string

	// PanicPrefix is prepended to every intercepted panic message before
	// it is handed to sinks and written to the error slot, so foreign
	// callers can tell a panic apart from an ordinary work failure. May be
	// empty.
	PanicPrefix string

	// IncludeStack appends the goroutine stack trace to intercepted panic
	// messages. The stack appears both in the sink message and in the
	// error slot, keeping the two equal.
	IncludeStack bool

	// MaxDecodeBytes bounds how far DecodeString scans for a terminator.
	// Zero means unlimited.
	MaxDecodeBytes int

	// DefaultSink receives panic messages from Protect and ProtectWithSink
	// when no explicit sink is supplied. Nil falls back to the package
	// default, which writes a single line to stderr.
	DefaultSink PanicSink
}

const (
	defaultFallbackMessage = "unknown panic"
	defaultPanicPrefix     = "internal panic: "
)

func stderrSink(msg string) {
	fmt.Fprintf(os.Stderr, "[ffiguard] panic caught: %s\n", msg)
}

// DefaultConfig returns the configuration used when Init is never called.
func DefaultConfig() Config {
	return Config{
		FallbackMessage: defaultFallbackMessage,
		PanicPrefix:     defaultPanicPrefix,
		DefaultSink:     stderrSink,
	}
}

var (
	config     = DefaultConfig()
	configOnce sync.Once
)

// Init installs the process-wide configuration. The first call wins and
// later calls are ignored, which makes the installed configuration
// read-only for the lifetime of the process: guarded calls on any thread
// can read it without coordination. Call it from main (or an init path
// that runs before the library is exposed to foreign callers), never
// concurrently with guarded calls.
func Init(cfg Config) {
	configOnce.Do(func() {
		if cfg.FallbackMessage == "" {
			cfg.FallbackMessage = defaultFallbackMessage
		}
		if cfg.DefaultSink == nil {
			cfg.DefaultSink = stderrSink
		}
		config = cfg
	})
}

// resetConfigForTest restores the default configuration and re-arms Init.
// Tests that install a configuration must defer this; production code has
// no reason to undo an installation.
func resetConfigForTest() {
	config = DefaultConfig()
	configOnce = sync.Once{}
}

func loadConfig() Config { return config }
