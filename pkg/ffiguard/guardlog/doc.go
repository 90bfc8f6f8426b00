// Package guardlog adapts zap loggers into boundary-guard panic sinks.
//
// The core ffiguard package never logs (dropping diagnostics silently is
// part of its contract); libraries that do want intercepted panics in their
// logs wire a sink from this package into GuardWithSink or ProtectWithSink.
package guardlog
