package ffiguard

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// PanicSink receives the message extracted from an intercepted panic. Sinks
// run synchronously inside the guarded call, exactly once per intercepted
// panic, before the error slot is written. A sink must not panic.
type PanicSink func(msg string)

// Guard runs work under panic interception and always returns a plain
// value, making it safe to call from an exported C function where an
// escaping panic would be undefined behavior.
//
// Outcomes:
//   - work returns (v, nil): the error slot is cleared and v is returned;
//   - work returns (_, err): err's message is written into the slot and
//     def is returned;
//   - work panics: the panic is intercepted before it reaches the foreign
//     boundary, a best-effort message is extracted from the payload, the
//     configured prefix plus message is written into the slot, and def is
//     returned.
//
// A panic is never re-raised. Passing a nil out means the caller opted out
// of diagnostics; no allocation happens in that case. Guards nest safely:
// interception is local to each call, and concurrent guarded calls need no
// coordination.
func Guard[T any](def T, out ErrOut, work func() (T, error)) T {
	return GuardWithSink(def, out, nil, work)
}

// GuardWithSink is Guard with a caller-supplied sink that is invoked with
// the extracted panic message whenever a panic is intercepted, so a
// downstream diagnostic pipeline can forward it. The sink receives exactly
// the string written into the error slot. A nil sink makes GuardWithSink
// identical to Guard. Ordinary work errors do not reach the sink; they are
// already visible to the caller through the slot.
func GuardWithSink[T any](def T, out ErrOut, sink PanicSink, work func() (T, error)) (ret T) {
	ret = def
	defer func() {
		if r := recover(); r != nil {
			msg := panicMessage(r)
			if sink != nil {
				sink(msg)
			}
			SetError(out, msg)
		}
	}()

	v, err := work()
	if err != nil {
		SetError(out, err.Error())
		return def
	}
	ClearError(out)
	return v
}

// Protect runs fn under panic interception for exported functions that
// have no error out-parameter. On panic the extracted message goes to the
// configured default sink and def is returned.
func Protect[T any](def T, fn func() T) T {
	return ProtectWithSink(def, loadConfig().DefaultSink, fn)
}

// ProtectWithSink is Protect with an explicit sink.
func ProtectWithSink[T any](def T, sink PanicSink, fn func() T) (ret T) {
	ret = def
	defer func() {
		if r := recover(); r != nil {
			if sink != nil {
				sink(panicMessage(r))
			}
		}
	}()
	return fn()
}

// panicMessage converts an arbitrary panic payload into the diagnostic
// string reported across the boundary: the configured prefix, a
// best-effort rendering of the payload, and optionally the goroutine
// stack. An embedded NUL truncates the rendering before either consumer
// sees it, so the sink message and the slot content stay identical.
func panicMessage(r any) string {
	cfg := loadConfig()

	msg := renderPayload(r, cfg.FallbackMessage)
	if i := strings.IndexByte(msg, 0); i >= 0 {
		msg = msg[:i]
	}
	if msg == "" {
		msg = cfg.FallbackMessage
	}

	msg = cfg.PanicPrefix + msg
	if cfg.IncludeStack {
		msg += "\n" + string(debug.Stack())
	}
	return msg
}

// renderPayload extracts string content from a panic payload. The payload
// is arbitrary caller data: its Error or String method can itself panic (a
// typed-nil receiver is enough), and a secondary panic here would escape
// the guard's recover and cross the foreign boundary. The method calls
// therefore run under their own recover, downgrading to the fallback.
func renderPayload(r any, fallback string) (msg string) {
	defer func() {
		if recover() != nil {
			msg = fallback
		}
	}()
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fallback
	}
}
