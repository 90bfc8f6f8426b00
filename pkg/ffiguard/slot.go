package ffiguard

import (
	"fmt"
	"unsafe"

	"github.com/ffiguard/ffiguard-go/pkg/ffiguard/internal/backend"
)

// SetError encodes msg and writes the resulting owned handle into the slot
// at out. When out is nil the caller opted out of diagnostics: the message
// is discarded without allocation and without logging (forwarding panics to
// a diagnostic pipeline is the guard sink's job, not this layer's). At most
// one write happens per call; ownership of the handle transfers to the
// foreign caller on write.
func SetError(out ErrOut, msg string) {
	if out == nil {
		return
	}
	backend.WriteSlot(unsafe.Pointer(out), unsafe.Pointer(EncodeString(msg)))
}

// SetErrorf formats a message with fmt.Sprintf and writes it via SetError.
func SetErrorf(out ErrOut, format string, args ...any) {
	if out == nil {
		return
	}
	SetError(out, fmt.Sprintf(format, args...))
}

// SetErrorFrom writes err's message via SetError. A nil err is a no-op.
func SetErrorFrom(out ErrOut, err error) {
	if err == nil {
		return
	}
	SetError(out, err.Error())
}

// ClearError writes absence into the slot at out so the caller can tell
// "no error" from a stale handle left by an earlier call. nil out is a
// no-op. A previously written handle is overwritten, not freed; it already
// belongs to the foreign caller.
func ClearError(out ErrOut) {
	if out == nil {
		return
	}
	backend.WriteSlot(unsafe.Pointer(out), nil)
}

// CheckNotNil returns ErrNullPointer when p is nil. Preflight helper for
// exported functions with required pointer arguments.
func CheckNotNil(p unsafe.Pointer) error {
	if p == nil {
		return ErrNullPointer
	}
	return nil
}

// CheckAllNotNil returns ErrNullPointer when any of ps is nil.
func CheckAllNotNil(ps ...unsafe.Pointer) error {
	for _, p := range ps {
		if p == nil {
			return ErrNullPointer
		}
	}
	return nil
}
