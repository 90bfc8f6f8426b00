//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import "unsafe"

// Built reports whether the cgo string layer is linked into this binary.
func Built() bool { return true }

// GoBytes copies the bytes of a NUL-terminated C buffer into Go memory,
// up to but not including the terminator. The scan stops after max bytes
// when max > 0, so a missing terminator in a bounded read cannot run off
// the end of the caller's buffer. Returns nil for a nil pointer. The C
// buffer is borrowed, never freed or modified.
func GoBytes(p unsafe.Pointer, max int) []byte {
	if p == nil {
		return nil
	}
	var n C.size_t
	if max > 0 {
		n = C.strnlen((*C.char)(p), C.size_t(max))
	} else {
		n = C.strlen((*C.char)(p))
	}
	if n == 0 {
		return []byte{}
	}
	return C.GoBytes(p, C.int(n))
}

// CopyString allocates a NUL-terminated C copy of s on the C heap.
// Ownership of the allocation transfers to the caller, who must release it
// with FreeString (or, from the foreign side, ffiguard_free_string).
func CopyString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// FreeString zeroes a C string allocated by CopyString up to its terminator
// and frees it. Zeroing first keeps diagnostic text that may echo caller
// input out of freed heap pages. A nil pointer is a no-op; freeing the same
// pointer twice is undefined behavior.
func FreeString(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.memset(p, 0, C.strlen((*C.char)(p)))
	C.free(p)
}

// WriteSlot stores value into the pointer-sized slot at out. A nil out is
// a no-op.
func WriteSlot(out, value unsafe.Pointer) {
	if out == nil {
		return
	}
	*(*unsafe.Pointer)(out) = value
}

// ffiguard_free_string releases a string handle previously written by this
// library into a caller-provided out-parameter. Foreign callers must invoke
// it exactly once per received handle; passing NULL is a no-op.
//
//export ffiguard_free_string
func ffiguard_free_string(p *C.char) {
	FreeString(unsafe.Pointer(p))
}
