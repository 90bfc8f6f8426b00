package ffiguard

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/ffiguard/ffiguard-go/pkg/ffiguard/internal/backend"
)

// CStr is a borrowed pointer to a NUL-terminated C byte buffer. A nil CStr
// means absence (the foreign caller passed NULL). The buffer belongs to the
// caller; nothing in this package frees, modifies, or retains it past the
// call that received it, and nothing reads past the first terminator byte.
type CStr unsafe.Pointer

// ErrOut points at a caller-provided char* slot used to hand an owned error
// string back across the boundary. A nil ErrOut means the caller opted out
// of diagnostics.
type ErrOut unsafe.Pointer

// DecodeString reads the bytes of p up to its terminator into a Go string.
// It fails with ErrNullPointer when p is nil and with ErrInvalidUTF8 when
// the bytes are not well-formed UTF-8. The scan honors the configured
// MaxDecodeBytes bound.
func DecodeString(p CStr) (string, error) {
	if !backend.Built() {
		return "", ErrNotBuilt
	}
	if p == nil {
		return "", ErrNullPointer
	}
	b := backend.GoBytes(unsafe.Pointer(p), loadConfig().MaxDecodeBytes)
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// DecodeOptionalString is DecodeString for arguments where NULL is a legal
// value rather than an error. It returns ok=false (and no error) when p is
// nil.
func DecodeOptionalString(p CStr) (s string, ok bool, err error) {
	if p == nil {
		return "", false, nil
	}
	s, err = DecodeString(p)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// DecodeStringOr returns the decoded content of p, or def when p is nil or
// cannot be decoded.
func DecodeStringOr(p CStr, def string) string {
	s, err := DecodeString(p)
	if err != nil {
		return def
	}
	return s
}

// EncodeString allocates a new NUL-terminated C copy of s and transfers
// ownership of the allocation to the caller, who must release it with
// FreeString (foreign callers use ffiguard_free_string). An embedded NUL
// byte truncates the encoded content at its first occurrence; error
// messages are human-readable diagnostics, not binary payloads, so the
// loss is accepted rather than reported. Returns nil when the binary was
// built without the cgo string layer.
func EncodeString(s string) CStr {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return CStr(backend.CopyString(s))
}

// FreeString releases a string allocated by EncodeString (or written into
// a slot by SetError). The buffer is zeroed up to its terminator before
// the free. nil is a no-op; freeing the same handle twice is undefined
// behavior. The same operation is exported to C as ffiguard_free_string.
func FreeString(p CStr) {
	backend.FreeString(unsafe.Pointer(p))
}
