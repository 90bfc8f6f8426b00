//go:build !cgo || windows

package backend

import "unsafe"

// Stub implementations for builds without the cgo string layer. Every
// operation degrades to a no-op; the public API reports ErrNotBuilt where
// its signature allows.

// Built reports whether the cgo string layer is linked into this binary.
func Built() bool { return false }

// GoBytes always returns nil without cgo.
func GoBytes(p unsafe.Pointer, max int) []byte { return nil }

// CopyString always returns nil without cgo; no allocation occurs.
func CopyString(s string) unsafe.Pointer { return nil }

// FreeString is a no-op without cgo.
func FreeString(p unsafe.Pointer) {}

// WriteSlot is a no-op without cgo.
func WriteSlot(out, value unsafe.Pointer) {}
