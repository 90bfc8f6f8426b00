// Package backend contains all cgo code for the ffiguard string layer.
//
// # Design Principles
//
//  1. Isolation: ALL cgo lives in this package. No other package in the
//     module imports "C" (enforced by the internalcheck policy tests); the
//     only exception is a c-shared example binary, which is itself a foreign
//     boundary surface.
//
//  2. Minimal Surface: the package exposes exactly the primitives the public
//     API needs — copy a Go string into C memory, read a NUL-terminated C
//     buffer into Go memory, write a pointer-sized slot, free an allocation.
//
//  3. Graceful Degradation: when cgo is unavailable the stub implementation
//     compiles instead. Built() reports false and the public API surfaces
//     ErrNotBuilt rather than failing to compile.
//
// # Memory Layout
//
// C pointers cross this package boundary as unsafe.Pointer. Ownership rules
// are documented on each function; the package never retains a pointer past
// the call that received it.
package backend
