package ffiguard

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents
// compiler dead store elimination using runtime.KeepAlive.
//
// Libraries exported to C often decode key material or credentials out of
// foreign buffers; this helper lets them wipe the Go-side copy once it is
// no longer needed. This follows the pattern recommended in golang/go#33325.
// It cannot guarantee complete sanitization (the garbage collector may have
// moved or copied the slice), but it represents current best practice in
// the Go ecosystem for sensitive memory.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
