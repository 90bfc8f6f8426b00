package ffiguard

import (
	"errors"

	"github.com/ffiguard/ffiguard-go/pkg/ffiguard/internal/backend"
)

// ErrNullPointer reports that a required C string argument was NULL.
var ErrNullPointer = errors.New("null pointer")

// ErrInvalidUTF8 reports that the bytes of a C string were not well-formed
// UTF-8 and cannot become a Go string without corruption.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

// ErrNotBuilt reports that the binary was built without the cgo string
// layer, so no C memory can be allocated or read.
var ErrNotBuilt = backend.ErrNotBuilt

// RemapError converts backend layer errors to public API errors. Exported
// for use by adapter subpackages and c-shared surfaces built on this
// package.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrNotBuilt) {
		return ErrNotBuilt
	}
	return err
}
