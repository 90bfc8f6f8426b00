package backend

import "errors"

// ErrNotBuilt reports that the cgo string layer was not compiled into the
// current binary (cgo disabled or Windows build).
var ErrNotBuilt = errors.New("ffiguard/internal/backend: cgo string layer not built")
