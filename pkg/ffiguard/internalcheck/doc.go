// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests that keep the module's boundary-safety
// rules machine-checked: cgo stays isolated in the internal backend package,
// and the public guard package never panics on its own. It is not intended
// for external use and the API may change without notice.
package internalcheck
