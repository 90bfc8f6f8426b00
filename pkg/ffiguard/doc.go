// Package ffiguard keeps Go libraries exported to C callers safe at the
// call boundary. It is built for code compiled with -buildmode=c-shared or
// -buildmode=c-archive, where a panic escaping an exported function crashes
// the host process and where strings and errors must cross as plain C
// pointers.
//
// The package provides three collaborating primitives:
//
//   - a string bridge: DecodeString reads a borrowed NUL-terminated C string
//     into a validated Go string, EncodeString allocates a NUL-terminated C
//     copy whose ownership transfers to the caller;
//   - an error channel: SetError and ClearError write an owned error string
//     (or absence) into a caller-provided char* out-parameter slot;
//   - a boundary guard: Guard runs a unit of work under panic interception
//     and always returns a plain value, reporting failures through the slot.
//
// # Boundary contract
//
// Exported functions built on this package take only scalars and pointers.
// Strings arrive as *char (NUL-terminated, or NULL for absence). Errors
// leave through a **char out-parameter; a NULL slot means the caller does
// not want diagnostics. Guarded functions never panic across the boundary;
// boolean exports return false on failure unless documented otherwise.
//
// Every string handle this library writes into a slot (or returns through
// an out-parameter) is owned by the foreign caller, who must release it
// exactly once with the exported C function ffiguard_free_string. Skipping
// the call leaks the allocation; calling it twice on one handle is
// undefined behavior.
//
// # Typical export
//
//	//export mylib_do_work
//	func mylib_do_work(input *C.char, outError **C.char) C.int {
//		ok := ffiguard.Guard(false, ffiguard.ErrOut(unsafe.Pointer(outError)), func() (bool, error) {
//			s, err := ffiguard.DecodeString(ffiguard.CStr(unsafe.Pointer(input)))
//			if err != nil {
//				return false, err
//			}
//			return true, doWork(s)
//		})
//		if ok {
//			return 1
//		}
//		return 0
//	}
//
// # Builds without cgo
//
// The cgo code is isolated in an internal backend package with a stub for
// builds without cgo (or on Windows). Guards still intercept panics in such
// builds; string and slot operations degrade to no-ops and DecodeString
// reports ErrNotBuilt.
package ffiguard
