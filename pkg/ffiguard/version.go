package ffiguard

// Version is the semantic version of the module, populated at build time
// via ldflags. In development it defaults to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the module version string.
func WrapperVersion() string {
	return Version
}
