// Package buildinfo carries the version identity stamped into release
// binaries.
package buildinfo

// Overridden at release time with
// -ldflags "-X .../internal/buildinfo.Version=v1.2.3 ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
