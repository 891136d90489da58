// Package buildinfo carries the version stamped into the barberbook binary.
package buildinfo

// Set via -ldflags "-X github.com/cleared-dev/barberbook/internal/buildinfo.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
