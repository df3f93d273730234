// Package version carries the release identity of the service.
package version

const (
	// Name is the human-readable service title.
	Name = "SimbaID Backend"
	// Version is the current release.
	Version = "0.1.0"
)
