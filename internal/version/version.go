// Package version holds build metadata injected via -ldflags.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit the build was made from.
	Commit = "unknown"
)
