// Package version holds the build version, overridable with
// -ldflags "-X kmap/internal/version.Version=...".
package version

var Version = "0.3.0"
