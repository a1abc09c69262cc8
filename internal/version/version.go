// Package version holds the build version; override with
// -ldflags "-X abnum/internal/version.Version=v1.2.3".
package version

var Version = "dev"
