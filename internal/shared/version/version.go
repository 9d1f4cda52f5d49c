// Package version records the build version of the binary.
package version

// Version is stamped at build time via -ldflags.
var Version = "dev"
