//go:build windows

package lib

// Native is the dialect of the build platform.
var Native Dialect = Windows
