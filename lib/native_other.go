//go:build !windows

package lib

// Native is the dialect of the build platform. Everything that is not Windows splits paths the POSIX way.
var Native Dialect = Posix
