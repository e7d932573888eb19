// Package pyhatch holds module-wide metadata.
package pyhatch

// Version is the pyhatch release version, stamped into generated project
// manifests and reported by --version.
const Version = "0.1.0"
