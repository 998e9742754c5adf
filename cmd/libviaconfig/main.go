// libviaconfig - layered YAML configuration boundary
//
// This is the c-shared entry point for the configuration library. It is
// loaded by a host process written in C or C++ and exposes the via_config_*
// ABI declared in include/viaconfig.h: load three layered YAML documents,
// query the merged tree by dot-separated path, release the handle.
//
// Build:
//
//	CGO_ENABLED=1 go build -buildmode=c-shared -o libviaconfig.so ./cmd/libviaconfig
//
// The shim in exports.go only converts C types; all semantics live in
// internal/boundary and below so they stay testable without cgo.
package main

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

// main is never called in c-shared mode, but the buildmode requires a main
// package with a main function.
func main() {}
