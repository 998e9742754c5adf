// Package logging configures the library's structured logger.
//
// This package manages:
//   - Constructing the zerolog root logger used across the library
//   - Level selection via the VIACONFIG_LOG environment variable
//   - Per-component sub-loggers
//
// Everything is written to stderr: this code is loaded into a host process
// whose stdout belongs to the host, and must never be polluted. The default
// level is warn so a correctly configured host sees nothing at all; set
// VIACONFIG_LOG=debug to trace load and handle lifecycle when integrating.
package logging
