// Package boundary implements the foreign-callable surface behind plain Go
// types, leaving only C type conversion to the cgo shim.
//
// This package manages:
//   - The handle table mapping opaque uintptr tokens to merged trees
//   - The Status enumeration and its fixed human-readable text
//   - Typed getters with null-argument, not-found and type-mismatch checks
//   - The Open/Close lifecycle: exactly one tree per handle, released once
//
// A handle token is valid from a successful Open until Close. Tokens are
// never reused within a process, so a stale token is recognised and rejected
// with StatusNullArgument instead of reaching freed memory; Close on a stale
// or zero token is a no-op. Nothing in this package panics across the
// boundary: every failure is a sentinel.
//
// Concurrency: the table is guarded by an RWMutex and trees are immutable
// after Open, so concurrent getter calls on one handle are safe. Close
// concurrent with a getter is also safe here, though callers should not rely
// on that beyond this implementation.
package boundary
