// Package loader reads the three layered configuration documents and folds
// them into one merged tree.
//
// This package manages:
//   - Reading and parsing each source file independently
//   - Failing the whole load on any missing or malformed file (never a
//     partial configuration)
//   - Merging with fixed precedence: user profile > hardware profile >
//     system defaults
//
// Load distinguishes a missing file from a parse failure in its returned
// error so callers can log the cause, even where the outer interface
// deliberately collapses both into a single failure signal.
package loader
