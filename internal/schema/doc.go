// Package schema defines typed models of the three configuration documents.
//
// This package manages:
//   - Struct definitions mirroring the expected document layouts
//   - Strict decoding that rejects unknown fields
//   - Validation of required fields and value ranges
//
// The runtime load path never touches these models: the merged tree stays
// dynamic so hosts can query arbitrary keys, and runtime schema validation is
// deliberately out of scope. The models exist so tests and host-side tooling
// can check that the documents a deployment ships actually have the shape
// the rest of the system assumes.
package schema
