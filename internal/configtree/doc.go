// Package configtree defines the dynamic value tree shared by every layer of
// the configuration loader.
//
// This package manages:
//   - The Value variant type (null, bool, int, float, string, sequence, mapping)
//   - Decoding YAML documents into Values with exact scalar kinds preserved
//   - Recursive right-biased merging of one tree into another
//   - Dot-path lookup into nested mappings
//
// Mappings preserve insertion order and match keys by exact string equality.
// A Value tree owns all of its children; Merge inserts deep copies, never
// shared references, so trees remain independently owned after merging.
//
// Performance Characteristics:
//   - Merge visits each key a constant number of times: O(keys) per pass
//   - Lookup re-walks from the root on every call; trees are small and
//     read-heavy workloads are not expected, so there is no caching
package configtree
