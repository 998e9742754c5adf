package configtree

// Merge folds source into dest, mutating dest in place.
//
// The rules are fixed precedence policy, not implementation detail:
//   - Mapping into mapping: merge recursively per key; keys absent from dest
//     are inserted as deep copies, so dest owns its data afterwards.
//   - Scalar into scalar (null, bool, int, float, string, in any combination):
//     source replaces dest. This is what makes a later layer win for
//     overlapping leaf keys.
//   - Every other combination — a sequence on either side, or a mapping
//     mismatched against a non-mapping — discards source and leaves dest
//     untouched. A later layer supplying a scalar where an earlier layer has
//     a mapping is silently ignored, and a sequence at a matching key is
//     never overridden. Surprising, but contractual; do not "fix" it here
//     without revising the downstream consumers first.
func Merge(dest, source *Value) {
	if dest.kind == KindMapping && source.kind == KindMapping {
		for _, e := range source.entries {
			if dv, ok := dest.Get(e.key); ok {
				Merge(dv, e.val)
			} else {
				dest.Set(e.key, e.val.Clone())
			}
		}
		return
	}

	if isScalar(dest.kind) && isScalar(source.kind) {
		*dest = Value{
			kind:     source.kind,
			boolVal:  source.boolVal,
			intVal:   source.intVal,
			floatVal: source.floatVal,
			strVal:   source.strVal,
		}
		return
	}

	// Type mismatch between layers: keep dest.
}

func isScalar(k Kind) bool {
	switch k {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}
