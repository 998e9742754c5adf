package configtree

import "strings"

// Lookup resolves a dot-separated path against the tree rooted at root.
//
// The path splits on ASCII '.' only; an empty path is a single empty segment,
// so "" resolves the mapping key "" if one exists. Every step requires the
// current value to be a mapping containing the next segment. A non-mapping in
// the middle of the path and an absent key both collapse to the same
// not-found result; callers cannot distinguish them.
//
// The returned value is shared with the tree, not a copy. Callers must treat
// it as read-only.
func Lookup(root *Value, path string) (*Value, bool) {
	current := root
	for _, segment := range strings.Split(path, ".") {
		next, ok := current.Get(segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}
