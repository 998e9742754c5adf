package configtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_NestedPath(t *testing.T) {
	root := parse(t, `
camera:
  resolution:
    width: 1280
    height: 720
`)
	v, ok := Lookup(root, "camera.resolution.width")
	require.True(t, ok)
	i, _ := v.Int64()
	assert.Equal(t, int64(1280), i)
}

func TestLookup_IntermediateValueReturned(t *testing.T) {
	root := parse(t, "camera:\n  device-id: 0\n")

	v, ok := Lookup(root, "camera")
	require.True(t, ok)
	assert.True(t, v.IsMapping())
}

func TestLookup_MissingSegment(t *testing.T) {
	root := parse(t, "camera:\n  device-id: 0\n")

	_, ok := Lookup(root, "camera.missing")
	assert.False(t, ok)

	_, ok = Lookup(root, "missing.key")
	assert.False(t, ok)
}

func TestLookup_TraversalThroughScalarFails(t *testing.T) {
	root := parse(t, "log-level: info\n")

	// Descending through a scalar is the same failure as an absent key.
	_, ok := Lookup(root, "log-level.nested")
	assert.False(t, ok)
}

func TestLookup_EmptyPathIsEmptySegment(t *testing.T) {
	root := parse(t, "a: 1\n")
	_, ok := Lookup(root, "")
	assert.False(t, ok)

	withEmpty := parse(t, "\"\": 7\n")
	v, ok := Lookup(withEmpty, "")
	require.True(t, ok)
	i, _ := v.Int64()
	assert.Equal(t, int64(7), i)
}

func TestLookup_ExactKeyMatch(t *testing.T) {
	root := parse(t, "Log-Level: info\n")

	_, ok := Lookup(root, "log-level")
	assert.False(t, ok, "keys must match case-sensitively")
}

func TestLookup_NonMappingRoot(t *testing.T) {
	root := parse(t, "[1, 2]\n")
	_, ok := Lookup(root, "anything")
	assert.False(t, ok)
}
