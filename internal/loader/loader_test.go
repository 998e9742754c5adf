package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackiellm/viaconfig/internal/configtree"
)

// writeDocs writes the three layer documents into a temp dir and returns
// their paths in system, hardware, profile order.
func writeDocs(t *testing.T, system, hardware, profile string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	paths := [3]string{
		filepath.Join(dir, "system.yml"),
		filepath.Join(dir, "hardware.yml"),
		filepath.Join(dir, "profile.yml"),
	}
	for i, content := range []string{system, hardware, profile} {
		require.NoError(t, os.WriteFile(paths[i], []byte(content), 0600))
	}
	return paths[0], paths[1], paths[2]
}

func TestLoad_MergedPrecedence(t *testing.T) {
	system, hardware, profile := writeDocs(t,
		"log-level: info\nthreads:\n  perception: 2\n",
		"camera:\n  device-id: 0\nthreads:\n  perception: 3\n",
		"log-level: debug\nthreads:\n  perception: 4\n",
	)

	tree, err := Load(zerolog.Nop(), system, hardware, profile)
	require.NoError(t, err)
	require.True(t, tree.IsMapping())

	v, ok := configtree.Lookup(tree, "log-level")
	require.True(t, ok)
	s, _ := v.Str()
	assert.Equal(t, "debug", s)

	v, ok = configtree.Lookup(tree, "threads.perception")
	require.True(t, ok)
	i, _ := v.Int64()
	assert.Equal(t, int64(4), i)

	v, ok = configtree.Lookup(tree, "camera.device-id")
	require.True(t, ok)
	i, _ = v.Int64()
	assert.Equal(t, int64(0), i)
}

func TestLoad_MissingFileAbortsWholeLoad(t *testing.T) {
	system, hardware, _ := writeDocs(t, "a: 1\n", "b: 2\n", "c: 3\n")

	tree, err := Load(zerolog.Nop(), system, hardware, filepath.Join(t.TempDir(), "absent.yml"))
	assert.Nil(t, tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoad_ParseErrorAbortsWholeLoad(t *testing.T) {
	system, hardware, profile := writeDocs(t, "a: 1\n", "broken: [unclosed\n", "c: 3\n")

	tree, err := Load(zerolog.Nop(), system, hardware, profile)
	assert.Nil(t, tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad_ErrorClassificationIsDistinct(t *testing.T) {
	system, hardware, profile := writeDocs(t, "a: 1\n", "b: [bad\n", "c: 3\n")

	_, err := Load(zerolog.Nop(), system, hardware, profile)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad_EmptyLayerIsNoOp(t *testing.T) {
	system, hardware, profile := writeDocs(t, "log-level: info\n", "", "")

	tree, err := Load(zerolog.Nop(), system, hardware, profile)
	require.NoError(t, err)

	v, ok := configtree.Lookup(tree, "log-level")
	require.True(t, ok)
	s, _ := v.Str()
	assert.Equal(t, "info", s)
}
