package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/trackiellm/viaconfig/internal/configtree"
)

// Sentinel errors classifying a failed load. Wrapped into the returned error,
// test with errors.Is.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrParse        = errors.New("configuration file could not be parsed")
)

// Load reads the three source documents and returns the merged tree.
//
// Each file is read and parsed independently; the first failure aborts the
// whole load and no tree is returned. The merge order is a hard contract:
// system first, then hardware folded in, then profile, so overlapping keys
// resolve profile > hardware > system.
//
// Parameters:
//   - log: logger for per-file failure diagnostics
//   - systemPath: system defaults document
//   - hardwarePath: hardware profile document
//   - profilePath: user profile document
//
// Returns:
//   - *configtree.Value: the merged tree, root mapping for well-formed inputs
//   - error: wrapping ErrFileNotFound or ErrParse with the offending path
func Load(log zerolog.Logger, systemPath, hardwarePath, profilePath string) (*configtree.Value, error) {
	merged, err := parseFile(log, systemPath)
	if err != nil {
		return nil, err
	}

	hardware, err := parseFile(log, hardwarePath)
	if err != nil {
		return nil, err
	}

	profile, err := parseFile(log, profilePath)
	if err != nil {
		return nil, err
	}

	configtree.Merge(merged, hardware)
	configtree.Merge(merged, profile)

	log.Debug().
		Str("system", systemPath).
		Str("hardware", hardwarePath).
		Str("profile", profilePath).
		Msg("configuration merged")

	return merged, nil
}

// parseFile reads one document into a tree. An empty file decodes to a null
// root, which later merges as a no-op layer.
func parseFile(log zerolog.Logger, path string) (*configtree.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Error().Str("path", path).Msg("configuration file not found")
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		log.Error().Str("path", path).Err(err).Msg("configuration file unreadable")
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}

	tree := &configtree.Value{}
	if err := yaml.Unmarshal(data, tree); err != nil {
		log.Error().Str("path", path).Err(err).Msg("configuration file malformed")
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return tree, nil
}
