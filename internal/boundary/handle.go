package boundary

import (
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/trackiellm/viaconfig/internal/configtree"
	"github.com/trackiellm/viaconfig/internal/loader"
	"github.com/trackiellm/viaconfig/internal/logging"
)

// table is the process-wide handle registry. Tokens start at 1 so 0 is
// always the null handle, and the counter never reuses a token.
var table = struct {
	mu    sync.RWMutex
	next  uintptr
	trees map[uintptr]*configtree.Value
}{
	next:  1,
	trees: make(map[uintptr]*configtree.Value),
}

var log = logging.Component(logging.New(), "boundary")

// SetLogger replaces the package logger. Intended for tests.
func SetLogger(l zerolog.Logger) { log = l }

// Open loads and merges the three documents and registers the result,
// returning an opaque non-zero token. On any failure it returns 0: the
// outer interface deliberately reports load failures only as a null handle,
// so the cause is logged here and then discarded.
func Open(systemPath, hardwarePath, profilePath string) uintptr {
	if !utf8.ValidString(systemPath) || !utf8.ValidString(hardwarePath) || !utf8.ValidString(profilePath) {
		log.Error().Msg("load rejected: path argument is not valid UTF-8")
		return 0
	}

	tree, err := loader.Load(log, systemPath, hardwarePath, profilePath)
	if err != nil {
		return 0
	}

	table.mu.Lock()
	token := table.next
	table.next++
	table.trees[token] = tree
	table.mu.Unlock()

	log.Debug().Uint64("handle", uint64(token)).Msg("configuration handle opened")
	return token
}

// Close releases the tree owned by the token. Zero and unknown tokens are
// no-ops, so a defensive caller can null-check-and-free without risk; a
// second Close of the same token is likewise inert rather than undefined.
func Close(token uintptr) {
	if token == 0 {
		return
	}
	table.mu.Lock()
	_, ok := table.trees[token]
	delete(table.trees, token)
	table.mu.Unlock()

	if ok {
		log.Debug().Uint64("handle", uint64(token)).Msg("configuration handle closed")
	}
}

// resolve finds the value at path inside the tree owned by token.
func resolve(token uintptr, path string) (*configtree.Value, Status) {
	if token == 0 {
		return nil, StatusNullArgument
	}
	if !utf8.ValidString(path) {
		return nil, StatusInternalError
	}

	table.mu.RLock()
	tree, ok := table.trees[token]
	table.mu.RUnlock()
	if !ok {
		return nil, StatusNullArgument
	}

	v, found := configtree.Lookup(tree, path)
	if !found {
		return nil, StatusKeyNotFound
	}
	return v, StatusOK
}

// GetString returns the string at path. The returned Go string is immutable
// and safe to hold; the C shim layers its own lifetime contract on top.
func GetString(token uintptr, path string) (string, Status) {
	v, st := resolve(token, path)
	if st != StatusOK {
		return "", st
	}
	s, ok := v.Str()
	if !ok {
		return "", StatusTypeError
	}
	return s, StatusOK
}

// GetInt returns the integer at path. Floats never coerce to integers.
func GetInt(token uintptr, path string) (int64, Status) {
	v, st := resolve(token, path)
	if st != StatusOK {
		return 0, st
	}
	i, ok := v.Int64()
	if !ok {
		return 0, StatusTypeError
	}
	return i, StatusOK
}

// GetFloat returns the float at path. Integer values coerce to float64.
func GetFloat(token uintptr, path string) (float64, Status) {
	v, st := resolve(token, path)
	if st != StatusOK {
		return 0, st
	}
	f, ok := v.Float64()
	if !ok {
		return 0, StatusTypeError
	}
	return f, StatusOK
}

// GetBool returns the boolean at path.
func GetBool(token uintptr, path string) (bool, Status) {
	v, st := resolve(token, path)
	if st != StatusOK {
		return false, st
	}
	b, ok := v.Bool()
	if !ok {
		return false, StatusTypeError
	}
	return b, StatusOK
}
