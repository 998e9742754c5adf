package boundary

// Status is the outcome of a boundary operation. Values are part of the C
// ABI and must match include/viaconfig.h exactly; never renumber.
type Status int32

const (
	// StatusOK: the operation completed successfully.
	StatusOK Status = 0
	// StatusFileNotFound: a source document path did not exist. Load-time
	// failures collapse to a null handle at the outer interface, but the
	// code stays in the enum so the numbering and text remain stable.
	StatusFileNotFound Status = 1
	// StatusParseError: a source document was not valid YAML.
	StatusParseError Status = 2
	// StatusKeyNotFound: dot-path traversal reached a missing segment.
	StatusKeyNotFound Status = 3
	// StatusTypeError: the value exists but is not the requested kind.
	StatusTypeError Status = 4
	// StatusNullArgument: a required handle or pointer argument was absent.
	StatusNullArgument Status = 5
	// StatusInternalError: an argument could not be decoded as text.
	StatusInternalError Status = 6
)

// Text returns the fixed human-readable message for the status. The strings
// are process-lifetime constants; the C shim hands out pointers to them and
// the caller must never free those.
func (s Status) Text() string {
	switch s {
	case StatusOK:
		return "Ok"
	case StatusFileNotFound:
		return "Error: File not found"
	case StatusParseError:
		return "Error: Could not parse YAML file"
	case StatusKeyNotFound:
		return "Error: The requested key was not found"
	case StatusTypeError:
		return "Error: Value has an unexpected type"
	case StatusNullArgument:
		return "Error: A null argument was provided"
	case StatusInternalError:
		return "Error: An internal error occurred"
	default:
		return "Error: Unknown status code"
	}
}
