package configtree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value kinds. The zero Kind is Null so a zero Value is a valid null.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String returns a short name for the kind, used in logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a tagged variant representing any YAML-like value.
//
// Exactly one of the payload fields is meaningful, selected by kind. Mappings
// keep entries in insertion order alongside a key index for O(1) access.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	seq     []*Value
	entries []mapEntry
	index   map[string]int
}

type mapEntry struct {
	key string
	val *Value
}

// Constructors for each variant.

// NewNull returns a null Value.
func NewNull() *Value { return &Value{kind: KindNull} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

// NewInt returns an integer Value.
func NewInt(i int64) *Value { return &Value{kind: KindInt, intVal: i} }

// NewFloat returns a floating-point Value.
func NewFloat(f float64) *Value { return &Value{kind: KindFloat, floatVal: f} }

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{kind: KindString, strVal: s} }

// NewSequence returns a sequence Value holding the given elements.
func NewSequence(elems ...*Value) *Value {
	return &Value{kind: KindSequence, seq: elems}
}

// NewMapping returns an empty mapping Value.
func NewMapping() *Value {
	return &Value{kind: KindMapping, index: make(map[string]int)}
}

// Kind reports which variant the value holds.
func (v *Value) Kind() Kind { return v.kind }

// IsMapping reports whether the value is a mapping.
func (v *Value) IsMapping() bool { return v.kind == KindMapping }

// Bool returns the boolean payload. The second return is false when the value
// is not a boolean.
func (v *Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolVal, true
}

// Int64 returns the integer payload. Floats do not coerce to integers.
func (v *Value) Int64() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.intVal, true
}

// Float64 returns the value as a float64. Integer values coerce, matching the
// accessor contract hosts rely on for numeric tunables; nothing else does.
func (v *Value) Float64() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.floatVal, true
	case KindInt:
		return float64(v.intVal), true
	default:
		return 0, false
	}
}

// Str returns the string payload. No stringification of other kinds.
func (v *Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.strVal, true
}

// Sequence returns the element slice. The slice is owned by the value and
// must not be mutated by callers.
func (v *Value) Sequence() ([]*Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.seq, true
}

// Get returns the child at key within a mapping. Keys match by exact string
// equality only.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.entries[i].val, true
}

// Set inserts or replaces the child at key, preserving the original insertion
// position on replace.
func (v *Value) Set(key string, child *Value) {
	if v.kind != KindMapping {
		return
	}
	if i, ok := v.index[key]; ok {
		v.entries[i].val = child
		return
	}
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, mapEntry{key: key, val: child})
}

// Keys returns the mapping's keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of children for sequences and mappings, 0 otherwise.
func (v *Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.entries)
	default:
		return 0
	}
}

// Clone returns a deep copy sharing no children with the original.
func (v *Value) Clone() *Value {
	c := &Value{
		kind:     v.kind,
		boolVal:  v.boolVal,
		intVal:   v.intVal,
		floatVal: v.floatVal,
		strVal:   v.strVal,
	}
	switch v.kind {
	case KindSequence:
		c.seq = make([]*Value, len(v.seq))
		for i, e := range v.seq {
			c.seq[i] = e.Clone()
		}
	case KindMapping:
		c.index = make(map[string]int, len(v.entries))
		c.entries = make([]mapEntry, len(v.entries))
		for i, e := range v.entries {
			c.entries[i] = mapEntry{key: e.key, val: e.val.Clone()}
			c.index[e.key] = i
		}
	}
	return c
}

// UnmarshalYAML decodes a YAML node into the value, preserving scalar kinds.
//
// Integers and floats stay distinct variants. Timestamps, binary blobs and
// other exotic scalar tags decode as strings rather than failing, since the
// tree only ever hands them out through the string accessor anyway.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	return v.decodeNode(node)
}

func (v *Value) decodeNode(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			*v = Value{kind: KindNull}
			return nil
		}
		return v.decodeNode(node.Content[0])

	case yaml.AliasNode:
		return v.decodeNode(node.Alias)

	case yaml.ScalarNode:
		return v.decodeScalar(node)

	case yaml.SequenceNode:
		seq := make([]*Value, len(node.Content))
		for i, child := range node.Content {
			elem := &Value{}
			if err := elem.decodeNode(child); err != nil {
				return err
			}
			seq[i] = elem
		}
		*v = Value{kind: KindSequence, seq: seq}
		return nil

	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return fmt.Errorf("line %d: mapping key: %w", keyNode.Line, err)
			}
			child := &Value{}
			if err := child.decodeNode(node.Content[i+1]); err != nil {
				return err
			}
			m.Set(key, child)
		}
		*v = *m
		return nil

	default:
		return fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

func (v *Value) decodeScalar(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		*v = Value{kind: KindNull}
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return fmt.Errorf("line %d: bool scalar: %w", node.Line, err)
		}
		*v = Value{kind: KindBool, boolVal: b}
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return fmt.Errorf("line %d: int scalar: %w", node.Line, err)
		}
		*v = Value{kind: KindInt, intVal: i}
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: float scalar: %w", node.Line, err)
		}
		*v = Value{kind: KindFloat, floatVal: f}
	default:
		*v = Value{kind: KindString, strVal: node.Value}
	}
	return nil
}
