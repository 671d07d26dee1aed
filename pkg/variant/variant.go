// Package variant defines the tagged value type exchanged with remote
// automation servers and the conversion from operator-typed text into
// strongly-typed values.
package variant

import "fmt"

// TypeTag identifies the wire type of a Value.
type TypeTag int

const (
	Unknown TypeTag = iota
	Boolean
	Int16
	Int32
	Int64
	UInt16
	UInt32
	UInt64
	Float
	Double
	String
)

var tagNames = map[TypeTag]string{
	Unknown: "Unknown",
	Boolean: "Boolean",
	Int16:   "Int16",
	Int32:   "Int32",
	Int64:   "Int64",
	UInt16:  "UInt16",
	UInt32:  "UInt32",
	UInt64:  "UInt64",
	Float:   "Float",
	Double:  "Double",
	String:  "String",
}

func (t TypeTag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TypeTag(%d)", int(t))
}

// ParseTag resolves a type tag by name. Unrecognized names map to Unknown,
// which downstream conversion treats as the string fallback.
func ParseTag(name string) TypeTag {
	for tag, n := range tagNames {
		if n == name {
			return tag
		}
	}
	return Unknown
}

// Value pairs a type tag with its Go representation. Data holds int16/int32/
// int64, uint16/uint32/uint64, float32/float64, bool or string depending on
// the tag.
type Value struct {
	Tag  TypeTag
	Data any
}

// NewValue builds a Value from a tag and its native representation.
func NewValue(tag TypeTag, data any) Value {
	return Value{Tag: tag, Data: data}
}

func (v Value) String() string {
	return fmt.Sprintf("%v", v.Data)
}
