package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// ConversionErrorKind classifies a failed text-to-value conversion.
type ConversionErrorKind int

const (
	// InvalidNumber means the text could not be parsed as the target
	// numeric family, or it overflows the target width.
	InvalidNumber ConversionErrorKind = iota
)

// ConversionError reports that operator text does not fit the target type.
type ConversionError struct {
	Kind ConversionErrorKind
	Text string
	Tag  TypeTag
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Text, e.Tag)
}

// trueWords are the spellings accepted as boolean true. Everything else is
// false; boolean conversion has no failure case.
var trueWords = map[string]bool{
	"1": true, "true": true, "t": true, "yes": true, "y": true,
}

// Convert parses operator text into a Value of the given tag.
// Integer and floating-point tags fail with *ConversionError on malformed
// or out-of-range text. Boolean never fails. Every other tag passes the
// text through as a String value.
func Convert(text string, tag TypeTag) (Value, error) {
	switch tag {
	case Int16, Int32, Int64:
		n, err := strconv.ParseInt(text, 10, intBits(tag))
		if err != nil {
			return Value{}, &ConversionError{Kind: InvalidNumber, Text: text, Tag: tag}
		}
		switch tag {
		case Int16:
			return Value{Tag: tag, Data: int16(n)}, nil
		case Int32:
			return Value{Tag: tag, Data: int32(n)}, nil
		default:
			return Value{Tag: tag, Data: n}, nil
		}

	case UInt16, UInt32, UInt64:
		n, err := strconv.ParseUint(text, 10, intBits(tag))
		if err != nil {
			return Value{}, &ConversionError{Kind: InvalidNumber, Text: text, Tag: tag}
		}
		switch tag {
		case UInt16:
			return Value{Tag: tag, Data: uint16(n)}, nil
		case UInt32:
			return Value{Tag: tag, Data: uint32(n)}, nil
		default:
			return Value{Tag: tag, Data: n}, nil
		}

	case Float:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Value{}, &ConversionError{Kind: InvalidNumber, Text: text, Tag: tag}
		}
		return Value{Tag: tag, Data: float32(f)}, nil

	case Double:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, &ConversionError{Kind: InvalidNumber, Text: text, Tag: tag}
		}
		return Value{Tag: tag, Data: f}, nil

	case Boolean:
		return Value{Tag: tag, Data: trueWords[strings.ToLower(text)]}, nil

	default:
		// String, Unknown and anything future: pass through unchanged.
		return Value{Tag: tag, Data: text}, nil
	}
}

func intBits(tag TypeTag) int {
	switch tag {
	case Int16, UInt16:
		return 16
	case Int32, UInt32:
		return 32
	default:
		return 64
	}
}
