package variant

import (
	"errors"
	"fmt"
	"testing"
)

// TestConvertIntegerRoundTrip checks that decimal text of a representable
// integer converts back to the same number for every integer tag.
func TestConvertIntegerRoundTrip(t *testing.T) {
	cases := []struct {
		tag  TypeTag
		text string
		want any
	}{
		{Int16, "-32768", int16(-32768)},
		{Int16, "32767", int16(32767)},
		{Int32, "-2147483648", int32(-2147483648)},
		{Int32, "42", int32(42)},
		{Int64, "-9223372036854775808", int64(-9223372036854775808)},
		{Int64, "0", int64(0)},
		{UInt16, "65535", uint16(65535)},
		{UInt32, "4294967295", uint32(4294967295)},
		{UInt64, "18446744073709551615", uint64(18446744073709551615)},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.tag, tc.text), func(t *testing.T) {
			v, err := Convert(tc.text, tc.tag)
			if err != nil {
				t.Fatalf("Convert(%q, %s): %v", tc.text, tc.tag, err)
			}
			if v.Tag != tc.tag {
				t.Errorf("tag = %s, want %s", v.Tag, tc.tag)
			}
			if v.Data != tc.want {
				t.Errorf("data = %v (%T), want %v (%T)", v.Data, v.Data, tc.want, tc.want)
			}
		})
	}
}

// TestConvertNumericRejects verifies that malformed or out-of-range text
// fails with a ConversionError of kind InvalidNumber.
func TestConvertNumericRejects(t *testing.T) {
	cases := []struct {
		tag  TypeTag
		text string
	}{
		{Int16, "32768"}, // overflow
		{Int32, "abc"},
		{Int32, ""},
		{Int64, "12.5"},
		{UInt16, "-1"},
		{UInt64, "ten"},
		{Float, "not-a-float"},
		{Double, ""},
		{Double, "1,5"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%q", tc.tag, tc.text), func(t *testing.T) {
			_, err := Convert(tc.text, tc.tag)
			if err == nil {
				t.Fatalf("Convert(%q, %s): expected error", tc.text, tc.tag)
			}
			var convErr *ConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("error type = %T, want *ConversionError", err)
			}
			if convErr.Kind != InvalidNumber {
				t.Errorf("kind = %d, want InvalidNumber", convErr.Kind)
			}
		})
	}
}

// TestConvertFloat checks both floating-point widths.
func TestConvertFloat(t *testing.T) {
	v, err := Convert("42.5", Double)
	if err != nil {
		t.Fatalf("Convert double: %v", err)
	}
	if v.Data != 42.5 {
		t.Errorf("double = %v, want 42.5", v.Data)
	}

	v, err = Convert("-0.25", Float)
	if err != nil {
		t.Fatalf("Convert float: %v", err)
	}
	if v.Data != float32(-0.25) {
		t.Errorf("float = %v, want -0.25", v.Data)
	}
}

// TestConvertBooleanNeverFails exercises the fixed truth set: the accepted
// spellings yield true, every other string yields false, and no input is an
// error.
func TestConvertBooleanNeverFails(t *testing.T) {
	trues := []string{"1", "true", "t", "yes", "y", "TRUE", "Yes", "Y", "T"}
	falses := []string{"", "0", "false", "no", "n", "2", "ja", "on", "enabled", "truee", " true"}

	for _, s := range trues {
		v, err := Convert(s, Boolean)
		if err != nil {
			t.Fatalf("Convert(%q, Boolean): %v", s, err)
		}
		if v.Data != true {
			t.Errorf("Convert(%q, Boolean) = %v, want true", s, v.Data)
		}
	}
	for _, s := range falses {
		v, err := Convert(s, Boolean)
		if err != nil {
			t.Fatalf("Convert(%q, Boolean): %v", s, err)
		}
		if v.Data != false {
			t.Errorf("Convert(%q, Boolean) = %v, want false", s, v.Data)
		}
	}
}

// TestConvertStringFallback: string and unknown tags pass text through.
func TestConvertStringFallback(t *testing.T) {
	for _, tag := range []TypeTag{String, Unknown, TypeTag(99)} {
		v, err := Convert("hello world", tag)
		if err != nil {
			t.Fatalf("Convert string fallback (%s): %v", tag, err)
		}
		if v.Data != "hello world" {
			t.Errorf("data = %v, want pass-through text", v.Data)
		}
	}
}

func TestParseTag(t *testing.T) {
	if ParseTag("Double") != Double {
		t.Error("ParseTag(Double) mismatch")
	}
	if ParseTag("bogus") != Unknown {
		t.Error("ParseTag of unknown name should be Unknown")
	}
}
