package cstr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInteriorNUL is returned when a text contains a NUL byte before its
// end. Such a text cannot round-trip through a C string: the consumer
// would stop reading at the first NUL.
var ErrInteriorNUL = errors.New("interior NUL byte")

// CStr is an immutable NUL-terminated C-compatible string.
//
// The wrapped value includes the single trailing NUL byte. The zero
// value is invalid; build instances with New, Must, or Static, or use
// constants generated by cstr-gen.
type CStr struct {
	val string
}

// New creates a CStr from s, appending the NUL terminator.
// It fails if s contains an interior NUL byte.
func New(s string) (CStr, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return CStr{}, fmt.Errorf("byte %d of %q: %w", i, s, ErrInteriorNUL)
	}
	return CStr{val: s + "\x00"}, nil
}

// Must is New for string literals at call sites. It panics if s contains
// an interior NUL byte.
func Must(s string) CStr {
	c, err := New(s)
	if err != nil {
		panic(fmt.Sprintf("cstr: %v", err))
	}
	return c
}

// Static wraps a string that already ends in exactly one NUL byte.
//
// It exists for generated code: called with a single constant literal
// ("text\x00"), the bytes live in the binary's read-only data segment
// and the pointer stays stable for the process lifetime. Panics if s is
// not NUL-terminated or contains an interior NUL.
func Static(s string) CStr {
	if len(s) == 0 || s[len(s)-1] != 0 {
		panic(fmt.Sprintf("cstr: Static value %q is not NUL-terminated", s))
	}
	if i := strings.IndexByte(s[:len(s)-1], 0); i >= 0 {
		panic(fmt.Sprintf("cstr: Static value has interior NUL at byte %d", i))
	}
	return CStr{val: s}
}

// IsValid reports whether c holds a well-formed NUL-terminated value.
// The zero value is not valid.
func (c CStr) IsValid() bool {
	return len(c.val) > 0 && c.val[len(c.val)-1] == 0
}

// Len returns the byte length of the text, excluding the terminator.
func (c CStr) Len() int {
	if !c.IsValid() {
		return 0
	}
	return len(c.val) - 1
}

// IsEmpty reports whether the text is empty (the buffer is just the
// terminator).
func (c CStr) IsEmpty() bool {
	return c.Len() == 0
}

// Str returns the text without the trailing NUL. The result shares the
// underlying bytes; it is not a copy.
func (c CStr) Str() string {
	if !c.IsValid() {
		return ""
	}
	return c.val[:len(c.val)-1]
}

// String implements fmt.Stringer, returning the text without the
// terminator.
func (c CStr) String() string {
	return c.Str()
}

// Bytes returns a copy of the text bytes, without the terminator.
func (c CStr) Bytes() []byte {
	return []byte(c.Str())
}

// BytesWithNUL returns a copy of the buffer including the terminator.
func (c CStr) BytesWithNUL() []byte {
	if !c.IsValid() {
		return nil
	}
	return []byte(c.val)
}

// Equal reports whether two values hold identical text.
func (c CStr) Equal(other CStr) bool {
	return c.val == other.val
}

// Compare returns -1, 0, or +1 ordering c against other bytewise.
func (c CStr) Compare(other CStr) int {
	return strings.Compare(c.val, other.val)
}

// TrimNUL returns s truncated at its first NUL byte, or s unchanged if
// it has none. Use it for fixed-size buffers filled by foreign code.
func TrimNUL(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// BytesToString converts a NUL-terminated byte buffer to a Go string,
// stopping at the first NUL.
func BytesToString(b []byte) string {
	return TrimNUL(string(b))
}
