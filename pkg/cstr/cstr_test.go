package cstr

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "Hello, world!"},
		{"unicode", "héllo, wörld ☀"},
		{"rawBytes", "\xff\xfe\x01ok"},
		{"whitespace", "  spaced\tout\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.text)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tc.text, err)
			}

			if got := c.Str(); got != tc.text {
				t.Errorf("Str: got %q, want %q", got, tc.text)
			}
			if got := c.Len(); got != len(tc.text) {
				t.Errorf("Len: got %d, want %d", got, len(tc.text))
			}
			if !c.IsValid() {
				t.Error("IsValid: got false, want true")
			}

			buf := c.BytesWithNUL()
			if len(buf) != len(tc.text)+1 {
				t.Fatalf("BytesWithNUL length: got %d, want %d", len(buf), len(tc.text)+1)
			}
			if buf[len(buf)-1] != 0 {
				t.Error("buffer is not NUL-terminated")
			}
			if !bytes.Equal(buf[:len(buf)-1], []byte(tc.text)) {
				t.Errorf("buffer content: got %q, want %q", buf[:len(buf)-1], tc.text)
			}
			for i, b := range buf[:len(buf)-1] {
				if b == 0 {
					t.Errorf("unexpected interior NUL at byte %d", i)
				}
			}
		})
	}
}

func TestNewRejectsInteriorNUL(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"leading", "\x00tail"},
		{"middle", "head\x00tail"},
		{"trailing", "head\x00"},
		{"onlyNUL", "\x00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.text)
			if err == nil {
				t.Fatalf("New(%q) succeeded, want error", tc.text)
			}
			if !errors.Is(err, ErrInteriorNUL) {
				t.Errorf("error %v is not ErrInteriorNUL", err)
			}
		})
	}
}

func TestMustPanicsOnInteriorNUL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must with interior NUL did not panic")
		}
	}()
	Must("bad\x00value")
}

func TestStatic(t *testing.T) {
	c := Static("Hello, world!\x00")

	if got := c.Str(); got != "Hello, world!" {
		t.Errorf("Str: got %q, want %q", got, "Hello, world!")
	}
	if got := c.Len(); got != 13 {
		t.Errorf("Len: got %d, want 13", got)
	}
}

func TestStaticPanics(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"unterminated", "no terminator"},
		{"interiorNUL", "a\x00b\x00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Static(%q) did not panic", tc.value)
				}
			}()
			Static(tc.value)
		})
	}
}

func TestZeroValue(t *testing.T) {
	var c CStr

	if c.IsValid() {
		t.Error("zero value reports valid")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len: got %d, want 0", got)
	}
	if got := c.Str(); got != "" {
		t.Errorf("Str: got %q, want empty", got)
	}
	if buf := c.BytesWithNUL(); buf != nil {
		t.Errorf("BytesWithNUL: got %v, want nil", buf)
	}
}

func TestEmpty(t *testing.T) {
	c := Must("")

	if !c.IsEmpty() {
		t.Error("IsEmpty: got false, want true")
	}
	if !c.IsValid() {
		t.Error("empty CStr should be valid")
	}
	if buf := c.BytesWithNUL(); len(buf) != 1 || buf[0] != 0 {
		t.Errorf("BytesWithNUL: got %v, want [0]", buf)
	}
}

func TestEqualAndCompare(t *testing.T) {
	a := Must("alpha")
	a2 := Must("alpha")
	b := Must("beta")

	if !a.Equal(a2) {
		t.Error("identical values not Equal")
	}
	if a.Equal(b) {
		t.Error("distinct values reported Equal")
	}
	if got := a.Compare(a2); got != 0 {
		t.Errorf("Compare equal: got %d, want 0", got)
	}
	if got := a.Compare(b); got != -1 {
		t.Errorf("Compare less: got %d, want -1", got)
	}
	if got := b.Compare(a); got != 1 {
		t.Errorf("Compare greater: got %d, want 1", got)
	}
}

func TestConstantsAreIndependent(t *testing.T) {
	// Mirrors what cstr-gen emits for two names in one group.
	var (
		nameA = Static("first value\x00")
		nameB = Static("second value\x00")
	)

	if got := nameA.Str(); got != "first value" {
		t.Errorf("nameA: got %q, want %q", got, "first value")
	}
	if got := nameB.Str(); got != "second value" {
		t.Errorf("nameB: got %q, want %q", got, "second value")
	}
	if nameA.Equal(nameB) {
		t.Error("independent constants compare Equal")
	}
}

func TestTrimNUL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"noNUL", "plain", "plain"},
		{"terminated", "plain\x00", "plain"},
		{"padded", "plain\x00\x00\x00", "plain"},
		{"interior", "head\x00tail", "head"},
		{"empty", "", ""},
		{"onlyNUL", "\x00", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TrimNUL(tc.in); got != tc.want {
				t.Errorf("TrimNUL(%q): got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBytesToString(t *testing.T) {
	buf := []byte{'o', 'k', 0, 'x', 'x'}
	if got := BytesToString(buf); got != "ok" {
		t.Errorf("BytesToString: got %q, want %q", got, "ok")
	}
}

func TestBytes(t *testing.T) {
	c := Must("copy me")

	b := c.Bytes()
	if !bytes.Equal(b, []byte("copy me")) {
		t.Fatalf("Bytes: got %q", b)
	}

	// Mutating the copy must not affect the wrapped value.
	b[0] = 'X'
	if got := c.Str(); got != "copy me" {
		t.Errorf("Str after mutating copy: got %q", got)
	}
}
