package cstr

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// encMode is the CBOR encoder mode for CStr values, configured for
// deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for CStr values. Invalid UTF-8 is
// decoded rather than rejected since the buffer carries raw bytes.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create cstr CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		UTF8: cbor.UTF8DecodeInvalid,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create cstr CBOR decoder mode: %v", err))
	}
}

// MarshalText implements encoding.TextMarshaler. The text is encoded
// without the NUL terminator, so CStr values embed naturally in YAML and
// JSON documents.
func (c CStr) MarshalText() ([]byte, error) {
	return []byte(c.Str()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating that the
// text has no interior NUL byte.
func (c *CStr) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding the text without the
// terminator.
func (c CStr) MarshalYAML() (any, error) {
	return c.Str(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. yaml.v3 does not consult
// encoding.TextUnmarshaler, so this is spelled out.
func (c *CStr) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := New(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalCBOR encodes the text (without the terminator) as a CBOR text
// string.
func (c CStr) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(c.Str())
}

// UnmarshalCBOR decodes a CBOR text string, validating that it has no
// interior NUL byte.
func (c *CStr) UnmarshalCBOR(data []byte) error {
	var s string
	if err := decMode.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := New(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
