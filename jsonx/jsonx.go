// Package jsonx wraps encoding/json with the conventions used across cssb:
// no HTML escaping and no trailing newline on output, typed results on input.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Serialize encodes v as JSON text without escaping <, > and &.
func Serialize(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("unable to serialize %T: %w", v, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Deserialize parses text into a new value of type T. Types with derived
// state are expected to implement json.Unmarshaler and construct themselves
// from the parsed fields.
func Deserialize[T any](text string) (T, error) {
	var v T
	if err := DeserializeInto(&v, text); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DeserializeInto parses text into dst, which must be a non-nil pointer.
// Trailing data after the first JSON value is an error.
func DeserializeInto(dst any, text string) error {
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("unable to deserialize into %T: %w", dst, err)
	}
	if dec.More() {
		return fmt.Errorf("unable to deserialize into %T: unexpected data after JSON value", dst)
	}
	return nil
}
