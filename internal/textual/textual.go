// Package textual coerces the accepted input representations of a JSON
// document into the single byte form the parser consumes. Purely in-memory;
// the only I/O is draining a reader the caller already holds.
package textual

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

// InvalidUTF8Error reports byte input that is not valid UTF-8 text.
type InvalidUTF8Error struct {
	// Offset is the index of the first offending byte.
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("textual: input is not valid UTF-8 (offset %d)", e.Offset)
}

// Coerce normalizes in to parser-ready bytes.
//
// Accepted representations:
//   - string: used as-is (Go strings carry the document verbatim).
//   - json.RawMessage: a read-only view; always validated as UTF-8.
//   - []byte: a raw byte string; validated only when eager is set.
//   - *bytes.Buffer, io.Reader: mutable byte sequences; drained and always
//     validated.
//
// With eager unset, raw []byte input reaches the parser unvalidated and any
// malformed text is the parser's problem, mirroring handing an undecoded
// byte string straight through.
func Coerce(in any, eager bool) ([]byte, error) {
	switch s := in.(type) {
	case string:
		return []byte(s), nil
	case json.RawMessage:
		if err := Validate(s); err != nil {
			return nil, err
		}
		return s, nil
	case []byte:
		if eager {
			if err := Validate(s); err != nil {
				return nil, err
			}
		}
		return s, nil
	case *bytes.Buffer:
		b := s.Bytes()
		if err := Validate(b); err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		b, err := io.ReadAll(s)
		if err != nil {
			return nil, err
		}
		if err := Validate(b); err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("textual: unsupported input type %T", in)
	}
}

// Validate returns an InvalidUTF8Error locating the first malformed byte,
// or nil for valid UTF-8.
func Validate(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return &InvalidUTF8Error{Offset: i}
		}
		i += size
	}
	return &InvalidUTF8Error{Offset: len(b)}
}
