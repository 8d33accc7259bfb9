package tagjson

import (
	"fmt"

	"github.com/unkn0wn-root/tagjson/internal/textual"
)

// UnsupportedTypeError reports a tagged envelope whose __type__ marker has
// no registered decoder. Distinguishable from the parser's syntax errors,
// which pass through Decode unchanged.
type UnsupportedTypeError struct {
	Marker string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("tagjson: unsupported type %q in tagged value", e.Marker)
}

// UnencodableValueError reports a value the encode fallback chain could not
// place: not writer-native, no JSONValuer hook, no registry entry.
type UnencodableValueError struct {
	// Kind describes the offending value's Go type, e.g. "chan int".
	Kind string
}

func (e *UnencodableValueError) Error() string {
	return fmt.Sprintf("tagjson: cannot encode value of type %s", e.Kind)
}

// ReservedKeysError reports an attempt to encode an ordinary string-keyed
// map carrying exactly the reserved __type__/__value__ key pair. That shape
// always decodes as a tagged envelope, so the encoder refuses to produce it
// for user data.
type ReservedKeysError struct{}

func (e *ReservedKeysError) Error() string {
	return fmt.Sprintf("tagjson: map uses the reserved %s/%s key pair", tagKey, valueKey)
}

// InvalidUTF8Error reports byte input that is not valid UTF-8 text.
// Returned by Decode during input normalization.
type InvalidUTF8Error = textual.InvalidUTF8Error
