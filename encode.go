package tagjson

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// JSONValuer lets a value supply its own JSON-ready payload. The payload is
// serialized directly, without a tagged envelope, and the capability takes
// precedence over any registry entry. This is the escape hatch for values
// that already have a canonical external representation.
type JSONValuer interface {
	JSONValue() any
}

var jsonValuerType = reflect.TypeOf((*JSONValuer)(nil)).Elem()

// tagExtension plugs the fallback chain into the writer's per-type
// extension point. Resolution order per type: JSONValuer capability,
// registry entry, unencodable kinds, then nil to defer to the writer's
// native encoders (numbers, text, booleans, arrays, objects, []byte).
//
// The writer caches the returned encoder per type, so the chain position is
// fixed at a type's first use; the registry itself is re-consulted on every
// encode call, keeping in-place marker replacement effective.
type tagExtension struct {
	jsoniter.DummyExtension
	reg   *Registry
	hooks Hooks
}

func (x *tagExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	t := typ.Type1()
	if t.Implements(jsonValuerType) {
		return &valuerEncoder{typ: typ}
	}
	if x.reg.claims(t) {
		return &taggedEncoder{typ: typ, reg: x.reg}
	}
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return &unencodableEncoder{typ: typ, hooks: x.hooks}
	}
	return nil
}

// DecorateEncoder wraps string-keyed map encoders with the reserved-key
// guard: an ordinary map must never serialize to the envelope shape.
func (x *tagExtension) DecorateEncoder(typ reflect2.Type, encoder jsoniter.ValEncoder) jsoniter.ValEncoder {
	if typ.Kind() == reflect.Map && typ.Type1().Key().Kind() == reflect.String {
		return &reservedKeyGuard{typ: typ, inner: encoder}
	}
	return encoder
}

// valuerEncoder emits the value's self-described payload, untagged.
type valuerEncoder struct {
	typ reflect2.Type
}

func (e *valuerEncoder) IsEmpty(ptr unsafe.Pointer) bool { return false }

func (e *valuerEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := e.typ.UnsafeIndirect(ptr)
	stream.WriteVal(v.(JSONValuer).JSONValue())
}

// taggedEncoder wraps a registered kind in the two-key envelope.
type taggedEncoder struct {
	typ reflect2.Type
	reg *Registry
}

func (e *taggedEncoder) IsEmpty(ptr unsafe.Pointer) bool { return false }

func (e *taggedEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	marker, encode, ok := e.reg.encodeEntry(e.typ.Type1())
	if !ok {
		// The entry was replaced with a predicate that no longer claims
		// this type. Entries are never removed, so this is the only way in.
		stream.Error = &UnencodableValueError{Kind: e.typ.String()}
		return
	}
	payload, err := encode(e.typ.UnsafeIndirect(ptr))
	if err != nil {
		stream.Error = err
		return
	}
	stream.WriteVal(envelope{Type: marker, Value: payload})
}

// unencodableEncoder terminates the chain for kinds no step can place.
type unencodableEncoder struct {
	typ   reflect2.Type
	hooks Hooks
}

func (e *unencodableEncoder) IsEmpty(ptr unsafe.Pointer) bool { return false }

func (e *unencodableEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	e.hooks.ValueUnencodable(e.typ.String())
	stream.Error = &UnencodableValueError{Kind: e.typ.String()}
}

// reservedKeyGuard rejects ordinary maps whose key set is exactly the
// reserved pair. Only maps of length two pay the key scan.
type reservedKeyGuard struct {
	typ   reflect2.Type
	inner jsoniter.ValEncoder
}

func (g *reservedKeyGuard) IsEmpty(ptr unsafe.Pointer) bool { return g.inner.IsEmpty(ptr) }

func (g *reservedKeyGuard) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	rv := reflect.ValueOf(g.typ.UnsafeIndirect(ptr))
	if rv.Kind() == reflect.Map && rv.Len() == 2 {
		hasTag, hasValue := false, false
		iter := rv.MapRange()
		for iter.Next() {
			switch iter.Key().String() {
			case tagKey:
				hasTag = true
			case valueKey:
				hasValue = true
			}
		}
		if hasTag && hasValue {
			stream.Error = &ReservedKeysError{}
			return
		}
	}
	g.inner.Encode(ptr, stream)
}
