package tagjson

import (
	"reflect"
	"sync"
)

// EncodeFunc converts a native value into a JSON-serializable payload
// (string, number, map, slice, or any combination the writer accepts).
type EncodeFunc func(v any) (any, error)

// DecodeFunc reconstructs a native value from an envelope payload.
type DecodeFunc func(payload any) (any, error)

// TypePredicate decides whether an encoder entry claims a Go type.
type TypePredicate func(t reflect.Type) bool

type encoderEntry struct {
	marker string
	match  TypePredicate
	encode EncodeFunc
}

// Registry holds the active mapping between native kinds and wire markers.
// The encode side is an explicit priority list scanned in order (first
// match wins), which makes precedence between overlapping kinds
// deterministic instead of a property of map iteration. The decode side is
// a flat marker -> DecodeFunc table.
//
// A Registry is safe for concurrent use. The expected discipline is still
// write-at-startup, read-at-traffic: the underlying writer caches its
// per-type dispatch on first use, so entries registered after a type was
// first encoded may not take effect on an existing Codec.
type Registry struct {
	mu       sync.RWMutex
	log      Logger
	hooks    Hooks
	encoders []encoderEntry
	decoders map[string]DecodeFunc
}

// NewRegistry returns an isolated Registry pre-populated with the built-in
// kinds (datetime, date, time, decimal, uuid and the decode-only bytes and
// base64 markers). log may be nil; event callbacks attach via SetHooks.
func NewRegistry(log Logger) *Registry {
	r := &Registry{
		log:      coalesce[Logger](log, NopLogger{}),
		hooks:    NopHooks{},
		decoders: make(map[string]DecodeFunc),
	}
	registerBuiltins(r)
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide Registry used by the package
// level Marshal/Unmarshal and by Codecs constructed without an explicit
// Registry. Entries are never removed; registrations are process-wide.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// SetHooks installs event callbacks. nil restores NopHooks.
func (r *Registry) SetHooks(h Hooks) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = coalesce[Hooks](h, NopHooks{})
}

// Register inserts an encoder entry and a decoder for marker. It is a pure
// insert: no error conditions, no conflict signal. If an entry with the
// same marker exists, it is replaced in place, keeping its slot in the
// priority list; the displaced decoder is replaced silently apart from a
// Warn log and the MarkerReplaced hook.
//
// Precedence note: entries are scanned in registration order and the first
// matching predicate wins. A kind that is also matched by a broader
// predicate (a timestamp is also a calendar date) must be registered ahead
// of the broad entry or it loses information on encode.
func (r *Registry) Register(marker string, match TypePredicate, encode EncodeFunc, decode DecodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	for i := range r.encoders {
		if r.encoders[i].marker == marker {
			r.encoders[i] = encoderEntry{marker: marker, match: match, encode: encode}
			replaced = true
			break
		}
	}
	if !replaced {
		r.encoders = append(r.encoders, encoderEntry{marker: marker, match: match, encode: encode})
	}
	r.setDecoderLocked(marker, decode)
	r.log.Debug("registered type", Fields{"marker": marker, "replaced": replaced})
}

// RegisterDecoder installs a decode-only marker (no native kind ever
// encodes to it). Used by the built-in bytes and base64 helpers.
func (r *Registry) RegisterDecoder(marker string, decode DecodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setDecoderLocked(marker, decode)
	r.log.Debug("registered decoder", Fields{"marker": marker})
}

func (r *Registry) setDecoderLocked(marker string, decode DecodeFunc) {
	if _, exists := r.decoders[marker]; exists {
		r.log.Warn("marker re-registered, replacing decoder", Fields{"marker": marker})
		r.hooks.MarkerReplaced(marker)
	}
	r.decoders[marker] = decode
}

// RegisterType registers marker for the exact dynamic type T. Values whose
// dynamic type is precisely T (not merely convertible to it) encode to
// envelopes tagged with marker.
func RegisterType[T any](r *Registry, marker string, encode func(T) (any, error), decode func(any) (T, error)) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	r.Register(marker,
		func(t reflect.Type) bool { return t == typ },
		func(v any) (any, error) { return encode(v.(T)) },
		func(payload any) (any, error) { return decode(payload) },
	)
}

// encodeEntry returns the first entry whose predicate claims t.
func (r *Registry) encodeEntry(t reflect.Type) (marker string, encode EncodeFunc, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.encoders {
		if e.match(t) {
			return e.marker, e.encode, true
		}
	}
	return "", nil, false
}

// claims reports whether any encoder entry matches t.
func (r *Registry) claims(t reflect.Type) bool {
	_, _, ok := r.encodeEntry(t)
	return ok
}

// decoder returns the decode function registered for marker.
func (r *Registry) decoder(marker string) (DecodeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decoders[marker]
	return d, ok
}
