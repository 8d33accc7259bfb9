package tagjson

// Options tune a Codec. Every field is optional; the zero value gives a
// compact codec over the process-wide default registry.
type Options struct {
	Registry *Registry // nil => DefaultRegistry()
	Logger   Logger    // nil => NopLogger (logging disabled)
	Hooks    Hooks     // nil => NopHooks

	// Serialization options, passed through to the underlying writer.
	Indent   int  // spaces per nesting level; 0 => compact output
	SortKeys bool // sort object keys for deterministic output

	// SkipBytesDecode passes []byte input to the parser without the eager
	// UTF-8 validation Decode performs by default. Read-only views and
	// buffers are always validated.
	SkipBytesDecode bool
}

// New constructs a Codec. Codecs are safe for concurrent use and cheap to
// share; build separate instances when you need isolated registries (tests,
// embedded tenants) or different serialization options.
func New(opts Options) *Codec {
	return newCodec(opts)
}

var defaultCodec = New(Options{})

// Marshal serializes v with the default Codec, wrapping registered kinds in
// tagged envelopes.
func Marshal(v any) ([]byte, error) { return defaultCodec.Encode(v) }

// MarshalToString is Marshal returning text.
func MarshalToString(v any) (string, error) { return defaultCodec.EncodeToString(v) }

// Unmarshal parses text or byte input with the default Codec and rebuilds
// native values from tagged envelopes.
func Unmarshal(in any) (any, error) { return defaultCodec.Decode(in) }

// RegisterDecoder installs a decode-only marker on the default registry.
func RegisterDecoder(marker string, decode DecodeFunc) {
	DefaultRegistry().RegisterDecoder(marker, decode)
}
