package tagjson

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/tagjson/internal/textual"
)

// Codec pairs a Registry with a frozen json-iterator API carrying the
// tagged-value extension. Encode and Decode are pure functions of the value
// and the registry state: no retries, no I/O, every failure is synchronous.
type Codec struct {
	reg             *Registry
	api             jsoniter.API
	log             Logger
	hooks           Hooks
	skipBytesDecode bool
}

func newCodec(opts Options) *Codec {
	c := &Codec{
		reg:             coalesce[*Registry](opts.Registry, DefaultRegistry()),
		log:             coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:           coalesce[Hooks](opts.Hooks, NopHooks{}),
		skipBytesDecode: opts.SkipBytesDecode,
	}

	api := jsoniter.Config{
		IndentionStep:          opts.Indent,
		SortMapKeys:            opts.SortKeys,
		UseNumber:              true, // integers survive decode as json.Number, not float64
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(&tagExtension{reg: c.reg, hooks: c.hooks})
	c.api = api
	return c
}

// Encode serializes v to JSON text. Writer-native values (numbers, text,
// booleans, null, arrays, objects, []byte) pass straight through; anything
// else runs the fallback chain and either rides in a tagged envelope or
// fails with UnencodableValueError.
func (c *Codec) Encode(v any) ([]byte, error) {
	b, err := c.api.Marshal(v)
	if err != nil {
		c.log.Debug("encode failed", Fields{"err": err})
		return nil, err
	}
	return b, nil
}

// EncodeToString is Encode returning text.
func (c *Codec) EncodeToString(v any) (string, error) {
	s, err := c.api.MarshalToString(v)
	if err != nil {
		c.log.Debug("encode failed", Fields{"err": err})
		return "", err
	}
	return s, nil
}

// Decode normalizes in (text, byte slice, read-only view, buffer, or
// reader), parses it, and resolves tagged envelopes back to native values.
// Malformed JSON surfaces the parser's own error; an envelope with an
// unregistered marker fails with UnsupportedTypeError.
func (c *Codec) Decode(in any) (any, error) {
	data, err := textual.Coerce(in, !c.skipBytesDecode)
	if err != nil {
		return nil, err
	}
	var v any
	if err := c.api.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return c.resolve(v)
}

// Registry returns the registry this Codec reads from.
func (c *Codec) Registry() *Registry { return c.reg }
