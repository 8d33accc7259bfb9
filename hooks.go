package tagjson

// Hooks are lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap and non-blocking; the codec calls them on
// hot paths.
type Hooks interface {
	// A marker that already had a decoder was registered again and the
	// previous decoder was replaced. Registration is a pure insert, so two
	// libraries claiming the same marker shadow one another silently at the
	// API level; this is where that becomes visible.
	MarkerReplaced(marker string)

	// Decode met a tagged envelope whose marker has no registered decoder.
	// The call returns UnsupportedTypeError to the caller right after.
	UnknownMarker(marker string)

	// Encode exhausted the fallback chain for a value of the named Go type.
	ValueUnencodable(goType string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) MarkerReplaced(string)   {}
func (NopHooks) UnknownMarker(string)    {}
func (NopHooks) ValueUnencodable(string) {}
