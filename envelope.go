package tagjson

// Reserved envelope keys. Any decoded JSON object whose key set is exactly
// this pair is a tagged envelope, never ordinary user data.
const (
	tagKey   = "__type__"
	valueKey = "__value__"
)

// envelope is the wire form of a registered kind. Field order fixes the
// serialized shape: __type__ first, __value__ second.
type envelope struct {
	Type  string `json:"__type__"`
	Value any    `json:"__value__"`
}

// envelopeKeys reports whether m has exactly the reserved key pair and, if
// so, returns the raw marker and payload. Matching is exact: no extra keys,
// no case folding.
func envelopeKeys(m map[string]any) (marker, payload any, ok bool) {
	if len(m) != 2 {
		return nil, nil, false
	}
	marker, okT := m[tagKey]
	payload, okV := m[valueKey]
	if !okT || !okV {
		return nil, nil, false
	}
	return marker, payload, true
}
