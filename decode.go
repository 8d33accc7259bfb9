package tagjson

import "fmt"

// resolve rebuilds native values from a freshly parsed tree, bottom-up:
// children first, so envelopes nested inside envelope payloads are already
// native when the enclosing decoder runs. Objects that are not envelopes
// and every other node pass through untouched.
func (c *Codec) resolve(v any) (any, error) {
	switch node := v.(type) {
	case map[string]any:
		for key, elem := range node {
			r, err := c.resolve(elem)
			if err != nil {
				return nil, err
			}
			node[key] = r
		}
		marker, payload, ok := envelopeKeys(node)
		if !ok {
			return node, nil
		}
		return c.decodeEnvelope(marker, payload)
	case []any:
		for i, elem := range node {
			r, err := c.resolve(elem)
			if err != nil {
				return nil, err
			}
			node[i] = r
		}
		return node, nil
	default:
		return v, nil
	}
}

func (c *Codec) decodeEnvelope(marker, payload any) (any, error) {
	name, ok := marker.(string)
	if !ok {
		// Key set alone reserves the shape; a non-string marker can never
		// be registered, so it is unsupported by construction.
		name = fmt.Sprintf("%v", marker)
	}
	decode, found := c.reg.decoder(name)
	if !found {
		c.hooks.UnknownMarker(name)
		c.log.Debug("envelope with unregistered marker", Fields{"marker": name})
		return nil, &UnsupportedTypeError{Marker: name}
	}
	return decode(payload)
}
