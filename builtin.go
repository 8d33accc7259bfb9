package tagjson

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// registerBuiltins seeds r with the default kinds. Registration order is
// load-bearing: a timestamp is also a calendar date, so the datetime entry
// must sit ahead of the date entry in the priority list.
func registerBuiltins(r *Registry) {
	RegisterType(r, "datetime", encodeDateTime, decodeDateTime)
	RegisterType(r, "date", encodeDate, decodeDate)
	RegisterType(r, "time", encodeTimeOfDay, decodeTimeOfDay)
	RegisterType(r, "decimal", encodeDecimal, decodeDecimal)
	RegisterType(r, "uuid", encodeUUID, decodeUUID)

	// Decode-only helpers. The encode chain never emits these: []byte is
	// the writer's native base64 string.
	r.RegisterDecoder("bytes", decodeBytesText)
	r.RegisterDecoder("base64", decodeBase64)
}

// datetime <-> RFC 3339 text. The Z07:00 verb renders a zero offset as the
// single character "Z", which is the required +00:00 rewrite; any non-zero
// offset is kept explicit. Nanoseconds survive via the trailing-zero
// trimming .999999999 form.
func encodeDateTime(t time.Time) (any, error) {
	return t.Format(time.RFC3339Nano), nil
}

func decodeDateTime(payload any) (time.Time, error) {
	s, err := payloadText("datetime", payload)
	if err != nil {
		return time.Time{}, err
	}
	// Accepts both "Z" and explicit offsets, with optional fraction.
	return time.Parse(time.RFC3339, s)
}

// date <-> ISO-8601 date-only text.
func encodeDate(d civil.Date) (any, error) {
	return d.String(), nil
}

func decodeDate(payload any) (civil.Date, error) {
	s, err := payloadText("date", payload)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.ParseDate(s)
}

// time <-> ISO-8601 time-only text.
func encodeTimeOfDay(t civil.Time) (any, error) {
	return t.String(), nil
}

func decodeTimeOfDay(payload any) (civil.Time, error) {
	s, err := payloadText("time", payload)
	if err != nil {
		return civil.Time{}, err
	}
	return civil.ParseTime(s)
}

// decimal <-> its exact decimal string. Never passes through binary
// floating point, so "19.99" stays "19.99".
func encodeDecimal(d decimal.Decimal) (any, error) {
	return d.String(), nil
}

func decodeDecimal(payload any) (decimal.Decimal, error) {
	s, err := payloadText("decimal", payload)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(s)
}

// uuid <-> a structured payload carrying the canonical hex digits, so the
// decode path reconstructs through the labeled field rather than a bare
// string.
func encodeUUID(u uuid.UUID) (any, error) {
	return map[string]any{"hex": hex.EncodeToString(u[:])}, nil
}

func decodeUUID(payload any) (uuid.UUID, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return uuid.UUID{}, fmt.Errorf("tagjson: uuid payload must be an object, got %T", payload)
	}
	raw, ok := m["hex"]
	if !ok || len(m) != 1 {
		return uuid.UUID{}, fmt.Errorf("tagjson: uuid payload must carry exactly the hex field")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.UUID{}, fmt.Errorf("tagjson: uuid hex field must be a string, got %T", raw)
	}
	return uuid.Parse(s)
}

// bytes: payload text reinterpreted as raw bytes under UTF-8.
func decodeBytesText(payload any) (any, error) {
	s, err := payloadText("bytes", payload)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// base64: payload text base64-decoded to raw bytes.
func decodeBase64(payload any) (any, error) {
	s, err := payloadText("base64", payload)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(s)
}

func payloadText(marker string, payload any) (string, error) {
	s, ok := payload.(string)
	if !ok {
		return "", fmt.Errorf("tagjson: %s payload must be a string, got %T", marker, payload)
	}
	return s, nil
}
