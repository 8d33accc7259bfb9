// Package tagjson extends a standard JSON codec with lossless round-trips
// for values plain JSON cannot hold: timestamps, civil dates and times,
// arbitrary-precision decimals, UUIDs, and byte sequences. Non-native values
// travel as a two-key tagged envelope that is still valid JSON on the wire:
//
//	{"__type__": "<marker>", "__value__": <payload>}
//
// Components:
//   - Registry: ordered (type predicate, marker, encode) entries plus a
//     marker -> decode table. Extensible via Register/RegisterType; the
//     default instance ships the built-in kinds.
//   - Codec: pairs a Registry with a frozen json-iterator API. Encode runs
//     the fallback chain (JSONValuer hook, registry, failure) through the
//     writer's extension point; Decode unwraps envelopes bottom-up after
//     parsing.
//   - internal/textual: coerces text, byte slices, read-only views and
//     buffers into parser input, validating UTF-8 eagerly.
//
// Default markers: datetime, date, time, decimal, uuid, plus the
// decode-only bytes and base64 helpers.
//
// Registration pattern:
//
//	tagjson.RegisterType(tagjson.DefaultRegistry(), "money", encodeMoney, decodeMoney)
//	out, _ := tagjson.Marshal(order)   // money fields ride in envelopes
//	back, _ := tagjson.Unmarshal(out)  // envelopes come back as Money values
//
// Registries are write-at-startup, read-at-traffic: complete all
// registration before the first Encode/Decode of the affected type.
package tagjson
