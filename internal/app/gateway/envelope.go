// internal/app/gateway/envelope.go
package gateway

import (
	"bytes"
	"encoding/json"
)

// The gateway's list endpoints do not commit to one response envelope.
// Observed shapes, in the priority order they are tried here:
//
//	1. a bare array:                 [ {...}, ... ]
//	2. keyed by resource name:       { "users": [ {...}, ... ] }
//	3. a generic data field:         { "data": [ {...}, ... ] }
//	4. resource wrapping data:       { "users": { "data": [ {...} ] } }
//	5. a single record object:       { "id": ..., ... }
//
// Shape 4 is only attempted when the caller opts in (users today). A payload
// matching none of these decodes to an empty list; a shape mismatch is never
// an error. The whole point is to degrade to a partial or empty view instead
// of failing the page for one malformed envelope.

// envelopeShape identifies which decoding rule matched, mostly for tests.
type envelopeShape int

const (
	shapeNone envelopeShape = iota
	shapeArray
	shapeResource
	shapeData
	shapeResourceData
	shapeSingle
)

// decodeList extracts the record array from a list payload. resource is the
// conventional field name for the entity ("users", "visits", ...).
func decodeList(body []byte, resource string, allowNestedData bool) ([]json.RawMessage, envelopeShape) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, shapeNone
	}

	// 1. bare array
	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err == nil {
		return arr, shapeArray
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, shapeNone
	}

	// 2. {resource: [...]}
	if raw, ok := obj[resource]; ok {
		if err := json.Unmarshal(raw, &arr); err == nil {
			return arr, shapeResource
		}
	}

	// 3. {data: [...]}
	if raw, ok := obj["data"]; ok {
		if err := json.Unmarshal(raw, &arr); err == nil {
			return arr, shapeData
		}
	}

	// 4. {resource: {data: [...]}}
	if allowNestedData {
		if raw, ok := obj[resource]; ok {
			var inner map[string]json.RawMessage
			if err := json.Unmarshal(raw, &inner); err == nil {
				if data, ok := inner["data"]; ok {
					if err := json.Unmarshal(data, &arr); err == nil {
						return arr, shapeResourceData
					}
				}
			}
		}
	}

	// 5. single record
	if looksLikeRecord(obj) {
		return []json.RawMessage{json.RawMessage(body)}, shapeSingle
	}

	return nil, shapeNone
}

// looksLikeRecord reports whether a top-level object is plausibly a single
// entity rather than an unrecognized envelope: it has an id-like key or an
// email key.
func looksLikeRecord(obj map[string]json.RawMessage) bool {
	for _, key := range []string{"id", "_id", "email"} {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}
