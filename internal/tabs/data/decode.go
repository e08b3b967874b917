package data

import (
	"encoding/json"
	"errors"

	"github.com/antonholmquist/jason"
)

// ErrNotJSON is returned by DecodeJSON for text that is not one JSON document.
var ErrNotJSON = errors.New("not a JSON document")

// DecodeJSON parses raw as a single JSON document. Trailing bytes after the
// first value are rejected.
func DecodeJSON(raw []byte) (*jason.Value, error) {
	if !json.Valid(raw) {
		return nil, ErrNotJSON
	}
	return jason.NewValueFromBytes(raw)
}

// Elements returns the items of an array value, or v itself as the only item.
func Elements(v *jason.Value) []*jason.Value {
	if arr, err := v.Array(); err == nil {
		return arr
	}
	return []*jason.Value{v}
}

// IsObject reports whether v holds a JSON object.
func IsObject(v *jason.Value) bool {
	_, err := v.Object()
	return err == nil
}

// Candidate converts a decoded value into the plain shape Normalize reads:
// map[string]any, []any, string, bool, nil, and json.Number for numbers.
func Candidate(v *jason.Value) any {
	if v == nil || v.Null() == nil {
		return nil
	}
	if b, err := v.Boolean(); err == nil {
		return b
	}
	if n, err := v.Number(); err == nil {
		return n
	}
	if s, err := v.String(); err == nil {
		return s
	}
	if arr, err := v.Array(); err == nil {
		out := make([]any, len(arr))
		for i, item := range arr {
			out[i] = Candidate(item)
		}
		return out
	}
	if obj, err := v.Object(); err == nil {
		fields := obj.Map()
		out := make(map[string]any, len(fields))
		for k, item := range fields {
			out[k] = Candidate(item)
		}
		return out
	}
	return nil
}
