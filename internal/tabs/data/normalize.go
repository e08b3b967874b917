package data

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

const (
	ErrInvalidStructure = "invalid structure"
	ErrInvalidCapo      = "field 'capo' missing or invalid"
	ErrInvalidTags      = "field 'tags' invalid (array of strings)"
	ErrInvalidSource    = "field 'source' invalid"
)

// FieldError formats the message used for a missing or blank required field.
func FieldError(name string) string {
	return fmt.Sprintf("field '%s' missing or invalid", name)
}

// Normalize turns one untrusted decoded value into a Tab.
//
// The candidate is expected to be a JSON-style object (map[string]any). Any
// returned error message means the whole candidate is rejected; the partially
// filled Tab is still returned so callers can show what was understood.
func Normalize(candidate any) (Tab, []string) {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		return Tab{Tags: []string{}}, []string{ErrInvalidStructure}
	}

	var tab Tab
	var errs []string

	requireString := func(name string, dst *string) {
		s, ok := trimmedString(obj[name])
		if !ok {
			errs = append(errs, FieldError(name))
			return
		}
		*dst = s
	}

	requireString("id", &tab.ID)
	requireString("title", &tab.Title)
	requireString("artist", &tab.Artist)
	requireString("instrument", &tab.Instrument)
	requireString("tuning", &tab.Tuning)

	if capo, ok := normalizeCapo(obj["capo"]); ok {
		tab.Capo = capo
	} else {
		errs = append(errs, ErrInvalidCapo)
	}

	requireString("difficulty", &tab.Difficulty)

	if tags, ok := normalizeTags(obj["tags"]); ok {
		tab.Tags = tags
	} else {
		tab.Tags = []string{}
		errs = append(errs, ErrInvalidTags)
	}

	requireString("content", &tab.Content)

	if raw, present := obj["source"]; present {
		if s, ok := trimmedString(raw); ok {
			tab.Source = s
		} else {
			errs = append(errs, ErrInvalidSource)
		}
	}

	return tab, errs
}

func trimmedString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// normalizeCapo accepts a non-blank string or a finite number.
func normalizeCapo(v any) (string, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return "", false
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(n).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(n).Uint(), 10), true
	default:
		return "", false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	if f == 0 {
		f = 0 // drop the sign of -0
	}
	// Plain positional digits, never exponent form: 1e21 becomes
	// "1000000000000000000000".
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// normalizeTags is all-or-nothing: one bad entry rejects the field.
func normalizeTags(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := trimmedString(item)
		if !ok {
			return nil, false
		}
		tags = append(tags, s)
	}
	return tags, true
}
