package types

// Shape narrowing for decoded JSON values. Response bodies arrive as
// untyped JSON; the helpers below perform the explicit discrimination the
// public operations rely on instead of duck-typing at each call site.

// AsRecord reports v as a Record when the decoded JSON value is an object.
func AsRecord(v any) (Record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// Records extracts a slice of records from a decoded read response.
// A JSON array yields its object elements; an object with a "data" array
// yields that array's object elements; anything else yields an empty slice.
func Records(v any) []Record {
	switch t := v.(type) {
	case []any:
		return recordSlice(t)
	case map[string]any:
		if data, ok := t["data"].([]any); ok {
			return recordSlice(data)
		}
		return []Record{}
	default:
		return []Record{}
	}
}

func recordSlice(items []any) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if rec, ok := AsRecord(item); ok {
			out = append(out, rec)
		}
	}
	return out
}

// StringField returns the named field of an object value when it is a
// non-empty string.
func StringField(v any, key string) (string, bool) {
	rec, ok := AsRecord(v)
	if !ok {
		return "", false
	}
	s, ok := rec[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
