package models

import "time"

// Helpers for reading schemaless document bodies. JSON round-tripping through
// the store turns every number into float64 and every date into its stored
// string form, so all readers go through these instead of raw type asserts.

func docString(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docFloat(doc map[string]any, key string) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func docInt(doc map[string]any, key string) int {
	return int(docFloat(doc, key))
}

func docBool(doc map[string]any, key string) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return false
}

// docTime parses an RFC3339 date field; absent or unparseable values yield the
// zero time.
func docTime(doc map[string]any, key string) time.Time {
	s := docString(doc, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func docStrings(doc map[string]any, key string) []string {
	out := []string{}
	switch v := doc[key].(type) {
	case []string:
		out = append(out, v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// timeDoc serializes a date for storage; the zero time is stored as "".
func timeDoc(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
