package model

// RawRecord is one decoded JSONL line: an arbitrary key/value mapping with
// no schema contract. Accessors tolerate absent keys and wrong-shaped values
// so that field resolution can degrade to the next precedence tier instead
// of failing.
type RawRecord map[string]any

// Str returns the string value under key, or "" when the key is absent,
// null, or not a string.
func (r RawRecord) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Map returns the nested object under key, or nil when the key is absent,
// null, or not an object. Indexing a nil RawRecord is safe.
func (r RawRecord) Map(key string) RawRecord {
	m, _ := r[key].(map[string]any)
	return RawRecord(m)
}

// Lookup returns the raw value under key and whether the key is present.
func (r RawRecord) Lookup(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}
