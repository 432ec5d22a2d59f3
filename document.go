package toon

// Document is an object value with insertion-ordered keys. TOON encoding
// derives column order from key order, so decoded objects and objects
// destined for encoding are represented as a Document rather than a Go
// map, which has no stable iteration order.
type Document []Entry

// Entry is a single key/value pair in a Document.
type Entry struct {
	Key   string
	Value any
}

// Get returns the value stored under key and whether the key is present.
func (d Document) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Value returns the value stored under key, or nil if absent.
func (d Document) Value(key string) any {
	v, _ := d.Get(key)
	return v
}

// Has reports whether key is present.
func (d Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the document's keys in insertion order.
func (d Document) Keys() []string {
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}

// Set replaces the value under key if present, or appends a new entry,
// and returns the updated document. Like append, the result must be
// assigned back to the caller's variable.
func (d Document) Set(key string, value any) Document {
	for i, e := range d {
		if e.Key == key {
			d[i].Value = value
			return d
		}
	}
	return append(d, Entry{Key: key, Value: value})
}

// Delete removes key if present and returns the updated document.
func (d Document) Delete(key string) Document {
	for i, e := range d {
		if e.Key == key {
			return append(d[:i], d[i+1:]...)
		}
	}
	return d
}

// Map returns a plain map copy of the document. Nested Document values
// are converted recursively. Key order is lost; use this only when
// ordering no longer matters.
func (d Document) Map() map[string]any {
	m := make(map[string]any, len(d))
	for _, e := range d {
		if nested, ok := e.Value.(Document); ok {
			m[e.Key] = nested.Map()
			continue
		}
		m[e.Key] = e.Value
	}
	return m
}
