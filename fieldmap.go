package awkio

import (
	"fmt"
	"iter"
	"strings"
)

// FieldMap is the per-record output of Parser: an ordered mapping from
// field keys to transformed values. Keys are the surviving fields'
// original keys (header names, or "$n" for headerless sources), so
// header alignment survives field filtering.
//
// A FieldMap built with Ordered set guarantees insertion order for
// Keys, Values and All; otherwise that order is unspecified.
type FieldMap struct {
	keys    []string
	values  []any
	index   map[string]int
	ordered bool
}

func newFieldMap(ordered bool, capHint int) *FieldMap {
	return &FieldMap{
		keys:    make([]string, 0, capHint),
		values:  make([]any, 0, capHint),
		index:   make(map[string]int, capHint),
		ordered: ordered,
	}
}

// set appends a key/value pair. Only Parser constructs FieldMaps;
// they are read-only afterwards.
func (m *FieldMap) set(key string, v any) {
	if _, ok := m.index[key]; !ok {
		m.index[key] = len(m.keys)
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, v)
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	return len(m.keys)
}

// Ordered reports whether insertion order is guaranteed for iteration.
func (m *FieldMap) Ordered() bool {
	return m.ordered
}

// Get returns the value stored under key. Unlike Record.Get, keys are
// matched exactly: a field dropped by filtering is gone under both its
// header name and its "$n" form.
func (m *FieldMap) Get(key string) (any, error) {
	if i, ok := m.index[key]; ok {
		return m.values[i], nil
	}
	return nil, &FieldError{Key: key}
}

// Index returns the value at position i among the surviving fields.
// A negative i counts from the end.
func (m *FieldMap) Index(i int) (any, error) {
	idx := i
	if idx < 0 {
		idx += len(m.values)
	}
	if idx < 0 || idx >= len(m.values) {
		return nil, fieldErrorIndex(i)
	}
	return m.values[idx], nil
}

// Keys returns the keys in insertion order.
func (m *FieldMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in insertion order.
func (m *FieldMap) Values() []any {
	out := make([]any, len(m.values))
	copy(out, m.values)
	return out
}

// All returns an iterator over (key, value) pairs in insertion order.
func (m *FieldMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// Map returns the fields as a plain map. Duplicate keys keep the first
// occurrence's value.
func (m *FieldMap) Map() map[string]any {
	out := make(map[string]any, len(m.keys))
	for i := len(m.keys) - 1; i >= 0; i-- {
		out[m.keys[i]] = m.values[i]
	}
	return out
}

// String returns the fields in the form "Record(key: value, ...)".
func (m *FieldMap) String() string {
	var b strings.Builder
	b.WriteString("Record(")
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, m.values[i])
	}
	b.WriteString(")")
	return b.String()
}
