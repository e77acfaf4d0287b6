package awkio

import (
	"fmt"
	"iter"
	"strings"
)

// Record is one line of a source split into fields. Fields are
// addressable by 0-based position, by "$n" positional key (1-based, as
// in AWK), or by header name when the source has a header. Records are
// immutable once constructed.
type Record struct {
	nr     int
	fields []string
	hdr    *header
}

func newRecord(nr int, fields []string, hdr *header) *Record {
	return &Record{nr: nr, fields: fields, hdr: hdr}
}

// NR returns the 1-based record number, as in AWK's NR variable.
func (r *Record) NR() int {
	return r.nr
}

// NF returns the number of fields, as in AWK's NF variable.
func (r *Record) NF() int {
	return len(r.fields)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Field returns the field at position i. A negative i counts from the
// end. Positions outside [-NF, NF) fail with a FieldError.
func (r *Record) Field(i int) (string, error) {
	idx := i
	if idx < 0 {
		idx += len(r.fields)
	}
	if idx < 0 || idx >= len(r.fields) {
		return "", fieldErrorIndex(i)
	}
	return r.fields[idx], nil
}

// Get returns the field addressed by key: a header name, or a "$n"
// positional key. Header names take precedence over the "$n" form.
// An unknown key fails with a FieldError; a name lookup on a headerless
// record fails with a FieldError whose NoHeader flag is set.
func (r *Record) Get(key string) (string, error) {
	if r.hdr != nil {
		if i, ok := r.hdr.index[key]; ok {
			return r.fields[i], nil
		}
	}
	if i, ok := dollarIndex(key); ok {
		if i >= len(r.fields) {
			return "", &FieldError{Key: key}
		}
		return r.fields[i], nil
	}
	return "", &FieldError{Key: key, NoHeader: r.hdr == nil}
}

// Slice returns the fields selected by s, in slice order. Like sequence
// slicing, out-of-range bounds are clamped rather than failing.
func (r *Record) Slice(s Slice) []string {
	idxs := s.sequence(len(r.fields))
	out := make([]string, len(idxs))
	for j, i := range idxs {
		out[j] = r.fields[i]
	}
	return out
}

// Fields returns a copy of the field values in positional order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Keys returns the record's keys in positional order: the header names
// when a header is present, otherwise "$1" through "$NF".
func (r *Record) Keys() []string {
	out := make([]string, len(r.fields))
	for i := range r.fields {
		out[i] = r.key(i)
	}
	return out
}

// All returns an iterator over (key, field) pairs in positional order.
// Each call starts a fresh iteration from the first field.
func (r *Record) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i, f := range r.fields {
			if !yield(r.key(i), f) {
				return
			}
		}
	}
}

// Map returns the record as a key-to-field map.
// Duplicate header names keep the first occurrence's field.
func (r *Record) Map() map[string]string {
	out := make(map[string]string, len(r.fields))
	for i := len(r.fields) - 1; i >= 0; i-- {
		out[r.key(i)] = r.fields[i]
	}
	return out
}

// String returns the record in the form "Record(key: value, ...)" with
// keys in positional order. Intended for debugging, not for parsing.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("Record(")
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", r.key(i), f)
	}
	b.WriteString(")")
	return b.String()
}

// key returns the key for position i: the header name when present,
// otherwise the "$n" form.
func (r *Record) key(i int) string {
	if r.hdr != nil && i < len(r.hdr.keys) {
		return r.hdr.keys[i]
	}
	return fmt.Sprintf("$%d", i+1)
}
