package awkio

import (
	"io"
	"iter"
)

// Column is a column-oriented view over a row source. Every access
// opens and scans the file independently, so repeated calls are
// idempotent with respect to the file's content; Column holds no
// cursor between calls. With Header unset the first line is data (the
// header line appears as row 1); with Header set it is consumed as
// field names. MaxLines in the Config caps the data rows scanned per
// access and short-circuits reading.
type Column struct {
	// FieldFunc, when set, is applied to every value before emission.
	FieldFunc func(field string) string

	name string
	cfg  Config
}

// NewColumn returns a column view over the named file.
func NewColumn(name string, cfg *Config) *Column {
	return &Column{name: name, cfg: configOrDefault(cfg)}
}

// Index returns the lazy sequence of the column at position i across
// all rows, in row order. A negative i counts from the end and is
// resolved against the first row's field count, after which remaining
// rows stream. Errors, including an out-of-range column, surface at
// consumption of the sequence, not at call time.
func (c *Column) Index(i int) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		r, err := c.open()
		if err != nil {
			yield("", err)
			return
		}
		defer r.Close()
		idx := i
		resolved := i >= 0
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !resolved {
				idx += rec.NF()
				resolved = true
				if idx < 0 {
					yield("", fieldErrorIndex(i))
					return
				}
			}
			v, err := rec.Field(idx)
			if err != nil {
				yield("", err)
				return
			}
			if !yield(c.apply(v), nil) {
				return
			}
		}
	}
}

// Key returns the lazy sequence of the column under the named header
// key. The Column must be configured with Header; otherwise the
// sequence fails with a FieldError whose NoHeader flag is set.
func (c *Column) Key(name string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if !c.cfg.Header {
			yield("", &FieldError{Key: name, NoHeader: true})
			return
		}
		r, err := c.open()
		if err != nil {
			yield("", err)
			return
		}
		defer r.Close()
		if _, err := r.Header(); err != nil {
			yield("", err)
			return
		}
		if r.hdr == nil {
			// Empty source: no rows, nothing to validate against.
			return
		}
		pos, ok := r.hdr.index[name]
		if !ok {
			yield("", &FieldError{Key: name})
			return
		}
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			v, err := rec.Field(pos)
			if err != nil {
				yield("", err)
				return
			}
			if !yield(c.apply(v), nil) {
				return
			}
		}
	}
}

// Slice returns the columns selected by s, in slice order: one value
// sequence per selected column, each in row order. Negative bounds and
// steps are resolved against the first row's field count. Slicing
// scans every row up to MaxLines and materializes the result; this is
// the documented trade-off for out-of-order column access.
func (c *Column) Slice(s Slice) ([][]string, error) {
	r, err := c.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	first, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	idxs := s.sequence(first.NF())
	out := make([][]string, len(idxs))

	add := func(rec *Record) error {
		for j, idx := range idxs {
			v, err := rec.Field(idx)
			if err != nil {
				return err
			}
			out[j] = append(out[j], c.apply(v))
		}
		return nil
	}

	if err := add(first); err != nil {
		return nil, err
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := add(rec); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Get returns a lazy sequence of row tuples: one tuple per row, each
// holding the requested columns' values in the requested order.
// Duplicate keys are allowed. Keys are header names or "$n" positional
// keys; an unknown key fails at consumption of the sequence.
func (c *Column) Get(keys ...string) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		r, err := c.open()
		if err != nil {
			yield(nil, err)
			return
		}
		defer r.Close()
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			tuple := make([]string, len(keys))
			for j, k := range keys {
				v, err := rec.Get(k)
				if err != nil {
					yield(nil, err)
					return
				}
				tuple[j] = c.apply(v)
			}
			if !yield(tuple, nil) {
				return
			}
		}
	}
}

func (c *Column) open() (*Reader, error) {
	return Open(c.name, &c.cfg)
}

func (c *Column) apply(v string) string {
	if c.FieldFunc != nil {
		return c.FieldFunc(v)
	}
	return v
}
