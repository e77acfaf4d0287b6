package awkio

import (
	"io"
	"iter"
)

// Parser wraps a Reader with a transformation and filter pipeline
// applied per field and per record. All callbacks are optional; a nil
// callback is the identity (functions) or "keep everything" (filters).
//
// The pipeline order per record is fixed: RecordPreFilter on the raw
// Record, then per field FieldPreFilter, FieldFunc and FieldPostFilter,
// then RecordFunc on the assembled FieldMap, then RecordPostFilter on
// whatever RecordFunc produced.
type Parser struct {
	// FieldFunc replaces each surviving field's value with its return
	// value. The result need not be textual.
	FieldFunc func(key, field string) any

	// RecordFunc replaces the whole record with its return value.
	// nr is the 1-based record number, nf the surviving field count.
	RecordFunc func(nr, nf int, rec *FieldMap) any

	// FieldPreFilter drops a field from the record before any
	// transformation when it returns false. Header alignment for the
	// remaining fields is preserved by key, not by position.
	FieldPreFilter func(key, field string) bool

	// FieldPostFilter drops a field after FieldFunc when it returns false.
	FieldPostFilter func(key string, v any) bool

	// RecordPreFilter drops a raw record before any field work when it
	// returns false.
	RecordPreFilter func(nr int, rec *Record) bool

	// RecordPostFilter drops the record's final value from the output
	// when it returns false. v is RecordFunc's return value, or the
	// FieldMap when no RecordFunc is set.
	RecordPostFilter func(nr, nf int, v any) bool

	name string
	src  io.Reader
	cfg  Config
}

// NewParser returns a Parser over the named file. The file is opened
// lazily by Parse; open and separator-compilation errors surface at
// first consumption of the sequence, not here.
func NewParser(name string, cfg *Config) *Parser {
	return &Parser{name: name, cfg: configOrDefault(cfg)}
}

// NewParserReader returns a Parser over an already-open stream.
func NewParserReader(src io.Reader, cfg *Config) *Parser {
	return &Parser{src: src, cfg: configOrDefault(cfg)}
}

func configOrDefault(cfg *Config) Config {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c.applyDefaults()
	return c
}

// Parse returns the lazy output sequence: one *FieldMap per surviving
// record, or RecordFunc's return value when that callback is set. No
// record is read further ahead than consumption requires, and the
// underlying stream is released when iteration stops on any path.
func (p *Parser) Parse() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		r, err := p.open()
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
			out, ok := p.transform(rec)
			if !ok {
				continue
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

func (p *Parser) open() (*Reader, error) {
	if p.name != "" {
		return Open(p.name, &p.cfg)
	}
	return NewReader(p.src, &p.cfg)
}

// transform runs one record through the pipeline. The second return
// value is false when a filter dropped the record.
func (p *Parser) transform(rec *Record) (any, bool) {
	nr := rec.NR()
	if p.RecordPreFilter != nil && !p.RecordPreFilter(nr, rec) {
		return nil, false
	}

	fm := newFieldMap(p.cfg.Ordered, rec.NF())
	for key, field := range rec.All() {
		if p.FieldPreFilter != nil && !p.FieldPreFilter(key, field) {
			continue
		}
		v := any(field)
		if p.FieldFunc != nil {
			v = p.FieldFunc(key, field)
		}
		if p.FieldPostFilter != nil && !p.FieldPostFilter(key, v) {
			continue
		}
		fm.set(key, v)
	}

	nf := fm.Len()
	var out any = fm
	if p.RecordFunc != nil {
		out = p.RecordFunc(nr, nf, fm)
	}
	if p.RecordPostFilter != nil && !p.RecordPostFilter(nr, nf, out) {
		return nil, false
	}
	return out, true
}
