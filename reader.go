package awkio

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/kolkov/awkio/internal/split"
)

// Reader lazily decodes a character stream into a sequence of Records.
// Exactly one Reader corresponds to one open stream; iteration is
// forward-only and a Reader exhausted once keeps yielding an empty
// sequence (the stream is not rewound).
type Reader struct {
	cfg     Config
	file    *os.File // non-nil when the Reader owns the stream
	scan    *bufio.Scanner
	split   *split.Splitter
	hdr     *header
	hdrRead bool
	nr      int
	done    bool // EOF or MaxLines reached
	closed  bool // explicitly closed
}

// Open opens the named file and returns a Reader that owns it. The
// file is closed by Close, or automatically when a Records iteration
// stops on any path.
func Open(name string, cfg *Config) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewReader returns a Reader over an already-open stream. The stream
// is borrowed: Close does not close it. A nil cfg uses defaults.
// Compilation of a regular-expression field separator can fail.
func NewReader(src io.Reader, cfg *Config) (*Reader, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c.applyDefaults()
	sp, err := split.Get(c.FS)
	if err != nil {
		return nil, err
	}
	return &Reader{cfg: c, scan: bufio.NewScanner(src), split: sp}, nil
}

// Header returns the header field names, consuming the first line of
// the source if that has not happened yet. It returns nil when the
// Reader was not configured with Header, or when the source is empty.
func (r *Reader) Header() ([]string, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	if r.hdr == nil {
		return nil, nil
	}
	out := make([]string, len(r.hdr.keys))
	copy(out, r.hdr.keys)
	return out, nil
}

// Read returns the next Record, or io.EOF when the source is
// exhausted. The first call consumes the header line if configured.
// A fully blank line yields a Record with a single empty field.
func (r *Reader) Read() (*Record, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if r.done {
		return nil, io.EOF
	}
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	if r.done {
		return nil, io.EOF
	}
	if r.cfg.MaxLines > 0 && r.nr >= r.cfg.MaxLines {
		r.done = true
		return nil, io.EOF
	}
	line, err := r.readLine()
	if err != nil {
		if err == io.EOF {
			r.done = true
		}
		return nil, err
	}
	fields := r.split.Split(line)
	if r.hdr != nil {
		fields = alignFields(fields, len(r.hdr.keys))
	}
	r.nr++
	return newRecord(r.nr, fields, r.hdr), nil
}

// Records returns the Reader's lazy record sequence. Breaking out of
// the range releases the underlying file (when owned by this Reader)
// on all paths. Errors other than end-of-input are yielded as the
// second value, after which the sequence ends.
func (r *Reader) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		defer r.release()
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Close releases the underlying file when this Reader owns it and
// marks the Reader closed. Closing an already-exhausted Reader keeps
// Read returning io.EOF rather than ErrClosed, so reconstructed
// iterations over a spent Reader observe an empty sequence.
// Close is idempotent.
func (r *Reader) Close() error {
	err := r.release()
	if !r.done {
		r.closed = true
	}
	return err
}

// release closes the owned file, if any.
func (r *Reader) release() error {
	if r.file != nil {
		f := r.file
		r.file = nil
		return f.Close()
	}
	return nil
}

// readHeader consumes the first line as field names when configured.
// On an empty source the Reader is simply exhausted.
func (r *Reader) readHeader() error {
	if r.hdrRead || !r.cfg.Header {
		r.hdrRead = true
		return nil
	}
	r.hdrRead = true
	line, err := r.readLine()
	if err != nil {
		if err == io.EOF {
			r.done = true
			return nil
		}
		return err
	}
	r.hdr = newHeader(r.split.Split(line))
	return nil
}

// readLine returns the next line with trailing whitespace stripped,
// or io.EOF.
func (r *Reader) readLine() (string, error) {
	if !r.scan.Scan() {
		if err := r.scan.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scan.Text(), " \t\r\n\v\f"), nil
}

// alignFields fits a row to the header width: extra fields are
// dropped, missing fields are filled with empty strings.
func alignFields(fields []string, n int) []string {
	if len(fields) > n {
		return fields[:n]
	}
	for len(fields) < n {
		fields = append(fields, "")
	}
	return fields
}
