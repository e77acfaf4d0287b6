package awkio

// Config holds configuration options shared by Reader, Parser and Column.
type Config struct {
	// FS is the field separator (default: " ").
	// When set to a single space, runs of whitespace are treated as
	// separators and leading/trailing whitespace is ignored, matching
	// AWK's default. A single character splits on each occurrence.
	// Anything longer is compiled as a regular expression.
	FS string

	// Header, when true, consumes the first line of the source as
	// field names. Records are then addressable by those names and
	// the header line is never yielded as a record.
	Header bool

	// Ordered guarantees insertion order for dictionary-style outputs
	// (FieldMap iteration and Pairs). When false, iteration order of
	// such outputs is unspecified.
	Ordered bool

	// MaxLines caps the number of data records read from the source.
	// Zero means no limit. The header line, when consumed, does not
	// count against the cap.
	MaxLines int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.FS == "" {
		c.FS = " "
	}
}
