// Package awkio provides AWK-like record and field access to
// delimited text files.
//
// awkio iterates over a file as a lazy sequence of records, each split
// into fields, with optional header-based field naming and a
// declarative transformation pipeline:
//   - Streaming evaluation — one line of lookahead, bounded memory
//   - Dual addressing — positional index, "$n" keys, header names
//   - Three-tier field splitting (whitespace runs, single byte, regex
//     via coregex)
//   - Column-oriented views with Python-style slicing
//
// # Quick Start
//
// Reading records:
//
//	r, err := awkio.Open("data.txt", &awkio.Config{Header: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for rec, err := range r.Records() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    name, _ := rec.Get("name")
//	    fmt.Println(rec.NR(), name)
//	}
//
// # Transformation Pipeline
//
// Parser applies per-field and per-record callbacks in a fixed order
// (field pre-filter, field function, field post-filter, record
// function, record post-filter) while keeping the sequence lazy:
//
//	p := awkio.NewParser("data.txt", nil)
//	p.FieldFunc = func(key, field string) any {
//	    n, _ := strconv.Atoi(field)
//	    return n * n
//	}
//	for v, err := range p.Parse() {
//	    // ...
//	}
//
// # Columns
//
// Column re-projects rows into columns, by index, header key or slice:
//
//	col := awkio.NewColumn("data.txt", nil)
//	for v, err := range col.Index(3) {
//	    // 4th field of every row
//	}
//
// # Configuration
//
// The [Config] type is shared by Reader, Parser and Column: field
// separator (FS), header consumption, insertion-order guarantee for
// dictionary-style outputs, and a cap on rows read.
//
// # Error Handling
//
// Addressing failures are reported as [FieldError], raised at the
// point of access (lazily, for sequence-producing operations). I/O
// errors propagate unwrapped; errors raised inside user callbacks
// propagate to the consumer of the sequence.
//
// # Concurrency
//
// Evaluation is single-threaded and pull-based. A Reader exclusively
// owns its stream for the duration of one iteration; sharing an open
// stream between readers is not supported.
package awkio
