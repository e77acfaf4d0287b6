package awkio

import (
	"strconv"
	"strings"
)

// header is the field-name table built from a source's first line.
// All records of one Reader share it by reference; it is never copied.
type header struct {
	keys  []string
	index map[string]int
}

func newHeader(keys []string) *header {
	h := &header{keys: keys, index: make(map[string]int, len(keys))}
	for i, k := range keys {
		// First occurrence wins for duplicate names.
		if _, ok := h.index[k]; !ok {
			h.index[k] = i
		}
	}
	return h
}

// dollarIndex parses a "$n" positional key (n starts at 1, as in AWK),
// returning the 0-based field position.
func dollarIndex(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "$")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
