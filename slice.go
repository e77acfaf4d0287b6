package awkio

import "math"

// Auto marks an omitted slice bound. An omitted Start means "from the
// beginning" (or the end, for negative steps); an omitted Stop means
// "through the end" (or the beginning).
const Auto = math.MinInt

// Slice selects a range of field positions with Python slice semantics:
// Stop is exclusive, negative bounds count from the end, and a negative
// Step walks the range in reverse. A Step of 0 is treated as 1.
//
//	Slice{Start: 1, Stop: 4, Step: 1}       // fields 1, 2, 3
//	Slice{Start: Auto, Stop: Auto, Step: -1} // all fields, reversed
//	Slice{Start: -2, Stop: Auto, Step: 1}    // last two fields
type Slice struct {
	Start, Stop, Step int
}

// SliceAll returns the slice selecting every position in order.
func SliceAll() Slice {
	return Slice{Start: Auto, Stop: Auto, Step: 1}
}

// indices resolves the slice against a sequence of length n, returning
// the concrete start, stop and step. Clamping follows Python's
// slice.indices: out-of-range bounds are pinned to the valid range
// rather than failing.
func (s Slice) indices(n int) (start, stop, step int) {
	step = s.Step
	if step == 0 {
		step = 1
	}

	start = s.Start
	if start == Auto {
		if step < 0 {
			start = n - 1
		} else {
			start = 0
		}
	} else if start < 0 {
		start += n
		if start < 0 {
			if step < 0 {
				start = -1
			} else {
				start = 0
			}
		}
	} else if start >= n {
		if step < 0 {
			start = n - 1
		} else {
			start = n
		}
	}

	stop = s.Stop
	if stop == Auto {
		if step < 0 {
			stop = -1
		} else {
			stop = n
		}
	} else if stop < 0 {
		stop += n
		if stop < 0 {
			if step < 0 {
				stop = -1
			} else {
				stop = 0
			}
		}
	} else if stop >= n {
		if step < 0 {
			stop = n - 1
		} else {
			stop = n
		}
	}

	return start, stop, step
}

// sequence returns the concrete positions the slice selects from a
// sequence of length n, in slice order.
func (s Slice) sequence(n int) []int {
	start, stop, step := s.indices(n)
	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out
}
