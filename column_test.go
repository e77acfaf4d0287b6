package awkio_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kolkov/awkio"
)

// columnFixture is the 5-row example file: a header line and four data
// rows of seven columns.
const columnFixture = "A B C D E F G\n" +
	"2 8 0 0 5 7 7\n" +
	"1 0 0 0 9 7 2\n" +
	"2 3 5 6 6 6 8\n" +
	"2 8 0 0 0 0 0\n"

// collectValues drains a column value sequence.
func collectValues(t *testing.T, seq func(yield func(string, error) bool)) []string {
	t.Helper()
	var out []string
	for v, err := range seq {
		if err != nil {
			t.Fatalf("column sequence failed: %v", err)
		}
		out = append(out, v)
	}
	return out
}

func TestColumnIndex(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), nil)

	// Without a header flag the header line is row 1.
	got := collectValues(t, c.Index(3))
	want := []string{"D", "0", "0", "6", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Index(3) = %q, want %q", got, want)
	}
}

func TestColumnIndexNegative(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), nil)

	got := collectValues(t, c.Index(-1))
	want := []string{"G", "7", "2", "8", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Index(-1) = %q, want %q", got, want)
	}
}

func TestColumnIndexOutOfRange(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), nil)

	for _, i := range []int{10, -10} {
		// The error surfaces at consumption, not at call time.
		seq := c.Index(i)
		var firstErr error
		for _, err := range seq {
			firstErr = err
			break
		}
		if _, ok := awkio.IsFieldError(firstErr); !ok {
			t.Errorf("Index(%d) error = %v, want FieldError", i, firstErr)
		}
	}
}

func TestColumnKey(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), &awkio.Config{Header: true})

	got := collectValues(t, c.Key("C"))
	want := []string{"0", "0", "5", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Key(C) = %q, want %q", got, want)
	}
}

func TestColumnKeyErrors(t *testing.T) {
	name := writeFile(t, columnFixture)

	// Header-key access without a header configured.
	c := awkio.NewColumn(name, nil)
	var firstErr error
	for _, err := range c.Key("C") {
		firstErr = err
		break
	}
	fe, ok := awkio.IsFieldError(firstErr)
	if !ok || !fe.NoHeader {
		t.Errorf("Key without header: error = %v, want FieldError with NoHeader", firstErr)
	}

	// Unknown header key.
	c = awkio.NewColumn(name, &awkio.Config{Header: true})
	firstErr = nil
	for _, err := range c.Key("Z") {
		firstErr = err
		break
	}
	if fe, ok := awkio.IsFieldError(firstErr); !ok || fe.NoHeader {
		t.Errorf("Key(Z): error = %v, want FieldError for unknown key", firstErr)
	}
}

func TestColumnSliceReverseMaxLines(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), &awkio.Config{MaxLines: 3})

	got, err := c.Slice(awkio.Slice{Start: awkio.Auto, Stop: awkio.Auto, Step: -1})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	// Columns in reverse order, limited to the first 3 rows
	// (header row plus two data rows).
	want := [][]string{
		{"G", "7", "2"},
		{"F", "7", "7"},
		{"E", "5", "9"},
		{"D", "0", "0"},
		{"C", "0", "0"},
		{"B", "8", "0"},
		{"A", "2", "1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice([::-1]) = %q, want %q", got, want)
	}
}

func TestColumnSliceRange(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), nil)

	got, err := c.Slice(awkio.Slice{Start: 1, Stop: 3, Step: 1})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	want := [][]string{
		{"B", "8", "0", "3", "8"},
		{"C", "0", "0", "5", "0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice([1:3]) = %q, want %q", got, want)
	}
}

func TestColumnSliceEmptyFile(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, ""), nil)
	got, err := c.Slice(awkio.SliceAll())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Slice on empty file = %v, want empty", got)
	}
}

func TestColumnGet(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), &awkio.Config{Header: true})

	var got [][]string
	for tuple, err := range c.Get("A", "C", "E") {
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		got = append(got, tuple)
	}
	want := [][]string{
		{"2", "0", "5"},
		{"1", "0", "9"},
		{"2", "5", "6"},
		{"2", "0", "0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get(A, C, E) = %q, want %q", got, want)
	}
}

// Requested order wins over column order, and duplicates are allowed.
func TestColumnGetOrderAndDuplicates(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, "x y\n1 2\n"), &awkio.Config{Header: true})

	var got [][]string
	for tuple, err := range c.Get("y", "x", "y") {
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		got = append(got, tuple)
	}
	want := [][]string{{"2", "1", "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get(y, x, y) = %q, want %q", got, want)
	}
}

// Positional "$n" keys work without a header, and the header line then
// appears as the first tuple.
func TestColumnGetPositional(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, "x y\n1 2\n"), nil)

	var got [][]string
	for tuple, err := range c.Get("$2", "$1") {
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		got = append(got, tuple)
	}
	want := [][]string{{"y", "x"}, {"2", "1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get($2, $1) = %q, want %q", got, want)
	}
}

func TestColumnFieldFunc(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, "a b\nc d\n"), nil)
	c.FieldFunc = strings.ToUpper

	got := collectValues(t, c.Index(0))
	if !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("Index(0) with FieldFunc = %q, want [A C]", got)
	}
}

// Every access re-reads the source from the start: repeated calls are
// independent and idempotent.
func TestColumnRepeatedAccess(t *testing.T) {
	c := awkio.NewColumn(writeFile(t, columnFixture), nil)

	first := collectValues(t, c.Index(0))
	second := collectValues(t, c.Index(0))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Index(0) differ: %q vs %q", first, second)
	}
}

func TestColumnMissingFile(t *testing.T) {
	c := awkio.NewColumn("/nonexistent/path.txt", nil)
	var firstErr error
	for _, err := range c.Index(0) {
		firstErr = err
		break
	}
	if firstErr == nil {
		t.Error("Index over a missing file should yield an error")
	}
}
