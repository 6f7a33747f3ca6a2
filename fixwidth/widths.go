package fixwidth

import (
	"errors"
	"io"

	"github.com/erraggy/csvtools/delim"
)

// WidthTable holds the widest trimmed field seen for each column index.
// It only grows: new columns start at zero and no entry ever shrinks.
type WidthTable struct {
	widths []int
}

// NewWidthTable returns an empty table.
func NewWidthTable() *WidthTable {
	return &WidthTable{}
}

// Len returns the number of columns measured so far.
func (t *WidthTable) Len() int {
	return len(t.widths)
}

// At returns the width of column i. ok is false when i is out of range.
func (t *WidthTable) At(i int) (width int, ok bool) {
	if i < 0 || i >= len(t.widths) {
		return 0, false
	}
	return t.widths[i], true
}

// Grow extends the table with zero widths up to n columns.
func (t *WidthTable) Grow(n int) {
	for len(t.widths) < n {
		t.widths = append(t.widths, 0)
	}
}

// Observe widens the table to cover row.
func (t *WidthTable) Observe(row []string) {
	t.Grow(len(row))
	for i, field := range row {
		if n := delim.TrimmedLen(field); n > t.widths[i] {
			t.widths[i] = n
		}
	}
}

// Widths returns a copy of the measured widths.
func (t *WidthTable) Widths() []int {
	out := make([]int, len(t.widths))
	copy(out, t.widths)
	return out
}

// ScanWidths measures every record of records. It returns the table and the
// number of records seen. Every record is data; there is no header.
func ScanWidths(records delim.Records) (*WidthTable, int, error) {
	table := NewWidthTable()
	rows := 0
	for {
		record, err := records.Read()
		if errors.Is(err, io.EOF) {
			return table, rows, nil
		}
		if err != nil {
			return nil, rows, err
		}
		table.Observe(record)
		rows++
	}
}
