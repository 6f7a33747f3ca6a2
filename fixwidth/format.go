package fixwidth

import (
	"fmt"
	"strings"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/erraggy/csvtools/delim"
)

// Formatter rewrites rows against a measured WidthTable.
// It reuses its buffers between calls, so the slice returned by Format is only
// valid until the next call.
//
// Concurrency: Formatter instances are not safe for concurrent use.
type Formatter struct {
	widths  *WidthTable
	padding []int
	out     []string
}

// NewFormatter returns a Formatter for widths.
func NewFormatter(widths *WidthTable) *Formatter {
	return &Formatter{widths: widths}
}

// Paddings computes the slack of every field of row: zero for an empty field,
// otherwise the column width minus the trimmed length.
//
// A row with more fields than the table, or a field wider than its column,
// means the input differs from what was measured; the returned
// *csverrors.ParseError has no path or line, the caller knows those.
func Paddings(row []string, widths *WidthTable, dst []int) ([]int, error) {
	if len(row) > widths.Len() {
		return nil, &csverrors.ParseError{
			Message: fmt.Sprintf("record has %d fields but only %d column widths were measured", len(row), widths.Len()),
		}
	}
	dst = dst[:0]
	for i, field := range row {
		n := delim.TrimmedLen(field)
		if n == 0 {
			dst = append(dst, 0)
			continue
		}
		width, _ := widths.At(i)
		if n > width {
			return nil, &csverrors.ParseError{
				Message: fmt.Sprintf("field %d is %d bytes wide but column width was measured as %d", i, n, width),
			}
		}
		dst = append(dst, width-n)
	}
	return dst, nil
}

// Format returns the padded fields of row.
func (f *Formatter) Format(row []string) ([]string, error) {
	padding, err := Paddings(row, f.widths, f.padding)
	if err != nil {
		return nil, err
	}
	f.padding = padding

	f.out = f.out[:0]
	for i, field := range row {
		text := delim.TrimField(field)
		if i == 0 {
			f.out = append(f.out, text)
			continue
		}
		spaces := padding[i-1] + 1
		if padding[i] == 0 {
			// A field without slack also gets its own column width in front
			// of it, so full-width and empty fields are padded twice.
			width, _ := f.widths.At(i)
			spaces += width
		}
		f.out = append(f.out, strings.Repeat(" ", spaces)+text)
	}
	return f.out, nil
}

// FormatRow is a one-off form of Formatter.Format. The result is a new slice.
func FormatRow(row []string, widths *WidthTable) ([]string, error) {
	out, err := NewFormatter(widths).Format(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}
