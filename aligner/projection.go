package aligner

import (
	"github.com/erraggy/csvtools/csverrors"
)

// absent marks an output column the source header does not have.
const absent = -1

// Projection maps each reconciled column to a field position in one source.
// It is computed once per source from its header and reused for every row.
type Projection struct {
	columns   []string
	positions []int
}

// NewProjection finds every column of columns in header by exact (trimmed)
// name. The first occurrence wins when a header repeats a name.
func NewProjection(columns, header []string) Projection {
	positions := make([]int, len(columns))
	for i, name := range columns {
		positions[i] = absent
		for j, field := range header {
			if field == name {
				positions[i] = j
				break
			}
		}
	}
	return Projection{columns: columns, positions: positions}
}

// Positions returns the field position of every column, -1 where absent.
func (p Projection) Positions() []int {
	return p.positions
}

// Missing returns the columns the source does not provide.
func (p Projection) Missing() []string {
	var missing []string
	for i, pos := range p.positions {
		if pos == absent {
			missing = append(missing, p.columns[i])
		}
	}
	return missing
}

// Apply rearranges record into dst, reusing its storage. Present columns are
// copied verbatim (data fields are not trimmed); absent ones are empty.
// A record shorter than a recorded position yields a *csverrors.LookupError
// without path or line; the caller knows those.
func (p Projection) Apply(record, dst []string) ([]string, error) {
	dst = dst[:0]
	for i, pos := range p.positions {
		if pos == absent {
			dst = append(dst, "")
			continue
		}
		if pos >= len(record) {
			return nil, &csverrors.LookupError{
				Column:     p.columns[i],
				Index:      pos,
				FieldCount: len(record),
			}
		}
		dst = append(dst, record[pos])
	}
	return dst, nil
}
