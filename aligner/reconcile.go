package aligner

import (
	"fmt"
	"sort"

	"github.com/erraggy/csvtools/delim"
)

// HeaderCounts maps a trimmed column name to the number of times it occurs
// across the headers of all sources.
type HeaderCounts map[string]int

// Add counts every name of one header. A name repeated within the header is
// counted once per occurrence.
func (c HeaderCounts) Add(header []string) {
	for _, name := range header {
		c[delim.TrimField(name)]++
	}
}

// Filter returns the names whose count is strictly greater than atLeast,
// sorted in byte order.
func (c HeaderCounts) Filter(atLeast int) []string {
	columns := make([]string, 0, len(c))
	for name, count := range c {
		if count > atLeast {
			columns = append(columns, name)
		}
	}
	sort.Strings(columns)
	return columns
}

// Reconciliation is the outcome of the header pass.
type Reconciliation struct {
	// Counts holds the occurrence count of every distinct column name.
	Counts HeaderCounts
	// Columns is the reconciled header: sorted, distinct, filtered.
	Columns []string
	// AtLeast is the threshold the columns were filtered with.
	AtLeast int
}

// Report lists every distinct column with its count and whether it was kept,
// ordered by name.
func (r *Reconciliation) Report() ColumnReport {
	kept := make(map[string]bool, len(r.Columns))
	for _, name := range r.Columns {
		kept[name] = true
	}
	stats := make([]ColumnStat, 0, len(r.Counts))
	for name, count := range r.Counts {
		stats = append(stats, ColumnStat{Name: name, Count: count, Kept: kept[name]})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return ColumnReport{AtLeast: r.AtLeast, Kept: len(r.Columns), Columns: stats}
}

// ColumnReport summarizes the header pass for display.
type ColumnReport struct {
	AtLeast int          `json:"at_least" yaml:"at_least"`
	Kept    int          `json:"kept" yaml:"kept"`
	Columns []ColumnStat `json:"columns" yaml:"columns"`
}

// ColumnStat describes one distinct column name.
type ColumnStat struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
	Kept  bool   `json:"kept" yaml:"kept"`
}

// Reconcile reads the header of every source and computes the reconciled header.
func (a *Aligner) Reconcile(sources []delim.Source) (*Reconciliation, error) {
	counts := make(HeaderCounts)
	for _, src := range sources {
		header, err := a.readHeader(src)
		if err != nil {
			return nil, err
		}
		counts.Add(header)
	}
	a.logger.Info("found columns", "count", len(counts))

	columns := counts.Filter(a.config.AtLeast)
	if a.config.AtLeast > 1 {
		a.logger.Info("columns left after filtering", "count", len(columns), "at_least", a.config.AtLeast)
	}
	return &Reconciliation{Counts: counts, Columns: columns, AtLeast: a.config.AtLeast}, nil
}

// readHeader opens src just long enough to read its first record.
func (a *Aligner) readHeader(src delim.Source) (header []string, err error) {
	records, err := src.Records(a.config.Dialect)
	if err != nil {
		return nil, fmt.Errorf("aligner: %w", err)
	}
	defer func() {
		if cerr := records.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("aligner: %w", cerr)
		}
	}()

	header, err = delim.ReadHeader(src.Name(), records)
	if err != nil {
		return nil, fmt.Errorf("aligner: %w", err)
	}
	return header, nil
}
