package delim

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"

	"github.com/erraggy/csvtools/csverrors"
)

// Records is a sequential cursor over the records of one source.
//
// Concurrency: Records values are not safe for concurrent use.
type Records interface {
	// Read returns the next record, or io.EOF after the last one.
	// The returned slice is owned by the caller.
	Read() ([]string, error)
	// Line returns the 1-based line number where the last record read starts.
	Line() int
	// Close releases the underlying input.
	Close() error
}

// utf8BOM is stripped from the start of text input.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvRecords reads records with encoding/csv in flexible mode.
type csvRecords struct {
	name   string
	r      *csv.Reader
	closer io.Closer
	line   int
}

// newCSVRecords wraps rc in a csv.Reader configured for d. rc is closed by
// the returned cursor, or immediately if setup fails.
func newCSVRecords(name string, rc io.ReadCloser, d Dialect) (Records, error) {
	if err := d.Validate(); err != nil {
		_ = rc.Close()
		return nil, err
	}
	enc, _ := d.decoding()

	var in io.Reader = rc
	if enc != nil {
		in = enc.NewDecoder().Reader(in)
	}
	br := bufio.NewReader(in)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.Comma = d.Comma
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = false

	return &csvRecords{name: name, r: r, closer: rc}, nil
}

func (c *csvRecords) Read() ([]string, error) {
	record, err := c.r.Read()
	if err == nil {
		c.line, _ = c.r.FieldPos(0)
		return record, nil
	}
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return nil, &csverrors.ParseError{Path: c.name, Line: csvErr.Line, Cause: csvErr.Err}
	}
	return nil, &csverrors.IOError{Path: c.name, Op: "read", Cause: err}
}

func (c *csvRecords) Line() int {
	return c.line
}

func (c *csvRecords) Close() error {
	if err := c.closer.Close(); err != nil {
		return &csverrors.IOError{Path: c.name, Op: "close", Cause: err}
	}
	return nil
}

// ReadHeader reads the first record of a cursor and trims every name.
// A source without any record yields a ParseError.
func ReadHeader(name string, records Records) ([]string, error) {
	header, err := records.Read()
	if errors.Is(err, io.EOF) {
		return nil, &csverrors.ParseError{Path: name, Message: "missing header"}
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = TrimField(header[i])
	}
	return header, nil
}
