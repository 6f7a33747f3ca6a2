package delim

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Writer writes delimited records, one complete record per call.
//
// Unlike encoding/csv, a field is quoted only when it contains the delimiter,
// a double quote, or a line break (or when it is the sole, empty field of a
// record, so the record is not mistaken for a blank line). Leading spaces are
// written as-is.
//
// Concurrency: Writer instances are not safe for concurrent use.
type Writer struct {
	comma rune
	w     *bufio.Writer
	buf   []byte
}

// NewWriter returns a Writer using the delimiter of d.
func NewWriter(w io.Writer, d Dialect) *Writer {
	comma := d.Comma
	if !validComma(comma) {
		comma = DefaultComma
	}
	return &Writer{comma: comma, w: bufio.NewWriter(w)}
}

// WriteRecord assembles fields into a single terminated record and hands it
// to the buffered output.
func (w *Writer) WriteRecord(fields []string) error {
	w.buf = w.buf[:0]
	for i, field := range fields {
		if i > 0 {
			w.buf = utf8.AppendRune(w.buf, w.comma)
		}
		if w.needsQuotes(field) || (len(fields) == 1 && field == "") {
			w.buf = appendQuoted(w.buf, field)
			continue
		}
		w.buf = append(w.buf, field...)
	}
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	return err
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) needsQuotes(field string) bool {
	return strings.ContainsRune(field, w.comma) || strings.ContainsAny(field, "\"\r\n")
}

func appendQuoted(buf []byte, field string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			buf = append(buf, '"')
		}
		buf = append(buf, field[i])
	}
	return append(buf, '"')
}
