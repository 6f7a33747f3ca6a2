package delim

import (
	"io"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the rows of one sheet of an .xlsx workbook as records.
// Cell values are read as formatted text; the dialect is ignored.
type XLSXSource struct {
	Path string
	// Sheet names the sheet to read. Empty means the first sheet.
	Sheet string
}

// Name implements Source.
func (x XLSXSource) Name() string {
	if x.Sheet != "" {
		return x.Path + "#" + x.Sheet
	}
	return x.Path
}

// Records implements Source.
func (x XLSXSource) Records(_ Dialect) (Records, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, &csverrors.IOError{Path: x.Path, Op: "open", Cause: err}
	}

	sheet := x.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			_ = f.Close()
			return nil, &csverrors.ParseError{Path: x.Path, Message: "workbook has no sheets"}
		}
		sheet = sheets[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, &csverrors.ParseError{Path: x.Name(), Message: "reading sheet " + sheet, Cause: err}
	}
	return &xlsxRecords{name: x.Name(), file: f, rows: rows}, nil
}

type xlsxRecords struct {
	name string
	file *excelize.File
	rows *excelize.Rows
	line int
}

func (x *xlsxRecords) Read() ([]string, error) {
	if !x.rows.Next() {
		if err := x.rows.Error(); err != nil {
			return nil, &csverrors.ParseError{Path: x.name, Line: x.line + 1, Cause: err}
		}
		return nil, io.EOF
	}
	x.line++
	cols, err := x.rows.Columns()
	if err != nil {
		return nil, &csverrors.ParseError{Path: x.name, Line: x.line, Cause: err}
	}
	return cols, nil
}

func (x *xlsxRecords) Line() int {
	return x.line
}

func (x *xlsxRecords) Close() error {
	rowsErr := x.rows.Close()
	fileErr := x.file.Close()
	if rowsErr != nil {
		return &csverrors.IOError{Path: x.name, Op: "close", Cause: rowsErr}
	}
	if fileErr != nil {
		return &csverrors.IOError{Path: x.name, Op: "close", Cause: fileErr}
	}
	return nil
}
