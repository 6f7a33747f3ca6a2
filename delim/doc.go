// Package delim provides reading and writing of delimited tabular text for csvtools.
//
// It is the collaborator both csvtools operations rely on for record decoding:
// the operations themselves never look at quoting or line termination.
//
// # Dialect
//
// A [Dialect] names the single-rune field delimiter and, optionally, the
// character set of the input. Inputs in another character set are decoded to
// UTF-8 through golang.org/x/text; output is always UTF-8.
//
//	d := delim.DefaultDialect()
//	d.Comma = ';'
//	d.Encoding = "latin1"
//
// # Sources
//
// A [Source] is a re-openable input: every call to Records returns a fresh
// cursor positioned at the first record. Operations that need two passes over
// the same data (fixwidth) simply open the source twice. Sources are assumed
// not to change between passes; this is not enforced.
//
//   - [FileSource]: a file on disk, transparently decompressed when its name
//     ends in .gz, .zst or .xz
//   - [XLSXSource]: the first (or a named) sheet of an .xlsx workbook
//   - [BytesSource]: in-memory content, e.g. spooled standard input
//
// [NewSource] picks the right kind for a path.
//
// # Records
//
// Records may have a variable number of fields. A malformed record surfaces
// as a [csverrors.ParseError] carrying the source name and line number.
//
// # Writing
//
// [Writer] emits one record at a time, quoting a field only when it contains
// the delimiter, a quote, or a line break. Leading and trailing spaces are
// written verbatim so padded output keeps its alignment.
package delim
