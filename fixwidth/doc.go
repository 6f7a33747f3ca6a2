// Package fixwidth pretty-prints a delimited file so its columns line up when
// viewed as plain text, while the output stays valid delimited data.
//
// The source is read twice. The first pass measures every row (there is no
// header row) and records, per column index, the widest trimmed field. The
// second pass rewrites every field:
//
//   - the first field of a row is trimmed and never padded
//   - every later field is trimmed and prefixed with spaces: one separator
//     space plus the slack (column width minus trimmed length) of the field
//     before it
//   - a field with no slack of its own (it is exactly as wide as its column,
//     or empty) is additionally shifted right by the full column width
//
// Widths are measured in bytes of the trimmed, UTF-8 decoded text; no attempt
// is made to account for wide or combining characters.
//
// # Quick Start
//
//	result, err := fixwidth.FixWithOptions(
//		fixwidth.WithFilePath("report.csv"),
//		fixwidth.WithWriter(os.Stdout),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Fprintln(os.Stderr, result.Widths)
//
// Without an output path or writer, output goes to standard output.
//
// Because the source is opened twice, it must be re-openable and must not
// change between passes. Standard input should be spooled with
// [delim.ReadAllSource] first. A row found wider than what the first pass
// measured fails with a [csverrors.ParseError] instead of producing
// misaligned output.
package fixwidth
