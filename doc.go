// Package csvtools provides batch transformations over delimited tabular text files.
//
// csvtools offers two independent operations, each in its own package:
//
//   - aligner: concatenate several files whose column sets differ, producing a
//     single file with a unified, sorted header
//   - fixwidth: pretty-print a single file so its columns line up when viewed as
//     plain text, while the output stays valid delimited data
//
// Both operations read through the delim package, which provides the dialect
// (field delimiter, input character set), re-openable sources (plain, compressed,
// in-memory and spreadsheet inputs), record cursors and a record writer.
// Errors are classified by the csverrors package.
//
// # Installation
//
//	go get github.com/erraggy/csvtools
//
// # Quick Start
//
// Align files by column name, keeping columns present in more than one file:
//
//	result, err := aligner.AlignWithOptions(
//		aligner.WithFilePaths("a.csv", "b.csv", "c.csv"),
//		aligner.WithOutputPath("merged.csv"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Written {
//		fmt.Println("no shared columns, nothing written")
//	}
//
// Pretty-print a file to stdout:
//
//	_, err := fixwidth.FixWithOptions(
//		fixwidth.WithFilePath("report.csv"),
//		fixwidth.WithWriter(os.Stdout),
//	)
//
// # Command Line
//
// The csvtools binary exposes the same operations:
//
//	csvtools align --at-least 1 -o merged.csv a.csv b.csv c.csv
//	csvtools fixwidth -o pretty.csv report.csv
//	csvtools mcp
package csvtools
