// Package aligner concatenates delimited files whose column sets differ.
//
// Alignment happens in two steps over the same ordered list of sources:
//
//  1. Reconcile: read the header row of every source, count how often each
//     trimmed column name occurs across all headers, keep the names whose
//     count is strictly greater than the AtLeast threshold, and sort them.
//  2. Re-project: write the reconciled header, then every data row of every
//     source (in source order, then row order) with its fields rearranged to
//     the reconciled header. Columns a source lacks are written as empty fields.
//
// Note that the threshold is exclusive: with the default AtLeast of 1 a column
// must appear in at least two headers to be kept. A name repeated within one
// header counts once per occurrence.
//
// If no column survives the threshold, nothing is written at all (no output
// file is created) and the result reports Written == false. This is a
// successful outcome, not an error.
//
// # Quick Start
//
//	result, err := aligner.AlignWithOptions(
//		aligner.WithFilePaths("a.csv", "b.csv"),
//		aligner.WithOutputPath("merged.csv"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Columns, result.Rows)
//
// Or create a reusable Aligner instance:
//
//	a := aligner.New(aligner.DefaultConfig())
//	result, err := a.AlignToFile(delim.NewSources("a.csv", "b.csv"), "merged.csv")
//
// # Failure
//
// Every failure aborts the whole run: an input that cannot be opened
// ([csverrors.IOError]), a malformed record ([csverrors.ParseError]), or a data
// row with fewer fields than a column position recorded from its header
// ([csverrors.LookupError]). Output already written is left as-is; there is no
// temporary file and no rollback.
package aligner
