// Package csverrors provides structured error types for csvtools.
//
// Import path: github.com/erraggy/csvtools/csverrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the failure categories of an align or
// fixwidth run. Every category is fatal to the operation that produced it; there
// is no partial-success mode.
//
// # Error Types
//
//   - [IOError]: a file cannot be opened, created, read or written
//   - [ParseError]: a record cannot be decoded as a well-formed delimited record
//   - [LookupError]: a computed field index does not exist in a record
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrIO]: Matches any [IOError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrLookup]: Matches any [LookupError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := aligner.AlignWithOptions(aligner.WithFilePaths("a.csv", "b.csv"))
//	if errors.Is(err, csverrors.ErrParse) {
//	    // a record in one of the inputs is malformed
//	}
//
//	var lookupErr *csverrors.LookupError
//	if errors.As(err, &lookupErr) {
//	    fmt.Printf("%s line %d has only %d fields\n", lookupErr.Path, lookupErr.Line, lookupErr.FieldCount)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method:
//
//	var ioErr *csverrors.IOError
//	if errors.As(err, &ioErr) && errors.Is(ioErr.Cause, os.ErrNotExist) {
//	    // the input file doesn't exist
//	}
package csverrors
