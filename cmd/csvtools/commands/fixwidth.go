package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/csvtools"
	"github.com/erraggy/csvtools/fixwidth"
	"github.com/erraggy/csvtools/internal/cliutil"
)

// FixwidthFlags contains flags for the fixwidth command
type FixwidthFlags struct {
	dialectFlags
	Output  string
	Verbose bool
	Quiet   bool
}

// SetupFixwidthFlags creates and configures a FlagSet for the fixwidth command.
// Returns the FlagSet and a FixwidthFlags struct with bound flag variables.
func SetupFixwidthFlags() (*flag.FlagSet, *FixwidthFlags) {
	fs := flag.NewFlagSet("fixwidth", flag.ContinueOnError)
	flags := &FixwidthFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Delimiter, "d", "", "field delimiter: a single character, or tab, comma, semicolon, pipe, space (default: comma)")
	fs.StringVar(&flags.Delimiter, "delimiter", "", "field delimiter (same as -d)")
	fs.StringVar(&flags.Encoding, "encoding", "", "character set of the input, e.g. latin1, windows-1252, utf-16le (default: utf-8)")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log measured widths")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log measured widths")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress the summary (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress the summary (for pipelining)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: csvtools fixwidth [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Pad the fields of a delimited file with spaces so the columns line up\n")
		cliutil.Writef(fs.Output(), "when viewed as plain text. The output stays valid delimited data with the\n")
		cliutil.Writef(fs.Output(), "same rows and fields. Every row is data; there is no header handling.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  csvtools fixwidth report.csv\n")
		cliutil.Writef(fs.Output(), "  csvtools fixwidth -o pretty.csv report.csv\n")
		cliutil.Writef(fs.Output(), "  csvtools fixwidth -d tab report.tsv.gz | less -S\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  cat report.csv | csvtools fixwidth -q -\n")
		cliutil.Writef(fs.Output(), "  csvtools align -q -o merged.csv a.csv b.csv && csvtools fixwidth -q merged.csv\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The input is read twice; stdin is buffered in memory for that\n")
		cliutil.Writef(fs.Output(), "  - Widths are counted in bytes, so multi-byte characters may misalign\n")
	}

	return fs, flags
}

// HandleFixwidth executes the fixwidth command
func HandleFixwidth(args []string) error {
	fs, flags := SetupFixwidthFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("fixwidth command requires exactly one input file")
	}

	dialect, err := flags.Dialect()
	if err != nil {
		return err
	}

	inputPath := fs.Arg(0)
	outputPath := ""
	if flags.Output != "" {
		if outputPath, err = ValidateOutputPath(flags.Output, []string{inputPath}); err != nil {
			return err
		}
	}
	sources, err := LoadSources([]string{inputPath}, os.Stdin)
	if err != nil {
		return err
	}

	config := fixwidth.DefaultConfig()
	config.Dialect = dialect
	f := fixwidth.New(config)
	f.SetLogger(newLogger(flags.Verbose))

	startTime := time.Now()
	var result *fixwidth.Result
	if outputPath != "" {
		result, err = f.FixToFile(sources[0], outputPath)
	} else {
		result, err = f.Fix(sources[0], os.Stdout)
	}
	if err != nil {
		return err
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "\ncsvtools version: %s\n", csvtools.Version())
		cliutil.Writef(os.Stderr, "Input: %s\n", sources[0].Name())
		cliutil.Writef(os.Stderr, "Rows: %d\n", result.Rows)
		cliutil.Writef(os.Stderr, "Column widths: %v\n", result.Widths)
		cliutil.Writef(os.Stderr, "Total Time: %v\n", totalTime)
		if result.OutputPath != "" {
			cliutil.Successf(os.Stderr, "Output written to: %s\n", result.OutputPath)
		}
	}
	return nil
}
