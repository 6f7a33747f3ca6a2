package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/erraggy/csvtools"
	"github.com/erraggy/csvtools/aligner"
	"github.com/erraggy/csvtools/internal/cliutil"
)

// AlignFlags contains flags for the align command
type AlignFlags struct {
	dialectFlags
	Output  string
	AtLeast int
	Report  string
	Verbose bool
	Quiet   bool
}

// SetupAlignFlags creates and configures a FlagSet for the align command.
// Returns the FlagSet and an AlignFlags struct with bound flag variables.
func SetupAlignFlags() (*flag.FlagSet, *AlignFlags) {
	fs := flag.NewFlagSet("align", flag.ContinueOnError)
	flags := &AlignFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (required)")
	fs.StringVar(&flags.Output, "output", "", "output file path (required)")
	fs.IntVar(&flags.AtLeast, "at-least", aligner.DefaultAtLeast, "keep columns appearing in MORE than this many input headers")
	fs.StringVar(&flags.Delimiter, "d", "", "field delimiter: a single character, or tab, comma, semicolon, pipe, space (default: comma)")
	fs.StringVar(&flags.Delimiter, "delimiter", "", "field delimiter (same as -d)")
	fs.StringVar(&flags.Encoding, "encoding", "", "character set of the inputs, e.g. latin1, windows-1252, utf-16le (default: utf-8)")
	fs.StringVar(&flags.Report, "report", "", "print the column report to stdout (text, json, yaml)")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log column counts and show progress")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log column counts and show progress")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress the summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress the summary")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: csvtools align [flags] -o <output> <file1> [file2...]\n\n")
		cliutil.Writef(fs.Output(), "Concatenate delimited files whose columns differ. The output header holds\n")
		cliutil.Writef(fs.Output(), "every column name found in MORE than --at-least input headers, sorted;\n")
		cliutil.Writef(fs.Output(), "rows from files lacking a column get an empty field there.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nInputs:\n")
		cliutil.Writef(fs.Output(), "  Files ending in .gz, .zst or .xz are decompressed; .xlsx files are read\n")
		cliutil.Writef(fs.Output(), "  from their first sheet. Use - to read one input from stdin.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  csvtools align -o merged.csv jan.csv feb.csv mar.csv\n")
		cliutil.Writef(fs.Output(), "  csvtools align --at-least 0 -o union.csv a.csv b.csv\n")
		cliutil.Writef(fs.Output(), "  csvtools align -d ';' --encoding latin1 -o out.csv export1.csv export2.csv\n")
		cliutil.Writef(fs.Output(), "  csvtools align -q --report yaml -o merged.csv *.csv\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The default --at-least of 1 drops columns found in only one file;\n")
		cliutil.Writef(fs.Output(), "    use --at-least 0 for a plain union\n")
		cliutil.Writef(fs.Output(), "  - If no column survives, no output file is created and the command succeeds\n")
	}

	return fs, flags
}

// HandleAlign executes the align command
func HandleAlign(args []string) error {
	fs, flags := SetupAlignFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("align command requires at least 1 input file")
	}
	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("align command requires an output file (-o)")
	}
	if flags.AtLeast < 0 {
		return fmt.Errorf("invalid --at-least %d: must not be negative", flags.AtLeast)
	}
	if flags.Report != "" {
		if err := ValidateOutputFormat(flags.Report); err != nil {
			return err
		}
	}

	dialect, err := flags.Dialect()
	if err != nil {
		return err
	}

	filePaths := fs.Args()
	outputPath, err := ValidateOutputPath(flags.Output, filePaths)
	if err != nil {
		return err
	}
	sources, err := LoadSources(filePaths, os.Stdin)
	if err != nil {
		return err
	}

	config := aligner.DefaultConfig()
	config.AtLeast = flags.AtLeast
	config.Dialect = dialect

	a := aligner.New(config)
	a.SetLogger(newLogger(flags.Verbose))
	if flags.Verbose && !flags.Quiet {
		a.SetProgress(cliutil.NewProgressBar(len(sources), "aligning"))
	}

	startTime := time.Now()
	result, err := a.AlignToFile(sources, outputPath)
	if err != nil {
		return err
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		printAlignSummary(result, len(filePaths), totalTime)
	}

	switch flags.Report {
	case "":
	case FormatText:
		printColumnReport(result.Report)
	default:
		if err := OutputStructured(os.Stdout, result.Report, flags.Report); err != nil {
			return err
		}
	}
	return nil
}

// printAlignSummary writes the run statistics to stderr.
func printAlignSummary(result *aligner.AlignResult, files int, totalTime time.Duration) {
	cliutil.Writef(os.Stderr, "Delimited File Aligner\n")
	cliutil.Writef(os.Stderr, "======================\n\n")
	cliutil.Writef(os.Stderr, "csvtools version: %s\n", csvtools.Version())
	cliutil.Writef(os.Stderr, "Input files: %d\n", files)
	cliutil.Writef(os.Stderr, "Distinct columns: %d\n", result.DistinctColumns)
	cliutil.Writef(os.Stderr, "Kept columns: %d (found in more than %d)\n", len(result.Columns), result.Report.AtLeast)
	cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

	if !result.Written {
		cliutil.Warnf(os.Stderr, "no column found in more than %d input(s); nothing written\n", result.Report.AtLeast)
		return
	}
	cliutil.Writef(os.Stderr, "Columns: %s\n", strings.Join(result.Columns, ", "))
	cliutil.Writef(os.Stderr, "Rows: %d\n", result.Rows)
	cliutil.Successf(os.Stderr, "Output written to: %s\n", result.OutputPath)
}

// printColumnReport writes the column report as a plain table to stdout.
func printColumnReport(report aligner.ColumnReport) {
	width := len("COLUMN")
	for _, col := range report.Columns {
		width = max(width, len(col.Name))
	}
	cliutil.Writef(os.Stdout, "%-*s  %5s  %s\n", width, "COLUMN", "COUNT", "KEPT")
	for _, col := range report.Columns {
		kept := "no"
		if col.Kept {
			kept = "yes"
		}
		cliutil.Writef(os.Stdout, "%-*s  %5d  %s\n", width, col.Name, col.Count, kept)
	}
}
