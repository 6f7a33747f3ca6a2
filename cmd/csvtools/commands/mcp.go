package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/csvtools/internal/cliutil"
	"github.com/erraggy/csvtools/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// the server is configured through CSVTOOLS_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: csvtools mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the align and fixwidth tools over the Model Context Protocol on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  CSVTOOLS_DELIMITER        default field delimiter (default: comma)\n")
		cliutil.Writef(fs.Output(), "  CSVTOOLS_ENCODING         default input character set (default: utf-8)\n")
		cliutil.Writef(fs.Output(), "  CSVTOOLS_ALIGN_AT_LEAST   default align threshold (default: 1)\n")
		cliutil.Writef(fs.Output(), "  CSVTOOLS_MAX_ALIGN_FILES  maximum inputs per align call (default: 50)\n")
		cliutil.Writef(fs.Output(), "  CSVTOOLS_MAX_INLINE_SIZE  maximum bytes of inline input and output (default: 10485760)\n")
	}
	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
