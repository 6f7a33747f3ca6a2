package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/csvtools/fixwidth"
	"github.com/erraggy/csvtools/internal/fileutil"
	"github.com/erraggy/csvtools/internal/pathutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type fixwidthInput struct {
	Source    sourceInput `json:"source"              jsonschema:"The delimited input to pad"`
	Delimiter string      `json:"delimiter,omitempty" jsonschema:"Field delimiter: a single character or one of tab, comma, semicolon, pipe, space (default comma, configurable via CSVTOOLS_DELIMITER)"`
	Encoding  string      `json:"encoding,omitempty"  jsonschema:"Input character set, e.g. latin1, windows-1251, utf-16le (default UTF-8)"`
	Output    string      `json:"output,omitempty"    jsonschema:"File path to write the padded file. If omitted the result is returned inline."`
}

type fixwidthOutput struct {
	RowCount    int    `json:"row_count"`
	ColumnCount int    `json:"column_count"`
	Widths      []int  `json:"widths"`
	WrittenTo   string `json:"written_to,omitempty"`
	Content     string `json:"content,omitempty"`
	Summary     string `json:"summary"`
}

func handleFixwidth(_ context.Context, _ *mcp.CallToolRequest, input fixwidthInput) (*mcp.CallToolResult, fixwidthOutput, error) {
	dialect, err := resolveDialect(input.Delimiter, input.Encoding)
	if err != nil {
		return errResult(err), fixwidthOutput{}, nil
	}
	src, err := input.Source.resolve(0)
	if err != nil {
		return errResult(fmt.Errorf("source: %w", err)), fixwidthOutput{}, nil
	}

	f := fixwidth.New(fixwidth.Config{Dialect: dialect, OutputMode: fileutil.OwnerReadWrite})
	var result *fixwidth.Result
	var inline *cappedBuffer
	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), fixwidthOutput{}, nil
		}
		if err := pathutil.RejectInputOverwrite(cleanPath, filePaths([]sourceInput{input.Source})); err != nil {
			return errResult(err), fixwidthOutput{}, nil
		}
		result, err = f.FixToFile(src, cleanPath)
	} else {
		inline = &cappedBuffer{limit: cfg.MaxInlineSize}
		result, err = f.Fix(src, inline)
	}
	if err != nil {
		return errResult(inlineError(err)), fixwidthOutput{}, nil
	}

	output := fixwidthOutput{
		RowCount:    result.Rows,
		ColumnCount: len(result.Widths),
		Widths:      result.Widths,
		WrittenTo:   result.OutputPath,
	}
	if output.Widths == nil {
		output.Widths = []int{}
	}
	if inline != nil {
		output.Content = inline.String()
	}
	output.Summary = "Padded " + formatCount(output.RowCount, "row") + " across " + formatCount(output.ColumnCount, "column") + "."

	return nil, output, nil
}
