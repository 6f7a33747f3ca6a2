package mcpserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/erraggy/csvtools/aligner"
	"github.com/erraggy/csvtools/delim"
	"github.com/erraggy/csvtools/internal/fileutil"
	"github.com/erraggy/csvtools/internal/pathutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type alignInput struct {
	Sources   []sourceInput `json:"sources"             jsonschema:"Delimited inputs to concatenate, in order (minimum 1)"`
	AtLeast   *int          `json:"at_least,omitempty"  jsonschema:"Keep columns found in more than this many headers (default 1, configurable via CSVTOOLS_ALIGN_AT_LEAST; 0 keeps the union)"`
	Delimiter string        `json:"delimiter,omitempty" jsonschema:"Field delimiter: a single character or one of tab, comma, semicolon, pipe, space (default comma, configurable via CSVTOOLS_DELIMITER)"`
	Encoding  string        `json:"encoding,omitempty"  jsonschema:"Input character set, e.g. latin1, windows-1251, utf-16le (default UTF-8)"`
	Report    bool          `json:"report,omitempty"    jsonschema:"Include every distinct column with its header count and whether it was kept"`
	Output    string        `json:"output,omitempty"    jsonschema:"File path to write the aligned file. If omitted the result is returned inline."`
}

type alignColumn struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Kept  bool   `json:"kept"`
}

type alignOutput struct {
	FileCount       int           `json:"file_count"`
	Columns         []string      `json:"columns"`
	DistinctColumns int           `json:"distinct_columns"`
	RowCount        int           `json:"row_count"`
	Written         bool          `json:"written"`
	Report          []alignColumn `json:"report,omitempty"`
	WrittenTo       string        `json:"written_to,omitempty"`
	Content         string        `json:"content,omitempty"`
	Summary         string        `json:"summary"`
}

func handleAlign(_ context.Context, _ *mcp.CallToolRequest, input alignInput) (*mcp.CallToolResult, alignOutput, error) {
	if len(input.Sources) == 0 {
		return errResult(fmt.Errorf("at least 1 source is required")), alignOutput{}, nil
	}
	if len(input.Sources) > cfg.MaxAlignFiles {
		return errResult(fmt.Errorf("too many sources: got %d, maximum is %d; set CSVTOOLS_MAX_ALIGN_FILES to increase",
			len(input.Sources), cfg.MaxAlignFiles)), alignOutput{}, nil
	}

	config := aligner.DefaultConfig()
	config.AtLeast = cfg.AlignAtLeast
	if input.AtLeast != nil {
		if *input.AtLeast < 0 {
			return errResult(fmt.Errorf("invalid at_least: %d; must not be negative", *input.AtLeast)), alignOutput{}, nil
		}
		config.AtLeast = *input.AtLeast
	}
	dialect, err := resolveDialect(input.Delimiter, input.Encoding)
	if err != nil {
		return errResult(err), alignOutput{}, nil
	}
	config.Dialect = dialect
	config.OutputMode = fileutil.OwnerReadWrite

	sources := make([]delim.Source, 0, len(input.Sources))
	for i, in := range input.Sources {
		src, err := in.resolve(i)
		if err != nil {
			return errResult(fmt.Errorf("sources[%d]: %w", i, err)), alignOutput{}, nil
		}
		sources = append(sources, src)
	}

	a := aligner.New(config)
	var result *aligner.AlignResult
	var inline *cappedBuffer
	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), alignOutput{}, nil
		}
		if err := pathutil.RejectInputOverwrite(cleanPath, filePaths(input.Sources)); err != nil {
			return errResult(err), alignOutput{}, nil
		}
		result, err = a.AlignToFile(sources, cleanPath)
	} else {
		inline = &cappedBuffer{limit: cfg.MaxInlineSize}
		result, err = a.AlignTo(sources, inline)
	}
	if err != nil {
		return errResult(inlineError(err)), alignOutput{}, nil
	}

	output := alignOutput{
		FileCount:       result.Files,
		Columns:         result.Columns,
		DistinctColumns: result.DistinctColumns,
		RowCount:        result.Rows,
		Written:         result.Written,
		WrittenTo:       result.OutputPath,
	}
	if output.Columns == nil {
		output.Columns = []string{}
	}
	if input.Report {
		output.Report = make([]alignColumn, 0, len(result.Report.Columns))
		for _, stat := range result.Report.Columns {
			output.Report = append(output.Report, alignColumn{Name: stat.Name, Count: stat.Count, Kept: stat.Kept})
		}
	}
	if inline != nil && result.Written {
		output.Content = inline.String()
	}
	output.Summary = buildAlignSummary(output, config.AtLeast)

	return nil, output, nil
}

func buildAlignSummary(output alignOutput, atLeast int) string {
	if !output.Written {
		return "No column occurs in more than " + formatCount(atLeast, "header") + " across " +
			formatCount(output.FileCount, "file") + "; nothing written."
	}
	summary := "Aligned " + formatCount(output.FileCount, "file") + " into " +
		formatCount(len(output.Columns), "column") + " and " + formatCount(output.RowCount, "row") + "."
	if dropped := output.DistinctColumns - len(output.Columns); dropped > 0 {
		summary += " " + strconv.Itoa(dropped) + " of " + strconv.Itoa(output.DistinctColumns) + " distinct columns dropped."
	}
	return summary
}
