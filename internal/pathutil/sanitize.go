package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// New file.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}

// RejectInputOverwrite fails when output names the same file as one of
// inputs. Paths are compared after resolving them to absolute paths, and by
// file identity when both exist, so hard links and differently spelled paths
// are caught too. The stdin marker "-" never matches.
func RejectInputOverwrite(output string, inputs []string) error {
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("pathutil: invalid output path: %w", err)
	}
	outInfo, outErr := os.Stat(absOutput)

	for _, input := range inputs {
		if input == "-" {
			continue
		}
		absInput, err := filepath.Abs(input)
		if err != nil {
			return fmt.Errorf("pathutil: invalid input path %s: %w", input, err)
		}
		if absInput == absOutput {
			return fmt.Errorf("pathutil: output file %s would overwrite input file %s", output, input)
		}
		if outErr != nil {
			continue
		}
		if inInfo, err := os.Stat(absInput); err == nil && os.SameFile(inInfo, outInfo) {
			return fmt.Errorf("pathutil: output file %s would overwrite input file %s", output, input)
		}
	}
	return nil
}
