package cliutil

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// NewProgressBar returns a stderr progress bar counting max units, cleared
// once it finishes so it never mixes with the final summary.
func NewProgressBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
