// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/csvtools/csverrors"

// ValidateSingleInputSource ensures exactly one of a group of alternatives is set.
// option names the group in the returned *csverrors.ConfigError.
// sources is a variadic list of booleans indicating whether each alternative is set.
// noSourceMsg is the error message when none is set.
// multiSourceMsg is the error message when more than one is set.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	switch countSet(sources) {
	case 0:
		return &csverrors.ConfigError{Option: option, Message: noSourceMsg}
	case 1:
		return nil
	default:
		return &csverrors.ConfigError{Option: option, Message: multiSourceMsg}
	}
}

// ValidateAtMostOne ensures no more than one of a group of alternatives is set.
func ValidateAtMostOne(option, multiSourceMsg string, sources ...bool) error {
	if countSet(sources) > 1 {
		return &csverrors.ConfigError{Option: option, Message: multiSourceMsg}
	}
	return nil
}

func countSet(sources []bool) int {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	return n
}
