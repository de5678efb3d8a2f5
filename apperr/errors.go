// Package apperr defines the error kinds shared across the string art
// generator so callers (chiefly the CLI) can branch on error kind with
// errors.Is rather than string matching.
package apperr

import "errors"

var (
	// ErrInvalidHex means a color string failed the "#RRGGBB" grammar.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrInvalidArg means a numeric argument was out of range, an enum value
	// was unrecognized, or two flags conflicted.
	ErrInvalidArg = errors.New("invalid argument")

	// ErrInputOpen means the input image file could not be opened.
	ErrInputOpen = errors.New("could not open input image")

	// ErrInputDecode means the input image file could not be decoded.
	ErrInputDecode = errors.New("could not decode input image")

	// ErrOutputWrite means an output artifact could not be written.
	ErrOutputWrite = errors.New("could not write output")
)
