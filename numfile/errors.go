// SPDX-License-Identifier: MIT
// Package: genops/numfile

package numfile

import "errors"

var (
	// ErrParse indicates a token that is not a finite number.
	ErrParse = errors.New("numfile: malformed number")

	// ErrRagged indicates matrix rows of different widths.
	ErrRagged = errors.New("numfile: ragged matrix row")

	// ErrEmpty indicates a file without any numbers.
	ErrEmpty = errors.New("numfile: no data")
)
