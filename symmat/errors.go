// SPDX-License-Identifier: MIT

package symmat

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned when a constructor receives a negative size.
	ErrBadSize = errors.New("symmat: size must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, size).
	// Set returns it; At and Ptr report absence instead.
	ErrOutOfRange = errors.New("symmat: index out of range")
)

// symErrorf wraps err with the SymMat method name and the offending coordinates.
func symErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("SymMat.%s(%d,%d): %w", method, i, j, err)
}
