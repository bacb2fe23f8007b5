// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: " so failures are easy to grep.
// Sentinels are returned wrapped with operation context; callers match
// them with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At and Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that the rows of a [][]float64 input differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf tags err with the failing operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
