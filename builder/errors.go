// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCurrencies indicates that a currency count is smaller than 1.
var ErrTooFewCurrencies = errors.New("builder: too few currencies")

// ErrBadPrice indicates a price that is zero, negative, NaN or infinite.
var ErrBadPrice = errors.New("builder: price must be positive and finite")

// ErrBadCycle indicates a cycle that cannot be injected: not closed, fewer
// than two distinct currencies, a repeated currency, or an index outside
// the matrix.
var ErrBadCycle = errors.New("builder: invalid cycle")

// ErrBadGain indicates a target cycle gain that is not positive and finite.
var ErrBadGain = errors.New("builder: gain must be positive and finite")

// wrapf attaches method context to a sentinel.
func wrapf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
