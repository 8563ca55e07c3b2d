// SPDX-License-Identifier: MIT

package dense

import "errors"

// Sentinel errors carried by dense panics. Recover and match with errors.Is.
var (
	// ErrNegativeSize indicates a rectangle with negative width or height.
	ErrNegativeSize = errors.New("dense: rect width and height must be >= 0")
	// ErrNilFactory indicates a nil default-value factory.
	ErrNilFactory = errors.New("dense: default factory must not be nil")
)
