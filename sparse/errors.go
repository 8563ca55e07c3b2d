// SPDX-License-Identifier: MIT

package sparse

import "errors"

// ErrNilFactory is the panic value of NewFunc(nil).
var ErrNilFactory = errors.New("sparse: default factory must not be nil")
