// SPDX-License-Identifier: MIT

package collection

import (
	"errors"
	"fmt"
)

// Sentinel errors for container operations. Every message carries the
// "collection: " prefix; match them with errors.Is.
var (
	// ErrEmptyCollection is returned by any removal or peek on an empty container.
	// The container stays empty and remains usable.
	ErrEmptyCollection = errors.New("collection: collection is empty")

	// ErrIndexOutOfRange is returned by positional access, insertion or removal
	// when the index falls outside the valid range. The container is unchanged.
	ErrIndexOutOfRange = errors.New("collection: index out of range")
)

// IndexError wraps ErrIndexOutOfRange with the offending index and the
// container size at the time of the call.
func IndexError(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size)
}
