// SPDX-License-Identifier: MIT

package stack

import "fmt"

// Capacity bounds for ArrayStack.
const (
	// MinCapacity is the floor the buffer never shrinks below.
	MinCapacity = 1

	// DefaultCapacity is the initial buffer size when WithCapacity is not given.
	DefaultCapacity = MinCapacity
)

const panicCapacityInvalid = "stack: WithCapacity: capacity must be >= %d, got %d"

// Option configures an ArrayStack at construction time.
type Option func(*options)

// options collects construction parameters.
type options struct {
	capacity int
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{capacity: DefaultCapacity}
}

// WithCapacity sets the initial buffer capacity.
// Panics if c < MinCapacity.
func WithCapacity(c int) Option {
	if c < MinCapacity {
		panic(fmt.Sprintf(panicCapacityInvalid, MinCapacity, c))
	}

	return func(o *options) { o.capacity = c }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
