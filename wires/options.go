// SPDX-License-Identifier: MIT

package wires

// Option customizes crossing enumeration.
type Option func(*config)

type config struct {
	indexed bool
}

// WithIndex enumerates crossings through an offset index of wire B's Runs
// instead of the full cross-product. Results and their order are unchanged.
// Worth it when both wires have many Runs.
func WithIndex() Option {
	return func(c *config) {
		c.indexed = true
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
