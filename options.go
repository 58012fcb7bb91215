package segtree

// Option adjusts how a tree is constructed.
type Option func(*config) error

type config struct {
	exactCapacity bool
}

func defaultConfig() config {
	return config{}
}

// ExactCapacity sizes the node slices to 2*nextPow2(n) instead of the
// default 4*n.
//
// The default over-allocates so there is always room for the complete
// binary tree regardless of its exact height. Exact sizing trades a bit of
// arithmetic at construction for a smaller footprint on ranges far from a
// power of two; observable behavior is identical either way.
func ExactCapacity() Option {
	return func(c *config) error {
		c.exactCapacity = true
		return nil
	}
}

func (c config) capacityFor(size int) int {
	if c.exactCapacity {
		return 2 * nextPow2(size)
	}
	return 4 * size
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
