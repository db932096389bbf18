package pattern

import "fmt"

// Interval restricts how many sibling terms a glob variable may consume.
// Max < 0 means unbounded.
type Interval struct {
	Min int
	Max int
}

// DefaultInterval is the unrestricted glob interval: zero or more.
func DefaultInterval() Interval {
	return Interval{Min: 0, Max: -1}
}

// Unbounded reports whether the interval has no upper limit.
func (iv Interval) Unbounded() bool { return iv.Max < 0 }

// Admits reports whether a consumption of n siblings satisfies the
// interval.
func (iv Interval) Admits(n int) bool {
	if n < iv.Min {
		return false
	}
	return iv.Unbounded() || n <= iv.Max
}

// validate checks interval well-formedness at pattern construction.
func (iv Interval) validate() error {
	if iv.Min < 0 {
		return fmt.Errorf("interval minimum %d is negative", iv.Min)
	}
	if !iv.Unbounded() && iv.Max < iv.Min {
		return fmt.Errorf("interval maximum %d below minimum %d", iv.Max, iv.Min)
	}
	return nil
}
