// Package srp holds the single-responsibility arithmetic components.
// Each operation is its own type so it can change and be tested without
// touching the others; none shares state or a base type with the rest.
package srp

// Adder adds two operands.
type Adder struct{}

func (Adder) Add(a, b float64) float64 { return a + b }
