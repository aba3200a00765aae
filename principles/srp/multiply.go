package srp

// Multiplier multiplies two operands.
type Multiplier struct{}

func (Multiplier) Multiply(a, b float64) float64 { return a * b }
