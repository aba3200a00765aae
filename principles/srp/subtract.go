package srp

// Subtractor subtracts the second operand from the first.
type Subtractor struct{}

func (Subtractor) Subtract(a, b float64) float64 { return a - b }
