package srp

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Divider divides the first operand by the second.
type Divider struct{}

// Divide returns a/b, or ErrDivisionByZero when b is zero.
func (Divider) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
