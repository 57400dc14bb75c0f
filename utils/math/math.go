package math

import "golang.org/x/exp/constraints"

// DivCeil divides and rounds toward positive infinity. Operands are expected
// to be non-negative.
func DivCeil[T constraints.Integer](dividend, divisor T) T {
	q := dividend / divisor
	if dividend%divisor != 0 {
		q++
	}
	return q
}

func DivFloor[T constraints.Integer](dividend, divisor T) T {
	return dividend / divisor
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
