// Package mathx holds the integer helpers used to derive clock dividers.
package mathx

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// CeilDiv returns ceil(a/b). It returns 0 when b is 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Log2Ceil returns the smallest k with 1<<k >= n. Log2Ceil(0) is 0.
func Log2Ceil(n uint32) int {
	if n <= 1 {
		return 0
	}
	return bits.Len32(n - 1)
}
