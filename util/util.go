package util

import (
	"golang.org/x/exp/constraints"
)

// FloorDiv rounds the quotient toward negative infinity.
func FloorDiv[A constraints.Signed](a A, b A) A {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod always returns a result with the sign of b.
func FloorMod[A constraints.Signed](a A, b A) A {
	return a - FloorDiv(a, b)*b
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func Signum[A constraints.Signed](num A) A {
	switch {
	case num > 0:
		return 1
	case num < 0:
		return -1
	default:
		return 0
	}
}
