// Package saturating provides arithmetic primitives that stick to the representable range of
// their operand type instead of wrapping around on overflow.
package saturating

import (
	"math"

	"github.com/iotaledger/hive.go/constraints"
)

// Add returns x + y, saturating at the representable range of T instead of wrapping.
func Add[T constraints.Numeric](x T, y T) T {
	result := x + y

	// floats saturate to an infinity on their own
	if isFloat[T]() {
		return result
	}

	if y > 0 {
		if result < x {
			return MaxValue[T]()
		}
	} else if result > x {
		return MinValue[T]()
	}

	return result
}

// Sub returns x - y, saturating at the representable range of T instead of wrapping.
func Sub[T constraints.Numeric](x T, y T) T {
	result := x - y

	if isFloat[T]() {
		return result
	}

	if y > 0 {
		if result > x {
			return MinValue[T]()
		}
	} else if result < x {
		return MaxValue[T]()
	}

	return result
}

// Mul returns x * y, saturating at the representable range of T instead of wrapping.
func Mul[T constraints.Numeric](x T, y T) T {
	result := x * y

	if isFloat[T]() {
		return result
	}

	if x == 0 {
		return result
	}

	// MinValue * -1 wraps back to MinValue and would slip through the quotient check below
	if negOne := T(0) - 1; !isUnsigned[T]() && ((x == negOne && y == MinValue[T]()) || (y == negOne && x == MinValue[T]())) {
		return MaxValue[T]()
	}

	if result/x == y {
		return result
	}

	if (x > 0) == (y > 0) {
		return MaxValue[T]()
	}

	return MinValue[T]()
}

// Div returns x / y, saturating at the representable range of T instead of wrapping. Division by
// zero carries its usual semantics (a runtime panic for integers, an infinity or NaN for floats)
// and has to be guarded by the caller.
func Div[T constraints.Numeric](x T, y T) T {
	if isFloat[T]() {
		return x / y
	}

	// the only integer quotient that overflows: MinValue / -1 wraps back to MinValue
	if negOne := T(0) - 1; !isUnsigned[T]() && y == negOne && x == MinValue[T]() {
		return MaxValue[T]()
	}

	return x / y
}

// MaxValue returns the largest value representable by T. For floats this is positive infinity.
func MaxValue[T constraints.Numeric]() T {
	if isFloat[T]() {
		return T(math.Inf(1))
	}

	var zero T
	if isUnsigned[T]() {
		// zero minus one wraps around to all ones
		return zero - 1
	}

	// double up to the highest power of two that still fits, then fill the remaining bits
	highestBit := T(1)
	for next := highestBit * 2; next > highestBit; next = highestBit * 2 {
		highestBit = next
	}

	return highestBit + (highestBit - 1)
}

// MinValue returns the smallest value representable by T. For floats this is negative infinity.
func MinValue[T constraints.Numeric]() T {
	if isFloat[T]() {
		return T(math.Inf(-1))
	}

	if isUnsigned[T]() {
		var zero T

		return zero
	}

	return -MaxValue[T]() - 1
}

// isFloat returns true if T is a floating point type.
func isFloat[T constraints.Numeric]() bool {
	return T(1)/T(2) != 0
}

// isUnsigned returns true if T is an unsigned integer type.
func isUnsigned[T constraints.Numeric]() bool {
	var zero T

	return zero-1 > 0
}
