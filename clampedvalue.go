// Package clampedvalue provides a generic container that stores a value together with a minimum
// and a maximum and ensures that the value always stays within those bounds.
package clampedvalue

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/bread42/clamped-value/saturating"
)

// ClampedValue is a value that is guaranteed to stay within the closed interval between a minimum
// and a maximum.
//
// The invariant min <= value <= max is established by New and holds after every successful mutation.
// Mutators that would have to break it without clamping (SetMin, SetMax) refuse the mutation and
// leave the container untouched, while the value mutators (Set, Add, Sub, Mul, Div) clamp the raw
// result back into the interval instead.
//
// A ClampedValue performs no internal synchronization. If it is shared between goroutines, access
// has to be serialized externally.
type ClampedValue[T constraints.Numeric] struct {
	value T
	min   T
	max   T
}

// New creates a new ClampedValue with the given bounds and initial value.
//
// It returns an error wrapping ErrInvalidRange if min is larger than max and an error wrapping
// ErrValueOutOfBounds if value does not lie within the bounds. NaN arguments are rejected the same
// way because they can not be ordered against the bounds.
func New[T constraints.Numeric](min T, value T, max T) (*ClampedValue[T], error) {
	// NaN fails every ordered comparison and would slip through the checks below
	if min != min || max != max {
		return nil, ierrors.Wrap(ErrInvalidRange, "bounds cannot be NaN")
	}
	if value != value {
		return nil, ierrors.Wrap(ErrValueOutOfBounds, "value cannot be NaN")
	}

	if min > max {
		return nil, ierrors.Wrapf(ErrInvalidRange, "minimum %v is larger than maximum %v", min, max)
	}
	if value < min || value > max {
		return nil, ierrors.Wrapf(ErrValueOutOfBounds, "value %v does not lie within [%v, %v]", value, min, max)
	}

	return &ClampedValue[T]{
		value: value,
		min:   min,
		max:   max,
	}, nil
}

// Value returns the current value.
func (c *ClampedValue[T]) Value() T {
	return c.value
}

// Min returns the current minimum.
func (c *ClampedValue[T]) Min() T {
	return c.min
}

// Max returns the current maximum.
func (c *ClampedValue[T]) Max() T {
	return c.max
}

// SetMin sets the minimum to newMin, leaving value and maximum untouched.
//
// It returns an error wrapping ErrInvalidRange if newMin is larger than the maximum and an error
// wrapping ErrValueOutOfBounds if newMin is larger than the current value. Rather than silently
// pulling the value up to a raised minimum, the caller has to decide what should happen to the
// value before tightening the bound.
func (c *ClampedValue[T]) SetMin(newMin T) error {
	if newMin != newMin {
		return ierrors.Wrap(ErrInvalidRange, "minimum cannot be NaN")
	}
	if newMin > c.max {
		return ierrors.Wrapf(ErrInvalidRange, "new minimum %v is larger than maximum %v", newMin, c.max)
	}
	if newMin > c.value {
		return ierrors.Wrapf(ErrValueOutOfBounds, "new minimum %v is larger than current value %v", newMin, c.value)
	}

	c.min = newMin

	return nil
}

// SetMax sets the maximum to newMax, leaving value and minimum untouched.
//
// It returns an error wrapping ErrInvalidRange if newMax is smaller than the minimum and an error
// wrapping ErrValueOutOfBounds if newMax is smaller than the current value.
func (c *ClampedValue[T]) SetMax(newMax T) error {
	if newMax != newMax {
		return ierrors.Wrap(ErrInvalidRange, "maximum cannot be NaN")
	}
	if newMax < c.min {
		return ierrors.Wrapf(ErrInvalidRange, "new maximum %v is smaller than minimum %v", newMax, c.min)
	}
	if newMax < c.value {
		return ierrors.Wrapf(ErrValueOutOfBounds, "new maximum %v is smaller than current value %v", newMax, c.value)
	}

	c.max = newMax

	return nil
}

// Set sets the value to newValue, clamping it to the minimum or maximum if it lies outside of the
// bounds. It never fails - every raw value is normalized back into the interval, which makes it
// the single code path through which all value mutations go.
func (c *ClampedValue[T]) Set(newValue T) {
	c.value = newValue
	c.clamp()
}

// Add adds delta to the value, saturating at the representable range of T first and at the
// minimum or maximum of the container second.
//
// The two stages are both needed: the saturating primitive knows nothing about the configured
// bounds, and the clamp alone would run after the raw addition already wrapped around.
func (c *ClampedValue[T]) Add(delta T) {
	c.value = saturating.Add(c.value, delta)
	c.clamp()
}

// Sub subtracts delta from the value, saturating at the representable range of T first and at the
// minimum or maximum of the container second.
func (c *ClampedValue[T]) Sub(delta T) {
	c.value = saturating.Sub(c.value, delta)
	c.clamp()
}

// Mul multiplies the value by factor, saturating at the representable range of T first and at the
// minimum or maximum of the container second.
func (c *ClampedValue[T]) Mul(factor T) {
	c.value = saturating.Mul(c.value, factor)
	c.clamp()
}

// Div divides the value by divisor, saturating the one quotient that can overflow the
// representable range of T (the most negative value divided by -1) and clamping the result to the
// minimum or maximum.
//
// It returns an error wrapping ErrDivisionByZero if divisor is zero. The zero divisor is rejected
// for floats as well, so the value never turns into an infinity or NaN through this method.
func (c *ClampedValue[T]) Div(divisor T) error {
	if divisor == 0 {
		return ierrors.Wrapf(ErrDivisionByZero, "cannot divide %v by zero", c.value)
	}

	c.value = saturating.Div(c.value, divisor)
	c.clamp()

	return nil
}

// Percent returns the position of the value inside the bounds as a float64 between 0.0 and 1.0,
// where 0.0 is the minimum and 1.0 is the maximum. A zero-width range (minimum equal to maximum)
// returns 0.0.
func (c *ClampedValue[T]) Percent() float64 {
	if c.max == c.min {
		return 0
	}

	// convert before subtracting - value minus min can overflow signed types even though it is
	// mathematically non-negative
	return (float64(c.value) - float64(c.min)) / (float64(c.max) - float64(c.min))
}

// Percent32 returns the position of the value inside the bounds as a float32 between 0.0 and 1.0.
func (c *ClampedValue[T]) Percent32() float32 {
	return float32(c.Percent())
}

// String returns a human-readable version of the ClampedValue.
func (c *ClampedValue[T]) String() string {
	return stringify.Struct("ClampedValue",
		stringify.NewStructField("value", fieldValue[T]{c.value}),
		stringify.NewStructField("min", fieldValue[T]{c.min}),
		stringify.NewStructField("max", fieldValue[T]{c.max}),
	)
}

// fieldValue renders a numeric struct field through the fmt.Stringer path of stringify, which
// would quote a pre-formatted string and does not format every numeric type directly.
type fieldValue[T constraints.Numeric] struct {
	value T
}

func (f fieldValue[T]) String() string {
	return fmt.Sprint(f.value)
}

// clamp pulls the value back to the nearest bound if it lies outside of the interval. A NaN value
// fails both ordered checks in their negated form and is pinned to the minimum.
func (c *ClampedValue[T]) clamp() {
	switch {
	case !(c.value >= c.min):
		c.value = c.min
	case c.value > c.max:
		c.value = c.max
	}
}
