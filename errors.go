package clampedvalue

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidRange is returned if an operation would make the minimum larger than the maximum.
	ErrInvalidRange = ierrors.New("minimum cannot be larger than maximum")

	// ErrValueOutOfBounds is returned if an operation would push the value outside of the closed
	// interval between minimum and maximum through a non-clamping code path.
	ErrValueOutOfBounds = ierrors.New("value is outside of the bounds")

	// ErrDivisionByZero is returned if the value would be divided by zero.
	ErrDivisionByZero = ierrors.New("division by zero")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")
)
