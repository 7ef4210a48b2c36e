package clampedvalue

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// ValueKind distinguishes the three families of numeric types a ClampedValue can be instantiated
// with. It is written as the first byte of the marshaled form so that a serialized container can
// not be deserialized into an incompatible type parameter.
type ValueKind uint8

const (
	// ValueKindSigned represents signed integer types.
	ValueKindSigned ValueKind = iota

	// ValueKindUnsigned represents unsigned integer types.
	ValueKindUnsigned

	// ValueKindFloat represents floating point types.
	ValueKindFloat
)

// ValueKindNames contains a dictionary of the names of ValueKinds.
var ValueKindNames = [...]string{
	"ValueKindSigned",
	"ValueKindUnsigned",
	"ValueKindFloat",
}

// KindOf returns the ValueKind of the given numeric type parameter.
func KindOf[T constraints.Numeric]() ValueKind {
	var zero T
	switch {
	case T(1)/T(2) != 0:
		return ValueKindFloat
	case zero-1 > 0:
		return ValueKindUnsigned
	default:
		return ValueKindSigned
	}
}

// Bytes returns a marshaled version of the ValueKind.
func (v ValueKind) Bytes() []byte {
	return []byte{byte(v)}
}

// String returns a human-readable version of the ValueKind.
func (v ValueKind) String() string {
	if int(v) >= len(ValueKindNames) {
		return fmt.Sprintf("ValueKind(%X)", uint8(v))
	}

	return ValueKindNames[v]
}

// FromBytes unmarshals a ClampedValue from a sequence of bytes. It fails with an error wrapping
// ErrParseBytesFailed if the marshaled kind does not match the target type parameter, if a field
// does not fit into T, or if the decoded fields do not satisfy the bounds invariant.
func FromBytes[T constraints.Numeric](bytes []byte) (clampedValue *ClampedValue[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)

	kindByte, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read ValueKind: %s", err)
	}
	if kind := ValueKind(kindByte); kind != KindOf[T]() {
		return nil, 0, ierrors.Wrapf(ErrParseBytesFailed, "marshaled %s does not match the target type", kind)
	}

	min, err := readValue[T](marshalUtil)
	if err != nil {
		return nil, 0, ierrors.Wrapf(err, "failed to read minimum")
	}
	value, err := readValue[T](marshalUtil)
	if err != nil {
		return nil, 0, ierrors.Wrapf(err, "failed to read value")
	}
	max, err := readValue[T](marshalUtil)
	if err != nil {
		return nil, 0, ierrors.Wrapf(err, "failed to read maximum")
	}

	if clampedValue, err = New(min, value, max); err != nil {
		return nil, 0, ierrors.Wrapf(ErrParseBytesFailed, "decoded fields violate the bounds invariant: %s", err)
	}

	return clampedValue, marshalUtil.ReadOffset(), nil
}

// Bytes returns a marshaled version of the ClampedValue: the ValueKind of T followed by minimum,
// value and maximum as 8 byte little-endian fields.
func (c *ClampedValue[T]) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(KindOf[T]()))
	writeValue(marshalUtil, c.min)
	writeValue(marshalUtil, c.value)
	writeValue(marshalUtil, c.max)

	return marshalUtil.Bytes()
}

// writeValue writes a single numeric field in the encoding of its ValueKind.
func writeValue[T constraints.Numeric](marshalUtil *marshalutil.MarshalUtil, value T) {
	switch KindOf[T]() {
	case ValueKindSigned:
		marshalUtil.WriteInt64(int64(value))
	case ValueKindUnsigned:
		marshalUtil.WriteUint64(uint64(value))
	default:
		marshalUtil.WriteFloat64(float64(value))
	}
}

// readValue reads a single numeric field and converts it back to T, rejecting values that do not
// survive the conversion.
func readValue[T constraints.Numeric](marshalUtil *marshalutil.MarshalUtil) (T, error) {
	switch KindOf[T]() {
	case ValueKindSigned:
		raw, err := marshalUtil.ReadInt64()
		if err != nil {
			return 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read int64: %s", err)
		}
		value := T(raw)
		if int64(value) != raw {
			return 0, ierrors.Wrapf(ErrParseBytesFailed, "value %d does not fit into the target type", raw)
		}

		return value, nil
	case ValueKindUnsigned:
		raw, err := marshalUtil.ReadUint64()
		if err != nil {
			return 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read uint64: %s", err)
		}
		value := T(raw)
		if uint64(value) != raw {
			return 0, ierrors.Wrapf(ErrParseBytesFailed, "value %d does not fit into the target type", raw)
		}

		return value, nil
	default:
		raw, err := marshalUtil.ReadFloat64()
		if err != nil {
			return 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read float64: %s", err)
		}

		return T(raw), nil
	}
}
