package clampedvalue

import (
	"testing"

	"github.com/iotaledger/hive.go/lo"
	"github.com/stretchr/testify/require"
)

func TestValueKind(t *testing.T) {
	require.Equal(t, ValueKindSigned, KindOf[int]())
	require.Equal(t, ValueKindSigned, KindOf[int8]())
	require.Equal(t, ValueKindUnsigned, KindOf[uint64]())
	require.Equal(t, ValueKindUnsigned, KindOf[uint8]())
	require.Equal(t, ValueKindFloat, KindOf[float32]())
	require.Equal(t, ValueKindFloat, KindOf[float64]())

	require.Equal(t, "ValueKindSigned", ValueKindSigned.String())
	require.Equal(t, "ValueKindUnsigned", ValueKindUnsigned.String())
	require.Equal(t, "ValueKindFloat", ValueKindFloat.String())
	require.Equal(t, "ValueKind(11)", ValueKind(17).String())

	require.Equal(t, []byte{1}, ValueKindUnsigned.Bytes())
}

func TestMarshalUnmarshal(t *testing.T) {
	clampedValue := lo.PanicOnErr(New(10, 50, 110))

	marshaledValue := clampedValue.Bytes()
	unmarshaledValue, consumedBytes, err := FromBytes[int](marshaledValue)
	require.NoError(t, err)
	require.Equal(t, len(marshaledValue), consumedBytes)
	require.EqualValues(t, 10, unmarshaledValue.Min())
	require.EqualValues(t, 50, unmarshaledValue.Value())
	require.EqualValues(t, 110, unmarshaledValue.Max())
}

func TestMarshalUnmarshalUnsigned(t *testing.T) {
	clampedValue := lo.PanicOnErr(New(uint64(0), 5, 1<<63))

	unmarshaledValue, _, err := FromBytes[uint64](clampedValue.Bytes())
	require.NoError(t, err)
	require.EqualValues(t, uint64(1<<63), unmarshaledValue.Max())
}

func TestMarshalUnmarshalFloat(t *testing.T) {
	clampedValue := lo.PanicOnErr(New(-2.5, 0.25, 10.0))

	unmarshaledValue, _, err := FromBytes[float64](clampedValue.Bytes())
	require.NoError(t, err)
	require.EqualValues(t, 0.25, unmarshaledValue.Value())
	require.EqualValues(t, -2.5, unmarshaledValue.Min())
}

func TestUnmarshalKindMismatch(t *testing.T) {
	marshaledValue := lo.PanicOnErr(New(10, 50, 110)).Bytes()

	_, _, err := FromBytes[uint64](marshaledValue)
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

func TestUnmarshalValueDoesNotFit(t *testing.T) {
	// int fields survive the round trip, but do not fit into an int8
	marshaledValue := lo.PanicOnErr(New(10, 50, 300)).Bytes()

	_, _, err := FromBytes[int8](marshaledValue)
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

func TestUnmarshalBrokenInvariant(t *testing.T) {
	// swap the minimum and maximum fields to break min <= max
	marshaledValue := lo.PanicOnErr(New(10, 50, 110)).Bytes()
	swapped := append([]byte{marshaledValue[0]}, marshaledValue[17:25]...)
	swapped = append(swapped, marshaledValue[9:17]...)
	swapped = append(swapped, marshaledValue[1:9]...)

	_, _, err := FromBytes[int](swapped)
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

func TestUnmarshalTruncatedBytes(t *testing.T) {
	marshaledValue := lo.PanicOnErr(New(10, 50, 110)).Bytes()

	_, _, err := FromBytes[int](marshaledValue[:12])
	require.ErrorIs(t, err, ErrParseBytesFailed)
}
