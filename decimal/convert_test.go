package decimal

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"

	"github.com/calebcase/bigdecimal/fixed"
)

func TestConvert(t *testing.T) {
	type TC struct {
		input  string
		kind   Kind
		output interface{}
		mark   error
	}

	tcs := []TC{
		{input: "300", kind: KindUint16, output: uint16(300), mark: oops.New("unexpected")},
		{input: "300", kind: KindInt16, output: int16(300), mark: oops.New("unexpected")},
		{input: "-128", kind: KindInt8, output: int8(-128), mark: oops.New("unexpected")},
		{input: "2.5", kind: KindInt8, output: int8(2), mark: oops.New("unexpected")},
		{input: "3.5", kind: KindInt32, output: int32(4), mark: oops.New("unexpected")},
		{input: "-2.5", kind: KindInt64, output: int64(-2), mark: oops.New("unexpected")},
		{input: "255.4", kind: KindUint8, output: uint8(255), mark: oops.New("unexpected")},
		{input: "4294967295", kind: KindUint32, output: uint32(math.MaxUint32), mark: oops.New("unexpected")},
		{input: "9223372036854775807", kind: KindInt64, output: int64(math.MaxInt64), mark: oops.New("unexpected")},
		{input: "18446744073709551615", kind: KindUint64, output: uint64(math.MaxUint64), mark: oops.New("unexpected")},
		{input: "19.99", kind: KindFloat64, output: 19.99, mark: oops.New("unexpected")},
		{input: "0.5", kind: KindFloat32, output: float32(0.5), mark: oops.New("unexpected")},
		{input: "0", kind: KindBool, output: false, mark: oops.New("unexpected")},
		{input: "0.001", kind: KindBool, output: true, mark: oops.New("unexpected")},
		{input: "19.99", kind: KindFixed, output: fixed.MustParse("19.99"), mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.input, tc.kind), func(t *testing.T) {
			out, err := MustParse(tc.input).Convert(tc.kind)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.output, out, tc.mark)
		})
	}

	t.Run("overflow", func(t *testing.T) {
		type TC struct {
			input string
			kind  Kind
		}

		tcs := []TC{
			{input: "300", kind: KindUint8},
			{input: "-1", kind: KindUint64},
			{input: "128", kind: KindInt8},
			{input: "-32769", kind: KindInt16},
			{input: "2147483648", kind: KindInt32},
			{input: "9223372036854775808", kind: KindInt64},
			{input: "18446744073709551616", kind: KindUint64},
			{input: "255.5", kind: KindUint8},
			{input: "1e29", kind: KindFloat64},
			{input: "-1e40", kind: KindBool},
			{input: "79228162514264337593543950336", kind: KindFixed},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.input, tc.kind), func(t *testing.T) {
				_, err := MustParse(tc.input).Convert(tc.kind)
				require.Error(t, err)
				require.True(t, OverflowError.Has(err), err.Error())
			})
		}

		_, err := New(big.NewInt(1), -40).Fixed()
		require.True(t, OverflowError.Has(err))

		_, err = New(big.NewInt(1), math.MinInt32).Fixed()
		require.True(t, OverflowError.Has(err))
	})

	t.Run("invalid cast", func(t *testing.T) {
		for _, k := range []Kind{KindChar, KindTime, KindInvalid, Kind(-1), Kind(100)} {
			_, err := FromInt64(1).Convert(k)
			require.Error(t, err)
			require.True(t, InvalidCastError.Has(err), k.String())
		}
	})

	t.Run("fixed rounding", func(t *testing.T) {
		v, err := New(big.NewInt(1), 40).Fixed()
		require.NoError(t, err)
		require.Equal(t, 0, v.Sign())

		v, err = MustParse("0.12345678901234567890123456789").Fixed()
		require.NoError(t, err)
		require.Equal(t, "0.1234567890123456789012345679", v.String())

		v, err = New(big.NewInt(5), -3).Fixed()
		require.NoError(t, err)
		require.Equal(t, "5000", v.String())
	})
}

func TestKind(t *testing.T) {
	for k := KindBool; k <= KindTime; k++ {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	k, err := ParseKind(" UInt16 ")
	require.NoError(t, err)
	require.Equal(t, KindUint16, k)

	for _, s := range []string{"", "invalid", "decimal"} {
		_, err = ParseKind(s)
		require.True(t, InvalidCastError.Has(err), s)
	}

	require.Equal(t, "invalid", Kind(42).String())
}
