package decimal

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/calebcase/bigdecimal/fixed"
)

// Cmp compares the values of d and o and returns -1, 0 or +1. The operand
// with the smaller scale is multiplied up to the larger scale so the
// comparison is exact. Cmp returning 0 does not imply Equal.
func (d Decimal) Cmp(o Decimal) int {
	a, b := d.mag(), o.mag()

	if sa, sb := a.Sign(), b.Sign(); sa != sb {
		return cmpInt(sa, sb)
	}

	switch {
	case d.scale == o.scale:
		// Nothing to align.
	case d.scale < o.scale:
		a = new(big.Int).Mul(a, pow10(int64(o.scale)-int64(d.scale)))
	default:
		b = new(big.Int).Mul(b, pow10(int64(d.scale)-int64(o.scale)))
	}

	return a.Cmp(b)
}

// CmpTruncated compares d and o using the legacy ordering:
//
//  1. If the magnitude and scale comparisons agree, that is the result.
//  2. If the scales are equal, the magnitude comparison is the result.
//  3. Otherwise both magnitudes are divided by 10^scale, truncating toward
//     zero, and the integer parts are compared.
//
// Step 1 and step 3 are not exact (1.00 vs 9.9 reports +1, 0.5 vs 0.03
// reports 0). Use Cmp unless the legacy ordering must be reproduced.
func (d Decimal) CmpTruncated(o Decimal) int {
	ucmp := d.mag().Cmp(o.mag())
	scmp := cmpInt(int(d.scale), int(o.scale))

	if ucmp == scmp {
		return ucmp
	}

	if scmp == 0 {
		return ucmp
	}

	return truncate(d.mag(), d.scale).Cmp(truncate(o.mag(), o.scale))
}

// truncate returns the integer part of m * 10^-scale.
func truncate(m *big.Int, scale int32) *big.Int {
	if scale < 0 {
		return new(big.Int).Mul(m, pow10(-int64(scale)))
	}

	return new(big.Int).Quo(m, pow10(int64(scale)))
}

// CompareAny compares d with v using Cmp. Supported operands are Decimal,
// *Decimal, fixed.Value, *big.Int, *uint256.Int and the Go integer and
// floating point types. Anything else fails with InvalidComparisonError.
func (d Decimal) CompareAny(v interface{}) (int, error) {
	var o Decimal

	switch v := v.(type) {
	case Decimal:
		o = v
	case *Decimal:
		if v == nil {
			return 0, InvalidComparisonError.New("nil *Decimal")
		}
		o = *v
	case fixed.Value:
		o = FromFixed(v)
	case *big.Int:
		if v == nil {
			return 0, InvalidComparisonError.New("nil *big.Int")
		}
		o = New(v, 0)
	case *uint256.Int:
		if v == nil {
			return 0, InvalidComparisonError.New("nil *uint256.Int")
		}
		o = FromUint256(v)
	case int:
		o = FromInt(v)
	case int8:
		o = FromInt64(int64(v))
	case int16:
		o = FromInt64(int64(v))
	case int32:
		o = FromInt64(int64(v))
	case int64:
		o = FromInt64(v)
	case uint:
		o = FromUint64(uint64(v))
	case uint8:
		o = FromUint64(uint64(v))
	case uint16:
		o = FromUint64(uint64(v))
	case uint32:
		o = FromUint64(uint64(v))
	case uint64:
		o = FromUint64(v)
	case float32:
		f, err := FromFloat32(v)
		if err != nil {
			return 0, err
		}
		o = f
	case float64:
		f, err := FromFloat64(v)
		if err != nil {
			return 0, err
		}
		o = f
	default:
		return 0, InvalidComparisonError.New("cannot compare with %T", v)
	}

	return d.Cmp(o), nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
