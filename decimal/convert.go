package decimal

import (
	"math"
	"math/big"
	"strings"

	"github.com/calebcase/bigdecimal/fixed"
)

// Kind is a conversion target.
type Kind int

// Conversion targets. KindChar and KindTime are listed so callers can name
// them, but converting to them always fails with InvalidCastError.
const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindFixed
	KindChar
	KindTime
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindFixed:   "fixed",
	KindChar:    "char",
	KindTime:    "time",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}

	return kindNames[k]
}

// ParseKind returns the kind named s (as returned by Kind.String).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for k, name := range kindNames {
		if Kind(k) != KindInvalid && name == s {
			return Kind(k), nil
		}
	}

	return KindInvalid, InvalidCastError.New("unknown kind %q", s)
}

type bounds struct {
	min, max *big.Int
}

var integerBounds = map[Kind]bounds{
	KindInt8:   {big.NewInt(math.MinInt8), big.NewInt(math.MaxInt8)},
	KindInt16:  {big.NewInt(math.MinInt16), big.NewInt(math.MaxInt16)},
	KindInt32:  {big.NewInt(math.MinInt32), big.NewInt(math.MaxInt32)},
	KindInt64:  {big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)},
	KindUint8:  {zero, big.NewInt(math.MaxUint8)},
	KindUint16: {zero, big.NewInt(math.MaxUint16)},
	KindUint32: {zero, big.NewInt(math.MaxUint32)},
	KindUint64: {zero, new(big.Int).SetUint64(math.MaxUint64)},
}

// Fixed narrows d to a fixed.Value. The integer part (the magnitude divided
// by 10^scale, truncated) must fit in 96 bits or it fails with
// OverflowError. Fractional digits beyond what a fixed.Value holds are
// rounded half to even.
func (d Decimal) Fixed() (fixed.Value, error) {
	m := d.mag()

	if m.Sign() != 0 && d.scale < -fixed.MaxScale-1 {
		return fixed.Value{}, OverflowError.New("%s exceeds %s", d, fixed.Max())
	}

	integer := truncate(m, d.scale)
	if integer.CmpAbs(fixed.Max()) > 0 {
		return fixed.Value{}, OverflowError.New("integer part %s exceeds %s", integer, fixed.Max())
	}

	v, err := fixed.New(m, d.scale)
	if err != nil {
		return fixed.Value{}, wrapFixed(err)
	}

	return v, nil
}

// integer narrows d to an integer of the given kind, rounding half to even.
func (d Decimal) integer(k Kind) (*big.Int, error) {
	v, err := d.Fixed()
	if err != nil {
		return nil, err
	}

	b := integerBounds[k]

	i := v.Integer()
	if i.Cmp(b.min) < 0 || i.Cmp(b.max) > 0 {
		return nil, OverflowError.New("%s out of range for %s", d, k)
	}

	return i, nil
}

// Int8 narrows d to an int8.
func (d Decimal) Int8() (int8, error) {
	i, err := d.integer(KindInt8)
	if err != nil {
		return 0, err
	}

	return int8(i.Int64()), nil
}

// Int16 narrows d to an int16.
func (d Decimal) Int16() (int16, error) {
	i, err := d.integer(KindInt16)
	if err != nil {
		return 0, err
	}

	return int16(i.Int64()), nil
}

// Int32 narrows d to an int32.
func (d Decimal) Int32() (int32, error) {
	i, err := d.integer(KindInt32)
	if err != nil {
		return 0, err
	}

	return int32(i.Int64()), nil
}

// Int64 narrows d to an int64.
func (d Decimal) Int64() (int64, error) {
	i, err := d.integer(KindInt64)
	if err != nil {
		return 0, err
	}

	return i.Int64(), nil
}

// Uint8 narrows d to a uint8.
func (d Decimal) Uint8() (uint8, error) {
	i, err := d.integer(KindUint8)
	if err != nil {
		return 0, err
	}

	return uint8(i.Uint64()), nil
}

// Uint16 narrows d to a uint16.
func (d Decimal) Uint16() (uint16, error) {
	i, err := d.integer(KindUint16)
	if err != nil {
		return 0, err
	}

	return uint16(i.Uint64()), nil
}

// Uint32 narrows d to a uint32.
func (d Decimal) Uint32() (uint32, error) {
	i, err := d.integer(KindUint32)
	if err != nil {
		return 0, err
	}

	return uint32(i.Uint64()), nil
}

// Uint64 narrows d to a uint64.
func (d Decimal) Uint64() (uint64, error) {
	i, err := d.integer(KindUint64)
	if err != nil {
		return 0, err
	}

	return i.Uint64(), nil
}

// Float32 narrows d to the float32 nearest its fixed.Value.
func (d Decimal) Float32() (float32, error) {
	v, err := d.Fixed()
	if err != nil {
		return 0, err
	}

	return v.Float32(), nil
}

// Float64 narrows d to the float64 nearest its fixed.Value.
func (d Decimal) Float64() (float64, error) {
	v, err := d.Fixed()
	if err != nil {
		return 0, err
	}

	return v.Float64(), nil
}

// Bool reports whether d is non-zero. It fails like Fixed.
func (d Decimal) Bool() (bool, error) {
	v, err := d.Fixed()
	if err != nil {
		return false, err
	}

	return v.Sign() != 0, nil
}

// Convert narrows d to the Go type for k (bool, int8, ..., float64 or
// fixed.Value).
func (d Decimal) Convert(k Kind) (interface{}, error) {
	switch k {
	case KindBool:
		return d.Bool()
	case KindInt8:
		return d.Int8()
	case KindInt16:
		return d.Int16()
	case KindInt32:
		return d.Int32()
	case KindInt64:
		return d.Int64()
	case KindUint8:
		return d.Uint8()
	case KindUint16:
		return d.Uint16()
	case KindUint32:
		return d.Uint32()
	case KindUint64:
		return d.Uint64()
	case KindFloat32:
		return d.Float32()
	case KindFloat64:
		return d.Float64()
	case KindFixed:
		return d.Fixed()
	}

	return nil, InvalidCastError.New("cannot convert decimal to %s", k)
}

// wrapFixed maps errors from the fixed package onto this package's classes.
func wrapFixed(err error) error {
	if fixed.OverflowError.Has(err) {
		return OverflowError.Wrap(err)
	}

	return FormatError.Wrap(err)
}
