// Package fixed provides a 128-bit fixed point decimal used as the bridge
// between arbitrary precision decimals and native numeric types.
//
// A Value holds at most 96 bits of coefficient and 28 fractional digits,
// which is 28 to 29 significant decimal digits. Conversions into a Value
// round half to even when digits must be dropped.
package fixed

import (
	"encoding/binary"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

// MaxScale is the largest number of fractional digits a Value can hold.
const MaxScale = 28

const (
	signMask   uint32 = 0x8000_0000
	scaleMask  uint32 = 0x00ff_0000
	scaleShift        = 16
)

var (
	// Error is the error class for malformed values.
	Error = errs.Class("fixed")

	// OverflowError is the error class for values outside the range of
	// a Value.
	OverflowError = errs.Class("fixed overflow")
)

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)

	maxCoefficient = new(big.Int).Sub(new(big.Int).Lsh(one, 96), one)
)

// Value is a 128-bit fixed point decimal: a 96-bit unsigned coefficient, a
// scale between 0 and MaxScale and a sign bit.
type Value struct {
	flags uint32
	hi    uint32
	lo    uint32
	mid   uint32
}

// Max returns the largest coefficient magnitude, 2^96 - 1.
func Max() *big.Int {
	return new(big.Int).Set(maxCoefficient)
}

// New returns the value coef * 10^-scale. Digits beyond MaxScale, or beyond
// what fits in 96 bits, are rounded half to even. It fails with
// OverflowError when the integer part does not fit in 96 bits.
func New(coef *big.Int, scale int32) (v Value, err error) {
	c := new(big.Int).Set(coef)

	if c.Sign() == 0 {
		return Value{}, nil
	}

	if scale < 0 {
		// 10^29 already exceeds 2^96.
		if scale < -29 {
			return Value{}, OverflowError.New("%s * 10^%d", coef, -int64(scale))
		}

		c.Mul(c, pow10(uint(-scale)))
		scale = 0
	}

	if scale > MaxScale {
		c = roundHalfEven(c, uint(scale-MaxScale))
		scale = MaxScale
	}

	for c.CmpAbs(maxCoefficient) > 0 {
		if scale == 0 {
			return Value{}, OverflowError.New("%s exceeds 96 bits", c)
		}

		c = roundHalfEven(c, 1)
		scale--
	}

	return fromParts(c, uint8(scale)), nil
}

func fromParts(c *big.Int, scale uint8) (v Value) {
	var buf [12]byte
	new(big.Int).Abs(c).FillBytes(buf[:])

	v.hi = binary.BigEndian.Uint32(buf[0:4])
	v.mid = binary.BigEndian.Uint32(buf[4:8])
	v.lo = binary.BigEndian.Uint32(buf[8:12])

	v.flags = uint32(scale) << scaleShift
	if c.Sign() < 0 {
		v.flags |= signMask
	}

	return v
}

// FromBytes returns the value stored in the 16 byte layout produced by
// Bytes. Bytes 12 and 13 and the low bits of byte 15 must be zero and the
// scale must not exceed MaxScale.
func FromBytes(b [16]byte) (v Value, err error) {
	v.lo = binary.LittleEndian.Uint32(b[0:4])
	v.mid = binary.LittleEndian.Uint32(b[4:8])
	v.hi = binary.LittleEndian.Uint32(b[8:12])
	v.flags = binary.LittleEndian.Uint32(b[12:16])

	if v.flags&^(signMask|scaleMask) != 0 {
		return Value{}, Error.New("invalid flags: %08x", v.flags)
	}

	if v.Scale() > MaxScale {
		return Value{}, Error.New("invalid scale: %d", v.Scale())
	}

	return v, nil
}

// Bytes returns the 16 byte layout of the value:
//
//  | 0 ... 11                      | 12 | 13 | 14    | 15       |
//  |-------------------------------|----|----|-------|----------|
//  | coefficient (LE, unsigned)    | 0  | 0  | scale | sign<<7  |
func (v Value) Bytes() (b [16]byte) {
	binary.LittleEndian.PutUint32(b[0:4], v.lo)
	binary.LittleEndian.PutUint32(b[4:8], v.mid)
	binary.LittleEndian.PutUint32(b[8:12], v.hi)
	binary.LittleEndian.PutUint32(b[12:16], v.flags)

	return b
}

// Parse returns the value of the decimal string s. Digits are kept as
// written ("1.50" has scale 2) unless they exceed the range of a Value.
func Parse(s string) (v Value, err error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, Error.Wrap(err)
	}

	return New(d.Coefficient(), -d.Exponent())
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// FromFloat64 returns f rounded to 15 significant digits.
func FromFloat64(f float64) (v Value, err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, OverflowError.New("%v", f)
	}

	return fromFloatString(strconv.FormatFloat(f, 'e', 14, 64))
}

// FromFloat32 returns f rounded to 7 significant digits.
func FromFloat32(f float32) (v Value, err error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return Value{}, OverflowError.New("%v", f)
	}

	return fromFloatString(strconv.FormatFloat(float64(f), 'e', 6, 32))
}

func fromFloatString(s string) (v Value, err error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, Error.Wrap(err)
	}

	v, err = New(d.Coefficient(), -d.Exponent())
	if err != nil {
		return Value{}, err
	}

	// Trailing fractional zeros are an artifact of the digit count.
	c, scale := v.Coefficient(), int32(v.Scale())
	r := new(big.Int)
	q := new(big.Int)
	for scale > 0 {
		q.QuoRem(c, ten, r)
		if r.Sign() != 0 {
			break
		}

		c.Set(q)
		scale--
	}

	return fromParts(c, uint8(scale)), nil
}

// Coefficient returns the signed coefficient.
func (v Value) Coefficient() *big.Int {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[0:4], v.hi)
	binary.BigEndian.PutUint32(buf[4:8], v.mid)
	binary.BigEndian.PutUint32(buf[8:12], v.lo)

	c := new(big.Int).SetBytes(buf[:])
	if v.IsNegative() {
		c.Neg(c)
	}

	return c
}

// Scale returns the number of fractional digits.
func (v Value) Scale() uint8 {
	return uint8((v.flags & scaleMask) >> scaleShift)
}

// IsNegative reports whether the sign bit is set. A zero coefficient may
// carry the sign bit.
func (v Value) IsNegative() bool {
	return v.flags&signMask != 0
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	return v.Coefficient().Sign()
}

// String returns the value with exactly Scale fractional digits.
func (v Value) String() string {
	scale := int32(v.Scale())

	return decimal.NewFromBigInt(v.Coefficient(), -scale).StringFixed(scale)
}

// Integer returns the value rounded half to even to an integer.
func (v Value) Integer() *big.Int {
	return roundHalfEven(v.Coefficient(), uint(v.Scale()))
}

// Float64 returns the nearest float64.
func (v Value) Float64() float64 {
	f, _ := strconv.ParseFloat(v.String(), 64)

	return f
}

// Float32 returns the nearest float32.
func (v Value) Float32() float32 {
	f, _ := strconv.ParseFloat(v.String(), 32)

	return float32(f)
}

// roundHalfEven returns x / 10^n rounded half to even.
func roundHalfEven(x *big.Int, n uint) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}

	d := pow10(n)
	q, r := new(big.Int).QuoRem(x, d, new(big.Int))

	r.Abs(r)
	r.Lsh(r, 1)

	c := r.Cmp(d)
	if c > 0 || (c == 0 && q.Bit(0) == 1) {
		if x.Sign() < 0 {
			q.Sub(q, one)
		} else {
			q.Add(q, one)
		}
	}

	return q
}

func pow10(n uint) *big.Int {
	return new(big.Int).Exp(ten, new(big.Int).SetUint64(uint64(n)), nil)
}
