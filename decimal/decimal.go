package decimal

import (
	"math"
	"math/big"

	"github.com/OneOfOne/xxhash"
	"github.com/holiman/uint256"

	"github.com/calebcase/bigdecimal/fixed"
)

var (
	zero = big.NewInt(0)
	ten  = big.NewInt(10)
)

// Decimal is an arbitrary precision base 10 number: magnitude * 10^-scale.
//
// Decimals are immutable. The zero value is 0 with a scale of 0.
type Decimal struct {
	magnitude *big.Int
	scale     int32
}

// New returns magnitude * 10^-scale. The magnitude is copied and the scale
// is stored as given.
func New(magnitude *big.Int, scale int32) Decimal {
	return Decimal{
		magnitude: new(big.Int).Set(magnitude),
		scale:     scale,
	}
}

// FromInt64 returns v with a scale of 0.
func FromInt64(v int64) Decimal {
	return Decimal{magnitude: big.NewInt(v)}
}

// FromInt returns v with a scale of 0.
func FromInt(v int) Decimal {
	return FromInt64(int64(v))
}

// FromUint64 returns v with a scale of 0.
func FromUint64(v uint64) Decimal {
	return Decimal{magnitude: new(big.Int).SetUint64(v)}
}

// FromUint256 returns v with a scale of 0.
func FromUint256(v *uint256.Int) Decimal {
	return Decimal{magnitude: v.ToBig()}
}

// FromFixed returns the decimal with the same coefficient and scale as v.
func FromFixed(v fixed.Value) Decimal {
	b := v.Bytes()

	// Bytes 0..11 are the little-endian coefficient.
	var be [12]byte
	for i := range be {
		be[i] = b[11-i]
	}

	m := new(big.Int).SetBytes(be[:])
	if b[15]&0x80 != 0 {
		m.Neg(m)
	}

	return Decimal{
		magnitude: m,
		scale:     int32(b[14]),
	}
}

// FromFloat64 returns f as narrowed through a fixed.Value (15 significant
// digits). It fails with OverflowError for NaN, infinities and values
// beyond the range of a fixed.Value.
func FromFloat64(f float64) (Decimal, error) {
	v, err := fixed.FromFloat64(f)
	if err != nil {
		return Decimal{}, wrapFixed(err)
	}

	return FromFixed(v), nil
}

// FromFloat32 returns f as narrowed through a fixed.Value (7 significant
// digits).
func FromFloat32(f float32) (Decimal, error) {
	v, err := fixed.FromFloat32(f)
	if err != nil {
		return Decimal{}, wrapFixed(err)
	}

	return FromFixed(v), nil
}

func (d Decimal) mag() *big.Int {
	if d.magnitude == nil {
		return zero
	}

	return d.magnitude
}

// Magnitude returns a copy of the unscaled value.
func (d Decimal) Magnitude() *big.Int {
	return new(big.Int).Set(d.mag())
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int32 {
	return d.scale
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return d.mag().Sign()
}

// Equal reports whether d and o have the same magnitude and scale. It does
// not compare values: 1.0 and 1.00 are not Equal although Cmp reports 0.
func (d Decimal) Equal(o Decimal) bool {
	return d.scale == o.scale && d.mag().Cmp(o.mag()) == 0
}

// Hash returns a hash of the magnitude and scale consistent with Equal.
func (d Decimal) Hash() uint64 {
	return xxhash.Checksum64(d.Bytes())
}

// exponent returns a coefficient and power of ten equal to d. A scale of
// math.MinInt32 has no int32 negation, so one factor of ten moves into the
// coefficient.
func (d Decimal) exponent() (*big.Int, int32) {
	if d.scale == math.MinInt32 {
		return new(big.Int).Mul(d.mag(), ten), math.MaxInt32
	}

	return d.mag(), -d.scale
}

// pow10 returns 10^n for n >= 0.
func pow10(n int64) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(n), nil)
}
