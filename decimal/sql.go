package decimal

import (
	"database/sql/driver"
	"math"
	"math/big"
	"strconv"
)

// Decompose returns the form, sign, coefficient and exponent of d in the
// shape used by database drivers that exchange decimals without a string
// round trip. The form is always 0 (finite). The coefficient is the
// big-endian magnitude, appended to buf when it has room.
func (d Decimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	m, exponent := d.exponent()

	abs := new(big.Int).Abs(m)
	n := (abs.BitLen() + 7) / 8

	if cap(buf) >= n {
		coefficient = abs.FillBytes(buf[:n])
	} else {
		coefficient = abs.Bytes()
	}

	return 0, m.Sign() < 0, coefficient, exponent
}

// Compose sets d from the parts returned by Decompose. Only the finite form
// (0) is accepted; infinities and NaN fail with FormatError, as does an
// exponent of math.MinInt32 whose scale would not fit in an int32.
func (d *Decimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) (err error) {
	if form != 0 {
		return FormatError.New("unsupported form %d", form)
	}

	if exponent == math.MinInt32 {
		return FormatError.New("exponent %d has no scale", exponent)
	}

	m := new(big.Int).SetBytes(coefficient)
	if negative {
		m.Neg(m)
	}

	*d = Decimal{
		magnitude: m,
		scale:     -exponent,
	}

	return nil
}

// Value implements driver.Valuer. Decimals are sent as their string form.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner for string, []byte, int64 and float64
// columns.
func (d *Decimal) Scan(src interface{}) (err error) {
	var v Decimal

	switch src := src.(type) {
	case string:
		v, err = Parse(src)
	case []byte:
		v, err = Parse(string(src))
	case int64:
		v = FromInt64(src)
	case float64:
		v, err = Parse(strconv.FormatFloat(src, 'f', -1, 64))
	default:
		return InvalidCastError.New("cannot scan %T into decimal", src)
	}

	if err != nil {
		return err
	}

	*d = v

	return nil
}
