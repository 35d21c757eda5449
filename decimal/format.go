package decimal

import (
	"math/big"
	"strconv"
	"strings"

	shopspring "github.com/shopspring/decimal"
)

// maxPadding is the most zeros String adds around the magnitude digits.
// Beyond it the value is written in exponent form.
const maxPadding = 4096

// String returns the decimal digits of the magnitude with a decimal point
// inserted scale digits from the right. Magnitudes with no more digits than
// the scale are padded with zeros (5 with a scale of 3 is 0.005). A negative
// scale appends zeros. When more than 4096 zeros would be needed the value
// is written as digits and an exponent instead (5e-100000, 5e100000). Parse
// reads the negative exponent form back to the same magnitude and scale.
func (d Decimal) String() string {
	m := d.mag()

	digits := new(big.Int).Abs(m).String()

	sb := &strings.Builder{}
	if m.Sign() < 0 {
		sb.WriteByte('-')
	}

	scale := int64(d.scale)

	switch {
	case scale == 0 || m.Sign() == 0 && scale < 0:
		sb.WriteString(digits)
	case scale < 0:
		sb.WriteString(digits)

		if -scale > maxPadding {
			sb.WriteByte('e')
			sb.WriteString(strconv.FormatInt(-scale, 10))

			break
		}

		sb.WriteString(strings.Repeat("0", int(-scale)))
	default:
		if int64(len(digits)) <= scale {
			pad := scale - int64(len(digits)) + 1
			if pad > maxPadding {
				sb.WriteString(digits)
				sb.WriteString("e-")
				sb.WriteString(strconv.FormatInt(scale, 10))

				break
			}

			digits = strings.Repeat("0", int(pad)) + digits
		}

		point := len(digits) - int(scale)
		sb.WriteString(digits[:point])
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	}

	return sb.String()
}

// Parse returns the decimal written in s. All digits are kept: "1.50" has
// a magnitude of 150 and a scale of 2. Exponents are accepted ("1e-3").
// It fails with FormatError for malformed input.
func Parse(s string) (Decimal, error) {
	v, err := shopspring.NewFromString(s)
	if err != nil {
		return Decimal{}, FormatError.Wrap(err)
	}

	return FromShopspring(v), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// FromShopspring returns the decimal with the coefficient and exponent of
// v. Positive exponents are folded into the magnitude.
func FromShopspring(v shopspring.Decimal) Decimal {
	m := v.Coefficient()
	exp := int64(v.Exponent())

	if exp > 0 {
		m.Mul(m, pow10(exp))
		exp = 0
	}

	return Decimal{
		magnitude: m,
		scale:     int32(-exp),
	}
}

// Shopspring returns d as a shopspring decimal.
func (d Decimal) Shopspring() shopspring.Decimal {
	m, exp := d.exponent()

	return shopspring.NewFromBigInt(m, exp)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}
