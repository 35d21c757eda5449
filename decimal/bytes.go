package decimal

import (
	"encoding/binary"
	"math/big"
)

// scaleSize is the number of trailing bytes holding the scale.
const scaleSize = 4

// FromBytes parses the layout produced by Bytes: a little-endian two's
// complement magnitude followed by a 4 byte little-endian scale. An empty
// magnitude is zero. It fails with FormatError if b is shorter than 4 bytes.
func FromBytes(b []byte) (Decimal, error) {
	if len(b) < scaleSize {
		return Decimal{}, FormatError.New("need at least %d bytes, got %d", scaleSize, len(b))
	}

	n := len(b) - scaleSize

	return Decimal{
		magnitude: fromTwosComplement(b[:n]),
		scale:     int32(binary.LittleEndian.Uint32(b[n:])),
	}, nil
}

// Bytes returns the minimal little-endian two's complement magnitude
// followed by the little-endian scale. FromBytes(d.Bytes()) is Equal to d.
func (d Decimal) Bytes() []byte {
	b := toTwosComplement(d.mag())

	var s [scaleSize]byte
	binary.LittleEndian.PutUint32(s[:], uint32(d.scale))

	return append(b, s[:]...)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	return d.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	v, err := FromBytes(data)
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// toTwosComplement returns the shortest little-endian two's complement
// encoding of x. Zero is a single zero byte.
func toTwosComplement(x *big.Int) []byte {
	var be []byte

	if x.Sign() >= 0 {
		be = x.Bytes()
		if len(be) == 0 || be[0]&0x80 != 0 {
			be = append([]byte{0}, be...)
		}
	} else {
		// -x - 1 has the same bits as x inverted.
		y := new(big.Int).Neg(x)
		y.Sub(y, big.NewInt(1))

		be = y.Bytes()
		if len(be) == 0 || be[0]&0x80 != 0 {
			be = append([]byte{0}, be...)
		}

		for i := range be {
			be[i] = ^be[i]
		}
	}

	reverse(be)

	return be
}

// fromTwosComplement parses a little-endian two's complement integer.
func fromTwosComplement(le []byte) *big.Int {
	if len(le) == 0 {
		return new(big.Int)
	}

	be := make([]byte, len(le))
	copy(be, le)
	reverse(be)

	if be[0]&0x80 == 0 {
		return new(big.Int).SetBytes(be)
	}

	for i := range be {
		be[i] = ^be[i]
	}

	x := new(big.Int).SetBytes(be)
	x.Add(x, big.NewInt(1))

	return x.Neg(x)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
