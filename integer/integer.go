package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i.
func FromBig(i *big.Int) Block {
	data := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// Big returns the block as a big integer.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler. The magnitude is
// shifted left by one and the sign is stored in the lowest bit.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}
