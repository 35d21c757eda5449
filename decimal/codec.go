package decimal

import (
	"io"

	"github.com/calebcase/bigdecimal/control"
	"github.com/calebcase/bigdecimal/integer"
)

// Scale trailer sizes, stored in the lowest two bits of the final byte.
const (
	scaleNone  = 0b00
	scaleSmall = 0b01
	scaleMid   = 0b10
	scaleLarge = 0b11

	scaleSizeMask = 0b11
)

// maxScaleBits is the widest zigzag scale a trailer can hold.
const maxScaleBits = 22

// Schema configures a stream of decimals.
type Schema struct {
	Nullable bool
}

// Encoder writes decimals as BSV data fields.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer, schema Schema) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     control.NewEncoder(w),
	}
}

// Encode writes d. A nil d is written as null when the schema allows it.
func (e *Encoder) Encode(d *Decimal) (err error) {
	if d == nil {
		if !e.schema.Nullable {
			return Error.New("unexpected null")
		}

		return e.ce.Null()
	}

	data, err := marshalField(*d)
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder reads decimals written by an Encoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader, schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     control.NewDecoder(r),
	}
}

// Decode reads the next decimal. It returns io.EOF when no fields remain and
// nil for a null field. Empty fields are not decimals and fail with Error.
func (d *Decoder) Decode() (_ *Decimal, err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return nil, Error.Wrap(d.cd.Err())
		}

		return nil, io.EOF
	}

	if d.cd.Type() == control.Null {
		if !d.schema.Nullable {
			return nil, Error.New("unexpected null")
		}

		return nil, nil
	}

	if d.cd.Type() == control.Empty {
		return nil, Error.New("unexpected empty field")
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	v, err := unmarshalField(data)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// marshalField returns the zigzag magnitude followed by the scale trailer.
func marshalField(d Decimal) ([]byte, error) {
	blk := integer.FromBig(d.mag())

	data, err := blk.MarshalBinary()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	trailer, err := scaleTrailer(d.scale)
	if err != nil {
		return nil, err
	}

	return append(data, trailer...), nil
}

// scaleTrailer packs the zigzag scale above the two size bits.
func scaleTrailer(scale int32) ([]byte, error) {
	if scale == 0 {
		return []byte{scaleNone}, nil
	}

	abs := int64(scale)
	z := uint64(0)
	if abs < 0 {
		abs = -abs
		z = 1
	}
	z |= uint64(abs) << 1

	switch {
	case z < 1<<6:
		return []byte{byte(z<<2 | scaleSmall)}, nil
	case z < 1<<14:
		t := z<<2 | scaleMid
		return []byte{byte(t >> 8), byte(t)}, nil
	case z < 1<<maxScaleBits:
		t := z<<2 | scaleLarge
		return []byte{byte(t >> 16), byte(t >> 8), byte(t)}, nil
	}

	return nil, Error.New("scale %d does not fit in %d bits", scale, maxScaleBits)
}

func unmarshalField(data []byte) (Decimal, error) {
	if len(data) == 0 {
		return Decimal{}, Error.New("empty field")
	}

	var n int
	switch data[len(data)-1] & scaleSizeMask {
	case scaleNone, scaleSmall:
		n = 1
	case scaleMid:
		n = 2
	case scaleLarge:
		n = 3
	}

	if len(data) < n+1 {
		return Decimal{}, Error.New("field too short: size=%d trailer=%d", len(data), n)
	}

	var t uint64
	for _, b := range data[len(data)-n:] {
		t = t<<8 | uint64(b)
	}

	z := t >> 2
	if n == 1 && data[len(data)-1]&scaleSizeMask == scaleNone && z != 0 {
		return Decimal{}, Error.New("unexpected scale bits: %#02x", data[len(data)-1])
	}

	scale := int32(z >> 1)
	if z&1 == 1 {
		scale = -scale
	}

	blk := &integer.Block{}

	err := blk.UnmarshalBinary(data[:len(data)-n])
	if err != nil {
		return Decimal{}, Error.Wrap(err)
	}

	return Decimal{
		magnitude: blk.Big(),
		scale:     scale,
	}, nil
}
