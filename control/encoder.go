package control

import (
	"encoding/binary"
	"io"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(bs ...[]byte) (err error) {
	for _, b := range bs {
		_, err = e.w.Write(b)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Data writes data using the smallest control block that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		return e.write(
			[]byte{DataSize.Prefix | byte(size-1)},
			data,
		)
	}

	sb := sizeBytes(uint64(size - 1))

	return e.write(
		[]byte{DataSizeSize.Prefix | byte(len(sb)-1)},
		sb,
		data,
	)
}

// Empty writes an empty block.
func (e *encoder) Empty() (err error) {
	return e.write([]byte{
		Empty.Prefix,
	})
}

// Null writes a null block.
func (e *encoder) Null() (err error) {
	return e.write([]byte{
		Null.Prefix,
	})
}

// sizeBytes returns the big-endian bytes of size with leading zero bytes
// removed. At least one byte is always returned.
func sizeBytes(size uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], size)

	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}

	return buf[i:]
}
