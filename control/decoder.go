package control

import (
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Seek() (err error)
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r. If r is also an io.Seeker,
// unread data is skipped by seeking.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size == 0 {
		return nil
	}

	if size > math.MaxInt64 {
		return Error.New("seek too large: %d", size)
	}

	if d.s != nil {
		_, err = d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return Error.Wrap(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// read fills p from the reader and counts the consumed bytes.
func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Seek moves the reading position to the end of the current field.
func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.finished {
		return nil
	}

	switch d.t {
	case Unknown:
		return nil
	case Data, Empty, Null:
		// No additional bytes need to be read.
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}
	case Data1:
		err = d.seek(1)
		if err != nil {
			return err
		}
	case Data2:
		err = d.seek(2)
		if err != nil {
			return err
		}
	default:
		return Error.New("unknown field %q: %08b", d.t.Abbr, d.value[0])
	}

	d.finished = true

	return nil
}

// Next advances to the next field. It returns false at the end of the
// input or on error (see Err).
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		d.err = d.Seek()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			d.finished = true

			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field.
func (d *decoder) Size() (_ uint64, err error) {
	if d.t != Data && d.t != Data1 && d.t != Data2 && d.t != DataSize && d.t != DataSizeSize {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := int(d.value[0]&d.t.Mask) + 1

		sb := make([]byte, sizeSize)
		err = d.read(sb)
		if err != nil {
			return 0, err
		}

		var size uint64
		for _, b := range sb {
			size = size<<8 | uint64(b)
		}

		if size >= math.MaxInt64 {
			return 0, Error.New("size too large: %d bytes follow", size)
		}

		d.size = size + 1
	}

	return d.size, nil
}

// Data reads the data bytes of the current field. If the field does not
// contain data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	if d.t != Data && d.t != Data1 && d.t != Data2 && d.t != DataSize && d.t != DataSizeSize {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("field already skipped")
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case DataSize, DataSizeSize:
		// The size comes from the stream, so only allocate what is read.
		buf := &bytes.Buffer{}

		var n int64

		n, err = io.CopyN(buf, d.r, int64(d.size))
		d.consumed += uint64(n)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return nil, Error.Wrap(err)
		}

		d.data = buf.Bytes()
	case Data1, Data2:
		d.data = make([]byte, d.size)
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}
