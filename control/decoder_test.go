package control_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigdecimal/control"
	"github.com/calebcase/oops"
)

func TestDecoder(t *testing.T) {
	type TC struct {
		Input []byte
		Types []control.Type
		Data  [][]byte
		Mark  error
	}

	t.Run("read", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_1000_0000},
				Types: []control.Type{control.Data},
				Data:  [][]byte{{0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0100_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Data:  [][]byte{{0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0010_0000, 0b_0000_0000},
				Types: []control.Type{control.Data1},
				Data:  [][]byte{{0b_0000_0000, 0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.Data2},
				Data:  [][]byte{{0b_0000_0000, 0b_0000_0000, 0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_1010_1010},
				Types: []control.Type{control.DataSizeSize},
				Data:  [][]byte{{0b_1010_1010}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_1000_0001, 0b_0000_0000, 0b_0000_0001, 0b_0011_1111, 0b_1111_1111},
				Types: []control.Type{
					control.Data,
					control.Null,
					control.Empty,
					control.Data1,
				},
				Data: [][]byte{
					{0b_0000_0001},
					nil,
					nil,
					{0b_0001_1111, 0b_1111_1111},
				},
				Mark: oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewBuffer(tc.Input))

				for j, typ := range tc.Types {
					ok := d.Next()
					require.NoError(t, d.Err(), tc.Mark)
					require.True(t, ok, tc.Mark)
					require.Equal(t, typ, d.Type(), tc.Mark)

					if tc.Data[j] == nil {
						_, err := d.Data()
						require.Error(t, err, tc.Mark)

						continue
					}

					data, err := d.Data()
					require.NoError(t, err, tc.Mark)
					require.Equal(t, tc.Data[j], data, spew.Sdump(tc, data))
				}

				require.False(t, d.Next(), tc.Mark)
				require.NoError(t, d.Err(), tc.Mark)
				require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
			})
		}
	})

	t.Run("skip", func(t *testing.T) {
		input := &bytes.Buffer{}
		e := control.NewEncoder(input)

		require.NoError(t, e.Data(make([]byte, 10)))
		require.NoError(t, e.Data(make([]byte, 300)))
		require.NoError(t, e.Data([]byte{0b_0000_0011, 0, 0}))
		require.NoError(t, e.Data([]byte{0b_0101_0101}))

		size := uint64(input.Len())

		// strings.Reader seeks while bytes.Buffer falls back to a
		// discarding copy.
		readers := map[string]func() control.Decoder{
			"seeker": func() control.Decoder {
				return control.NewDecoder(strings.NewReader(input.String()))
			},
			"buffer": func() control.Decoder {
				return control.NewDecoder(bytes.NewBuffer(input.Bytes()))
			},
		}

		for name, fn := range readers {
			t.Run(name, func(t *testing.T) {
				d := fn()

				for i := 0; i < 3; i++ {
					require.True(t, d.Next())
				}

				require.True(t, d.Next())
				require.Equal(t, control.Data, d.Type())

				data, err := d.Data()
				require.NoError(t, err)
				require.Equal(t, []byte{0b_0101_0101}, data)

				require.False(t, d.Next())
				require.NoError(t, d.Err())
				require.Equal(t, size, d.Consumed())
			})
		}
	})

	t.Run("size", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewBuffer([]byte{
			0b_0000_1001, 0b_0000_0011, 0b_1111_1111,
		}))

		require.True(t, d.Next())

		size, err := d.Size()
		require.NoError(t, err)
		require.Equal(t, uint64(1024), size)

		// Data is truncated.
		_, err = d.Data()
		require.Error(t, err)
		require.False(t, d.Next())
		require.Error(t, d.Err())
	})

	t.Run("oversized", func(t *testing.T) {
		for _, input := range [][]byte{
			{0b_0000_1111, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			{0b_0000_1111, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			{0b_0000_1111, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe, 0x01},
		} {
			d := control.NewDecoder(bytes.NewBuffer(input))

			require.True(t, d.Next())
			require.Equal(t, control.DataSizeSize, d.Type())

			require.NotPanics(t, func() {
				_, err := d.Data()
				require.Error(t, err, spew.Sdump(input))
				require.True(t, control.Error.Has(err), spew.Sdump(input))
			})

			require.False(t, d.Next())
			require.Error(t, d.Err())
		}
	})

	t.Run("short data", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewBuffer([]byte{0b_0100_0011, 0x01, 0x02}))

		require.True(t, d.Next())

		_, err := d.Data()
		require.Error(t, err)
		require.Contains(t, err.Error(), io.ErrUnexpectedEOF.Error())
		require.Equal(t, uint64(3), d.Consumed())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, b := range []byte{0b_0000_0010, 0b_0000_0011, 0b_0000_0100, 0b_0000_0111} {
			d := control.NewDecoder(bytes.NewBuffer([]byte{b}))

			require.False(t, d.Next())
			require.Error(t, d.Err())
			require.True(t, control.Error.Has(d.Err()))
		}
	})

	t.Run("null has no size", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewBuffer([]byte{0b_0000_0000}))

		require.True(t, d.Next())
		require.Equal(t, control.Null, d.Type())

		_, err := d.Size()
		require.Error(t, err)
	})
}
