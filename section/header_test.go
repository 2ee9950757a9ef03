package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geog/endian"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/format"
	"github.com/arloliu/geog/geography"
)

func TestNewHeader(t *testing.T) {
	t.Run("Valid counts", func(t *testing.T) {
		header, err := NewHeader(100, 2500)

		require.NoError(t, err)
		require.Equal(t, uint32(100), header.RecordCount)
		require.Equal(t, uint32(2500), header.PointCount)
		require.True(t, header.Flag.IsLittleEndian())
		require.False(t, header.Flag.HasNulls())
		require.Equal(t, format.CompressionZstd, header.Flag.GetCompression())
		require.Equal(t, geography.KindUnknown, header.Flag.GetColumnKind())
		require.NoError(t, header.Flag.Validate())
	})

	t.Run("Negative record count", func(t *testing.T) {
		header, err := NewHeader(-1, 0)

		require.ErrorIs(t, err, errs.ErrTooManyRecords)
		require.Nil(t, header)
	})

	t.Run("Negative point count", func(t *testing.T) {
		header, err := NewHeader(0, -1)

		require.ErrorIs(t, err, errs.ErrTooManyRecords)
		require.Nil(t, header)
	})
}

func TestFlag(t *testing.T) {
	f := NewFlag()

	f.WithBigEndian()
	require.True(t, f.IsBigEndian())
	require.Equal(t, endian.GetBigEndianEngine(), f.GetEndianEngine())
	f.WithLittleEndian()
	require.True(t, f.IsLittleEndian())
	require.Equal(t, endian.GetLittleEndianEngine(), f.GetEndianEngine())

	f.SetHasNulls(true)
	require.True(t, f.HasNulls())
	f.SetHasNulls(false)
	require.False(t, f.HasNulls())

	f.SetCompression(format.CompressionLZ4)
	f.SetColumnKind(geography.KindMultiPolygon)
	require.Equal(t, format.CompressionLZ4, f.GetCompression())
	require.Equal(t, geography.KindMultiPolygon, f.GetColumnKind())
	require.Equal(t, uint16(MagicGeographyV1Opt), f.GetMagicNumber())
	require.NoError(t, f.Validate())

	t.Run("Invalid magic number", func(t *testing.T) {
		bad := f
		bad.Options = (bad.Options &^ MagicNumberMask) | 0x1230
		require.ErrorIs(t, bad.Validate(), errs.ErrInvalidMagicNumber)
	})

	t.Run("Reserved bits set", func(t *testing.T) {
		bad := f
		bad.Options |= 0x0004
		require.ErrorIs(t, bad.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("Unknown compression", func(t *testing.T) {
		bad := f
		bad.Compression = 0
		require.ErrorIs(t, bad.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		bad := f
		bad.ColumnKind = 5
		require.ErrorIs(t, bad.Validate(), errs.ErrInvalidHeaderFlags)
	})
}

func TestHeader_BytesAndParse(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		name := "Little endian"
		if bigEndian {
			name = "Big endian"
		}

		t.Run(name, func(t *testing.T) {
			header, err := NewHeader(7, 42)
			require.NoError(t, err)
			if bigEndian {
				header.Flag.WithBigEndian()
			}
			header.Flag.SetHasNulls(true)
			header.Flag.SetCompression(format.CompressionS2)
			header.Flag.SetColumnKind(geography.KindPolygon)
			header.LayoutSize = 31
			header.LayoutRaw = 40
			header.CoordSize = 600
			header.Checksum = 0x0102030405060708

			data := header.Bytes()
			require.Len(t, data, HeaderSize)
			// Options is little-endian regardless of the flag
			require.Equal(t, byte(header.Flag.Options), data[0])
			require.Equal(t, byte(header.Flag.Options>>8), data[1])

			var parsed Header
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, *header, parsed)
			require.Equal(t, 631, parsed.PayloadSize())
		})
	}

	t.Run("Big endian field order", func(t *testing.T) {
		header, err := NewHeader(1, 0)
		require.NoError(t, err)
		header.Flag.WithBigEndian()

		data := header.Bytes()
		require.Equal(t, []byte{0, 0, 0, 1}, data[4:8])
	})

	t.Run("Invalid size", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize-1)), errs.ErrInvalidHeaderSize)
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	})

	t.Run("Invalid magic", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize)), errs.ErrInvalidMagicNumber)
	})
}
