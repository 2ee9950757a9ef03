package section

import (
	"fmt"

	"github.com/arloliu/geog/endian"
	"github.com/arloliu/geog/errs"
)

// Header is the fixed 32-byte header of a geography column blob.
//
//	Bytes  | Field        | Description
//	-------|--------------|---------------------------------------------
//	0-1    | Options      | flags and magic number, always little-endian
//	2      | Compression  | payload codec
//	3      | ColumnKind   | column-level geography kind
//	4-7    | RecordCount  | number of rows, nulls included
//	8-11   | PointCount   | number of coordinate pairs
//	12-15  | LayoutSize   | stored size of the layout payload
//	16-19  | LayoutRaw    | uncompressed size of the layout payload
//	20-23  | CoordSize    | stored size of the coordinate payload
//	24-31  | Checksum     | xxHash64 of both stored payloads
//
// Fields after the flag use the byte order selected by the flag.
type Header struct {
	Flag        Flag   // 4 bytes, offset 0-3
	RecordCount uint32 // 4 bytes, offset 4-7
	PointCount  uint32 // 4 bytes, offset 8-11
	LayoutSize  uint32 // 4 bytes, offset 12-15
	LayoutRaw   uint32 // 4 bytes, offset 16-19
	CoordSize   uint32 // 4 bytes, offset 20-23
	Checksum    uint64 // 8 bytes, offset 24-31
}

// NewHeader creates a header with a default flag for the given counts.
func NewHeader(recordCount, pointCount int) (*Header, error) {
	if recordCount < 0 || uint64(recordCount) > MaxRecordCount {
		return nil, fmt.Errorf("%w: %d rows", errs.ErrTooManyRecords, recordCount)
	}

	if pointCount < 0 || uint64(pointCount) > MaxPointCount {
		return nil, fmt.Errorf("%w: %d coordinate pairs", errs.ErrTooManyRecords, pointCount)
	}

	return &Header{
		Flag:        NewFlag(),
		RecordCount: uint32(recordCount), //nolint: gosec
		PointCount:  uint32(pointCount),  //nolint: gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian, it carries the endianness bit itself
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.ColumnKind = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.RecordCount = engine.Uint32(data[4:8])
	h.PointCount = engine.Uint32(data[8:12])
	h.LayoutSize = engine.Uint32(data[12:16])
	h.LayoutRaw = engine.Uint32(data[16:20])
	h.CoordSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Compression, h.Flag.ColumnKind)
	dst = engine.AppendUint32(dst, h.RecordCount)
	dst = engine.AppendUint32(dst, h.PointCount)
	dst = engine.AppendUint32(dst, h.LayoutSize)
	dst = engine.AppendUint32(dst, h.LayoutRaw)
	dst = engine.AppendUint32(dst, h.CoordSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// PayloadSize returns the total stored size of both payloads.
func (h *Header) PayloadSize() int {
	return int(h.LayoutSize) + int(h.CoordSize)
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return h.Flag.GetEndianEngine()
}
