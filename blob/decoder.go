package blob

import (
	"fmt"

	"github.com/arloliu/geog/column"
	"github.com/arloliu/geog/compress"
	"github.com/arloliu/geog/endian"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
	"github.com/arloliu/geog/internal/hash"
	"github.com/arloliu/geog/internal/pool"
	"github.com/arloliu/geog/section"
)

// Decoder decodes a blob produced by Encoder.
type Decoder struct {
	data   []byte
	header section.Header
	engine endian.EndianEngine
}

// NewDecoder validates the header and payload checksum of data.
//
// data is not copied and must stay unmodified until Decode returns.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: blob of %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	d := &Decoder{data: data}
	if err := d.header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}
	d.engine = d.header.GetEndianEngine()

	payload := data[section.HeaderSize:]
	if len(payload) != d.header.PayloadSize() {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, blob holds %d",
			errs.ErrInvalidPayload, d.header.PayloadSize(), len(payload))
	}

	split := int(d.header.LayoutSize)
	if sum := hash.Checksum(payload[:split], payload[split:]); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: got %#016x, header has %#016x", errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	return d, nil
}

// Header returns a copy of the parsed header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Decode rebuilds the column. Every non-empty row is validated.
func (d *Decoder) Decode() (*column.Column, error) {
	codec, err := compress.GetCodec(d.header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	split := section.HeaderSize + int(d.header.LayoutSize)

	layout, err := codec.Decompress(d.data[section.HeaderSize:split], int(d.header.LayoutRaw))
	if err != nil {
		return nil, fmt.Errorf("layout payload: %w", err)
	}

	points := int(d.header.PointCount)
	raw, err := codec.Decompress(d.data[split:], points*section.CoordinateSize)
	if err != nil {
		return nil, fmt.Errorf("coordinate payload: %w", err)
	}

	scratch, cleanup := pool.GetFloat64Slice(2 * points)
	defer cleanup()

	lngs, lats := scratch[:points:points], scratch[points:]
	endian.Float64s(d.engine, lngs, raw[:points*8])
	endian.Float64s(d.engine, lats, raw[points*8:])

	col := column.New(column.WithMinChunkSize(points))
	r := layoutReader{buf: layout}
	offset := 0
	hasNulls := false

	for row := range int(d.header.RecordCount) {
		kind, rowLayout, null, err := r.row()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if null {
			hasNulls = true
			col.AppendNull()

			continue
		}

		n := sumCounts(rowLayout.RingLengths)
		if n > points-offset {
			return nil, fmt.Errorf("%w: row %d needs %d coordinate pairs, %d left",
				errs.ErrInvalidPayload, row, n, points-offset)
		}

		if n == 0 {
			if !isEmptyLayout(rowLayout) {
				return nil, fmt.Errorf("%w: row %d has a layout but no coordinates", errs.ErrInvalidPayload, row)
			}
			col.AppendEmpty(kind)

			continue
		}

		end := offset + n
		rec := geography.NewBorrowed(kind, lngs[offset:end:end], lats[offset:end:end], rowLayout)
		if err := col.AppendRecord(rec); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
		}
		offset = end
	}

	switch {
	case r.remaining() != 0:
		return nil, fmt.Errorf("%w: %d trailing layout bytes", errs.ErrInvalidPayload, r.remaining())
	case offset != points:
		return nil, fmt.Errorf("%w: %d of %d coordinate pairs unused", errs.ErrInvalidPayload, points-offset, points)
	case hasNulls != d.header.Flag.HasNulls():
		return nil, fmt.Errorf("%w: null flag disagrees with rows", errs.ErrInvalidPayload)
	case col.Kind() != d.header.Flag.GetColumnKind():
		return nil, fmt.Errorf("%w: column kind %s, header has %s",
			errs.ErrInvalidPayload, col.Kind(), d.header.Flag.GetColumnKind())
	}

	return col, nil
}

// Decode is a shorthand for NewDecoder followed by Decode.
func Decode(data []byte) (*column.Column, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// sumCounts sums ring lengths, saturating above section.MaxPointCount.
func sumCounts(counts []int) int {
	total := 0
	for _, n := range counts {
		total += n
		if total > section.MaxPointCount {
			return section.MaxPointCount + 1
		}
	}

	return total
}

func isEmptyLayout(l geography.Layout) bool {
	return len(l.RingLengths) == 0 && len(l.GroupLengths) == 0 &&
		len(l.CollectionPolygonCounts) == 0 && len(l.MemberKinds) == 0
}
