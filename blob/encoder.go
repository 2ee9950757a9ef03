package blob

import (
	"fmt"

	"github.com/arloliu/geog/column"
	"github.com/arloliu/geog/compress"
	"github.com/arloliu/geog/endian"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/format"
	"github.com/arloliu/geog/internal/hash"
	"github.com/arloliu/geog/internal/options"
	"github.com/arloliu/geog/internal/pool"
	"github.com/arloliu/geog/section"
)

// Encoder encodes geography columns into blobs.
//
// The zero configuration is little-endian with zstd compression.
type Encoder struct {
	flag   section.Flag
	engine endian.EndianEngine
	codec  compress.Codec
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithLittleEndian selects little-endian byte order. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithLittleEndian()
	})
}

// WithBigEndian selects big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithBigEndian()
	})
}

// WithCompression sets the codec applied to both payloads.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !comp.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, comp)
		}
		e.flag.SetCompression(comp)

		return nil
	})
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{flag: section.NewFlag()}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(e.flag.GetCompression())
	if err != nil {
		return nil, err
	}
	e.codec = codec
	e.engine = e.flag.GetEndianEngine()

	return e, nil
}

// Encode encodes every row of col, nulls included, into a new blob.
func (e *Encoder) Encode(col *column.Column) (Blob, error) {
	header, err := section.NewHeader(col.Len(), col.NumPoints())
	if err != nil {
		return Blob{}, err
	}

	header.Flag = e.flag
	header.Flag.SetColumnKind(col.Kind())

	layoutBuf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(layoutBuf)

	coordBuf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(coordBuf)
	coordBuf.Grow(col.NumPoints() * section.CoordinateSize)

	hasNulls := false
	for i := range col.Len() {
		rec, ok := col.Record(i)
		if !ok {
			hasNulls = true
		}
		layoutBuf.B = appendRowLayout(layoutBuf.B, rec, !ok)
		coordBuf.B = endian.AppendFloat64s(e.engine, coordBuf.B, rec.Lngs())
	}
	for _, rec := range col.All() {
		coordBuf.B = endian.AppendFloat64s(e.engine, coordBuf.B, rec.Lats())
	}
	header.Flag.SetHasNulls(hasNulls)

	layout, err := e.compress(layoutBuf.Bytes())
	if err != nil {
		return Blob{}, fmt.Errorf("layout payload: %w", err)
	}

	coords, err := e.compress(coordBuf.Bytes())
	if err != nil {
		return Blob{}, fmt.Errorf("coordinate payload: %w", err)
	}

	header.LayoutSize = uint32(len(layout))    //nolint: gosec
	header.LayoutRaw = uint32(layoutBuf.Len()) //nolint: gosec
	header.CoordSize = uint32(len(coords))     //nolint: gosec
	header.Checksum = hash.Checksum(layout, coords)

	data := make([]byte, 0, section.HeaderSize+len(layout)+len(coords))
	data = header.AppendTo(data)
	data = append(data, layout...)
	data = append(data, coords...)

	return Blob{header: *header, data: data}, nil
}

// compress compresses one payload. An empty payload is stored as zero bytes.
func (e *Encoder) compress(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if uint64(len(raw)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrTooManyRecords, len(raw))
	}

	out, err := e.codec.Compress(raw)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes", errs.ErrTooManyRecords, len(out))
	}

	return out, nil
}
