package blob

import (
	"io"

	"github.com/arloliu/geog/format"
	"github.com/arloliu/geog/geography"
	"github.com/arloliu/geog/section"
)

// Blob is an encoded geography column.
type Blob struct {
	header section.Header
	data   []byte
}

// Bytes returns the encoded blob, header included.
// The returned slice must not be modified.
func (b Blob) Bytes() []byte {
	return b.data
}

// Len returns the encoded size in bytes.
func (b Blob) Len() int {
	return len(b.data)
}

// Header returns a copy of the blob header.
func (b Blob) Header() section.Header {
	return b.header
}

// RecordCount returns the number of rows, nulls included.
func (b Blob) RecordCount() int {
	return int(b.header.RecordCount)
}

// PointCount returns the number of coordinate pairs across all rows.
func (b Blob) PointCount() int {
	return int(b.header.PointCount)
}

// Kind returns the column-level geography kind.
func (b Blob) Kind() geography.Kind {
	return b.header.Flag.GetColumnKind()
}

// Compression returns the payload compression type.
func (b Blob) Compression() format.CompressionType {
	return b.header.Flag.GetCompression()
}

// HasNulls reports whether the blob contains null rows.
func (b Blob) HasNulls() bool {
	return b.header.Flag.HasNulls()
}

// IsBigEndian reports whether the blob uses big-endian byte order.
func (b Blob) IsBigEndian() bool {
	return b.header.Flag.IsBigEndian()
}

// WriteTo writes the encoded blob to w.
func (b Blob) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}
