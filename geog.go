// Package geog stores geographic vector data (points, lines, polygons and
// their multi and collection forms) in a compact columnar layout, and reads and
// writes it as Well-Known Text.
//
// Every geometry is a geography.Record: two flat coordinate arrays, longitudes
// and latitudes in degrees, plus short count sequences that describe how the
// coordinates split into rings, parts and collection members. Records borrow
// their coordinates from an arena owned by a column.Column, so a batch of
// thousands of rows costs a handful of allocations.
//
// # Basic Usage
//
// Parsing and formatting a single value:
//
//	rec, err := geog.ParseWKT("POLYGON ((0 0, 10 0, 10 10, 0 0))")
//	if err != nil {
//	    return err // *wkt.ParseError, matches errs.ErrUnexpectedToken and friends
//	}
//	text, _ := geog.FormatWKT(rec) // "POLYGON((0 0, 10 0, 10 10, 0 0))"
//
// Building a column and round-tripping it through the binary blob format:
//
//	col := geog.NewColumn()
//	_ = col.AppendWKT("POINT (121.5654 25.033)")
//	col.AppendNull()
//
//	b, _ := geog.EncodeColumn(col)
//	decoded, _ := geog.DecodeColumn(b.Bytes())
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control use the wkt, column and blob packages directly; s2view and geomconv
// adapt records to golang/geo and go-geom.
package geog

import (
	"github.com/arloliu/geog/blob"
	"github.com/arloliu/geog/column"
	"github.com/arloliu/geog/format"
	"github.com/arloliu/geog/geography"
	"github.com/arloliu/geog/wkt"
)

var defaultEncoderOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionZstd),
}

// ParseWKT parses one WKT literal into a record backed by its own arena.
//
// Malformed input returns a *wkt.ParseError wrapping one of the errs sentinels.
func ParseWKT(text string) (geography.Record, error) {
	return wkt.Parse(text)
}

// FormatWKT renders rec as canonical WKT text.
func FormatWKT(rec geography.Record) (string, error) {
	return wkt.Write(rec)
}

// NewColumn creates an empty geography column.
func NewColumn(opts ...column.Option) *column.Column {
	return column.New(opts...)
}

// EncodeColumn encodes col into a blob. Without options the blob is
// little-endian and zstd-compressed; opts are applied after the defaults.
func EncodeColumn(col *column.Column, opts ...blob.EncoderOption) (blob.Blob, error) {
	allOpts := make([]blob.EncoderOption, 0, len(defaultEncoderOptions)+len(opts))
	allOpts = append(allOpts, defaultEncoderOptions...)
	allOpts = append(allOpts, opts...)

	enc, err := blob.NewEncoder(allOpts...)
	if err != nil {
		return blob.Blob{}, err
	}

	return enc.Encode(col)
}

// DecodeColumn validates and decodes a blob produced by EncodeColumn.
func DecodeColumn(data []byte) (*column.Column, error) {
	return blob.Decode(data)
}
