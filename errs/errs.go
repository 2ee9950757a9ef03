// Package errs defines the sentinel errors returned by geog packages.
//
// Errors are wrapped with context by the returning package, so callers should
// match them with errors.Is rather than by comparing strings.
package errs

import "errors"

// WKT parsing and writing errors.
var (
	// ErrUnexpectedEOF is returned when a token is required but the input is exhausted.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrUnexpectedEOL is returned when a literal is cut by a line break in line mode.
	ErrUnexpectedEOL = errors.New("unexpected end of line")
	// ErrUnexpectedToken is returned when the grammar expects a different token.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnsupportedDimension is returned for a third ordinate or a Z, M or ZM marker.
	ErrUnsupportedDimension = errors.New("only 2-dimensional coordinates are supported")
	// ErrUnsupportedGeometryType is returned for an unknown geometry keyword.
	ErrUnsupportedGeometryType = errors.New("unsupported geometry type")
	// ErrNestedCollection is returned when a geometry collection contains another collection.
	ErrNestedCollection = errors.New("nested geometry collections are not supported")
)

// Record errors.
var (
	// ErrUnsupportedComparison is returned by ordering comparisons on geography records.
	ErrUnsupportedComparison = errors.New("ordering comparison is not supported by the geography type")
	// ErrInvalidRecord is returned when a record's count sequences disagree with its coordinates.
	ErrInvalidRecord = errors.New("invalid geography record")
	// ErrUnsupportedKind is returned when an operation does not apply to a record's kind.
	ErrUnsupportedKind = errors.New("unsupported geography kind")
	// ErrEmptyGeography is returned when an operation needs coordinates but the record is empty.
	ErrEmptyGeography = errors.New("empty geography")
)

// Blob errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidMagicNumber     = errors.New("invalid magic number")
	ErrInvalidHeaderFlags     = errors.New("invalid header flags")
	ErrChecksumMismatch       = errors.New("payload checksum mismatch")
	ErrInvalidPayload         = errors.New("invalid blob payload")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrTooManyRecords         = errors.New("too many records for a single blob")
	ErrRowIndexOutOfRange     = errors.New("row index out of range")
)

// Column errors.
var (
	// ErrNullRow is returned when a null row is read as a geography value.
	ErrNullRow = errors.New("row is null")
)
