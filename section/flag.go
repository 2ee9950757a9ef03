package section

import (
	"github.com/arloliu/geog/endian"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/format"
	"github.com/arloliu/geog/geography"
)

// Flag is the packed first 4 bytes of a geography blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is set when the blob contains null rows.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved and must be 0.
	// Bits 4-15 are the magic number 0xEC10 identifying the format version.
	Options uint16

	// Compression is the codec applied to both payloads.
	Compression uint8

	// ColumnKind is the column-level geography kind.
	ColumnKind uint8
}

// NewFlag creates a little-endian, zstd-compressed flag for a column of unknown kind.
func NewFlag() Flag {
	return Flag{
		Options:     MagicGeographyV1Opt,
		Compression: uint8(format.CompressionZstd),
		ColumnKind:  uint8(geography.KindUnknown),
	}
}

// HasNulls returns whether the blob contains null rows.
func (f Flag) HasNulls() bool {
	return (f.Options & NullsMask) != 0
}

// SetHasNulls sets or clears the null rows bit.
func (f *Flag) SetHasNulls(enabled bool) {
	if enabled {
		f.Options |= NullsMask
	} else {
		f.Options &^= NullsMask
	}
}

// IsLittleEndian returns whether the payloads are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payloads are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks the magic number in the Options field.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicGeographyV1Opt
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetColumnKind returns the column-level geography kind.
func (f Flag) GetColumnKind() geography.Kind {
	return geography.Kind(f.ColumnKind)
}

// SetColumnKind sets the column-level geography kind.
func (f *Flag) SetColumnKind(kind geography.Kind) {
	f.ColumnKind = uint8(kind)
}

// Validate checks magic number, reserved bits, compression and kind.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().IsValid() || !f.GetColumnKind().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the endian engine matching the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
