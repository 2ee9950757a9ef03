package section

import "math"

const (
	// Bit masks of the Options field
	NullsMask        = 0x0001 // Mask for null rows bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicGeographyV1Opt = 0xEC10 // version 1 magic number of the geography column blob format
)

// offset and section sizes in the blob file
const (
	HeaderSize     = 32             // fixed header size in bytes
	LayoutOffset   = HeaderSize     // byte offset where the layout payload starts
	MaxRecordCount = math.MaxUint32 // maximum number of rows in one blob
	MaxPointCount  = math.MaxUint32 // maximum number of coordinate pairs in one blob
	MaxPayloadSize = math.MaxUint32 // maximum size of one payload in bytes
	CoordinateSize = 16             // bytes per coordinate pair in the raw coordinate payload
)

// Row tags of the layout payload. A non-null row stores its kind byte instead.
const (
	RowTagNull = 0xFF
)
