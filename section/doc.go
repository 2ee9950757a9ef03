// Package section defines the fixed binary structures of the geography column blob.
//
// A blob is a 32-byte header followed by two compressed payloads:
//
//	┌────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                           │
//	│  - Flag (4 bytes): options, compression, kind      │
//	│  - RecordCount, PointCount (8 bytes)               │
//	│  - Payload sizes (12 bytes)                        │
//	│  - Checksum (8 bytes): xxHash64 of both payloads   │
//	├────────────────────────────────────────────────────┤
//	│ Layout payload (LayoutSize bytes)                  │
//	│  - per row: tag byte, then uvarint count sequences │
//	├────────────────────────────────────────────────────┤
//	│ Coordinate payload (CoordSize bytes)               │
//	│  - PointCount longitudes, then PointCount latitudes│
//	└────────────────────────────────────────────────────┘
//
// The row tag is RowTagNull for a null row and the geography kind otherwise.
// A non-null row continues with four uvarint-prefixed sequences: ring lengths,
// group lengths, collection polygon counts (all uvarints) and member kinds
// (one byte each). A row whose ring lengths sum to zero is an empty record.
//
// The Options field is always stored little-endian because it holds the
// endianness bit. Every other multi-byte field, and every coordinate, uses the
// byte order the flag selects.
package section
