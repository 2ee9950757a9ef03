// Package compress provides the payload codecs of the geography column blob.
//
// A blob carries two payloads, the row layout and the coordinates. Both are
// compressed with the same codec, selected by format.CompressionType:
//   - None: payload stored as-is
//   - Zstd: best ratio, the default
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Every codec is told the raw size on decompression, so a payload that
// inflates to anything else is rejected as corrupt.
//
// Zstd uses klauspost/compress by default. Building with cgo and the gozstd
// tag switches it to the valyala/gozstd bindings; the wire format is the same.
//
// All codecs are stateless values and safe for concurrent use.
package compress
