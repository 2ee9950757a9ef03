package compress

import "github.com/arloliu/geog/format"

// zstdLevel is the compression level used by both zstd backends.
const zstdLevel = 3

// ZstdCodec compresses payloads with Zstandard.
//
// The backend is klauspost/compress unless the package is built with cgo and
// the gozstd tag, which switches to the valyala/gozstd bindings.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Type returns format.CompressionZstd.
func (c ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
