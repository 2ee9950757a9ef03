package compress

import "github.com/arloliu/geog/format"

// NoOpCodec stores payloads without compression.
//
// Both directions return the input slice itself, without copying.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that passes data through.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Type returns format.CompressionNone.
func (c NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress returns data unchanged.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged after checking its size.
func (c NoOpCodec) Decompress(data []byte, rawSize int) ([]byte, error) {
	return checkRawSize(c, data, rawSize)
}
