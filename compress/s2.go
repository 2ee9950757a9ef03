package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/format"
)

// S2Codec compresses payloads with S2, the Snappy extension from klauspost/compress.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Type returns format.CompressionS2.
func (c S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress compresses data using S2 block encoding.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block of rawSize bytes.
func (c S2Codec) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkRawSize(c, nil, rawSize)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidPayload, err)
	}
	if n != rawSize {
		return nil, fmt.Errorf("%w: s2 block holds %d bytes, want %d", errs.ErrInvalidPayload, n, rawSize)
	}

	out, err := s2.Decode(make([]byte, rawSize), data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidPayload, err)
	}

	return checkRawSize(c, out, rawSize)
}
