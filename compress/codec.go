package compress

import (
	"fmt"

	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/format"
)

// Compressor compresses one blob payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified,
	// but the result may share memory with it.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores one blob payload.
type Decompressor interface {
	// Decompress restores data to exactly rawSize bytes.
	Decompress(data []byte, rawSize int) ([]byte, error)
}

// Codec combines both directions of one compression type.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// checkRawSize verifies a decompressed payload against its recorded size.
func checkRawSize(c Codec, out []byte, rawSize int) ([]byte, error) {
	if len(out) != rawSize {
		return nil, fmt.Errorf("%w: %s payload inflated to %d bytes, want %d",
			errs.ErrInvalidPayload, c.Type(), len(out), rawSize)
	}

	return out, nil
}
