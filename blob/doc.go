// Package blob encodes a geography column into a compact, checksummed binary
// blob and decodes it back.
//
// Encoding:
//
//	enc, err := blob.NewEncoder(blob.WithCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//	b, err := enc.Encode(col)
//	_, err = b.WriteTo(w)
//
// Decoding:
//
//	dec, err := blob.NewDecoder(data)
//	if err != nil {
//	    return err // bad size, magic, flags or checksum
//	}
//	col, err := dec.Decode()
//
// The header and payload layout are described in package section. A decoded
// column holds all of its coordinates in a single arena chunk, and its records
// borrow from it like those of any other column.
//
// Encoder and Decoder are not safe for concurrent use; Blob values are immutable.
package blob
