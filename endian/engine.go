// Package endian provides the byte order engines used by the geography blob.
//
// EndianEngine combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary, so one value can both read fixed-size fields and append
// them to a growing buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, recordCount)
//
// The float64 helpers encode coordinate runs. When the engine matches the host
// byte order they copy memory directly instead of converting value by value.
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendFloat64s appends vals to dst as IEEE-754 doubles in the engine's byte order.
func AppendFloat64s(engine EndianEngine, dst []byte, vals []float64) []byte {
	if len(vals) == 0 {
		return dst
	}

	if CompareNativeEndian(engine) {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*8)
		return append(dst, raw...)
	}

	for _, v := range vals {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// Float64s decodes len(dst) doubles from src into dst.
// src must hold at least 8*len(dst) bytes.
func Float64s(engine EndianEngine, dst []float64, src []byte) {
	if len(dst) == 0 {
		return
	}

	_ = src[len(dst)*8-1] // bounds check hint

	if CompareNativeEndian(engine) {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst)*8)
		copy(raw, src)

		return
	}

	for i := range dst {
		dst[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
	}
}
