package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksum_Parts(t *testing.T) {
	whole := Checksum([]byte("this is a longer test string to hash"))
	split := Checksum([]byte("this is a "), []byte("longer test"), nil, []byte(" string to hash"))
	assert.Equal(t, whole, split)

	assert.Equal(t, Checksum(nil), Checksum())
	assert.NotEqual(t, whole, Checksum([]byte("this is a longer test string to hasH")))
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	b.ResetTimer()
	for b.Loop() {
		Checksum(data)
	}
}
