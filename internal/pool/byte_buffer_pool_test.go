package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)
	bb.MustWrite([]byte("POINT(1 2)"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)

	n, err := bb.Write([]byte("POINT"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	bb.MustWrite([]byte("(1 2)"))
	assert.Equal(t, "POINT(1 2)", bb.String())
	assert.Equal(t, []byte("POINT(1 2)"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)
	bb.MustWrite([]byte("EMPTY"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "EMPTY", buf.String())
}

type errorWriter struct {
	err error
}

func (ew *errorWriter) Write([]byte) (int, error) {
	return 0, ew.err
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)
	bb.MustWrite([]byte("test"))

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(TextBufferDefaultSize)
		bb.Grow(10)
		assert.Equal(t, TextBufferDefaultSize, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.MustWrite([]byte("ab"))
		before := cap(bb.B)
		bb.Grow(before)
		assert.GreaterOrEqual(t, cap(bb.B), 2+TextBufferDefaultSize)
		assert.Equal(t, "ab", bb.String())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * TextBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.ExtendOrGrow(size)
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})

	t.Run("grows at least by required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(10 * TextBufferDefaultSize)
		assert.GreaterOrEqual(t, cap(bb.B), 10*TextBufferDefaultSize)
	})
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("ab"))

	bb.ExtendOrGrow(8)
	require.Equal(t, 10, bb.Len())
	assert.Equal(t, []byte("ab"), bb.B[:2])

	copy(bb.B[2:], "cdefghij")
	assert.Equal(t, "abcdefghij", bb.String())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns an empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		assert.Equal(t, 0, bb.Len())

		bb.MustWrite([]byte("data"))
		p.Put(bb)

		bb2 := p.Get()
		assert.Equal(t, 0, bb2.Len())
	})

	t.Run("put ignores nil", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := p.Get()
		bb.Grow(64)
		require.NotPanics(t, func() { p.Put(bb) })
	})

	t.Run("default pools", func(t *testing.T) {
		text := GetTextBuffer()
		require.NotNil(t, text)
		PutTextBuffer(text)

		blob := GetBlobBuffer()
		require.NotNil(t, blob)
		PutBlobBuffer(blob)
	})

	t.Run("concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bb := GetTextBuffer()
				bb.MustWrite([]byte("LINESTRING(0 0, 1 1)"))
				PutTextBuffer(bb)
			}()
		}
		wg.Wait()
	})
}
