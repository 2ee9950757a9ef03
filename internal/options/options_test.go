package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type chunkConfig struct {
	minChunk int
	label    string
	calls    []string
}

func (c *chunkConfig) setMinChunk(n int) error {
	if n <= 0 {
		return errors.New("chunk size must be positive")
	}
	c.minChunk = n
	c.calls = append(c.calls, "minChunk")

	return nil
}

func withMinChunk(n int) Option[*chunkConfig] {
	return New(func(c *chunkConfig) error { return c.setMinChunk(n) })
}

func withLabel(label string) Option[*chunkConfig] {
	return NoError(func(c *chunkConfig) {
		c.label = label
		c.calls = append(c.calls, "label")
	})
}

func TestNew(t *testing.T) {
	t.Run("applies valid value", func(t *testing.T) {
		cfg := &chunkConfig{}
		require.NoError(t, withMinChunk(64).apply(cfg))
		require.Equal(t, 64, cfg.minChunk)
	})

	t.Run("propagates error", func(t *testing.T) {
		cfg := &chunkConfig{}
		err := withMinChunk(0).apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be positive")
		require.Zero(t, cfg.minChunk)
	})
}

func TestNoError(t *testing.T) {
	cfg := &chunkConfig{}
	require.NoError(t, withLabel("lng").apply(cfg))
	require.Equal(t, "lng", cfg.label)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &chunkConfig{}
		err := Apply(cfg, withLabel("a"), withMinChunk(8), withLabel("b"))
		require.NoError(t, err)
		require.Equal(t, "b", cfg.label)
		require.Equal(t, 8, cfg.minChunk)
		require.Equal(t, []string{"label", "minChunk", "label"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &chunkConfig{}
		err := Apply(cfg, withMinChunk(4), withMinChunk(-1), withLabel("unreached"))
		require.Error(t, err)
		require.Equal(t, 4, cfg.minChunk)
		require.Empty(t, cfg.label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &chunkConfig{}
		require.NoError(t, Apply(cfg, nil, withLabel("x"), nil))
		require.Equal(t, "x", cfg.label)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &chunkConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})

	t.Run("works with non-struct targets", func(t *testing.T) {
		var n int
		require.NoError(t, Apply(&n, NoError(func(p *int) { *p = 42 })))
		require.Equal(t, 42, n)
	})
}
