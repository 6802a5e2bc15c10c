package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		first := Key("solve", 5, 2, true)
		second := Key("solve", 5, 2, true)

		assert.Equal(t, first, second)
		assert.True(t, strings.HasPrefix(first, "solve-"))
	})

	t.Run("Distinct parts give distinct keys", func(t *testing.T) {
		assert.NotEqual(t, Key("solve", 5, 2, true), Key("solve", 5, 2, false))
		assert.NotEqual(t, Key("solve", 5, 2, true), Key("solve", 5, 3, true))
		assert.NotEqual(t, Key("solve", 5, 2, true), Key("bound", 5, 2, true))
	})
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Roundtrip", func(t *testing.T) {
		c, err := NewFileCache(t.TempDir())
		require.Nil(t, err)

		require.Nil(t, c.Set(ctx, Key("solve", 4, 2), []byte(`{"rounds":3}`)))
		data, hit, err := c.Get(ctx, Key("solve", 4, 2))

		require.Nil(t, err)
		assert.True(t, hit)
		assert.Equal(t, []byte(`{"rounds":3}`), data)
	})

	t.Run("Miss", func(t *testing.T) {
		c, err := NewFileCache(t.TempDir())
		require.Nil(t, err)

		_, hit, err := c.Get(ctx, Key("solve", 9, 2))

		require.Nil(t, err)
		assert.False(t, hit)
	})

	t.Run("Overwrite", func(t *testing.T) {
		c, err := NewFileCache(t.TempDir())
		require.Nil(t, err)
		key := Key("solve", 4, 2)

		require.Nil(t, c.Set(ctx, key, []byte("first")))
		require.Nil(t, c.Set(ctx, key, []byte("second")))
		data, hit, err := c.Get(ctx, key)

		require.Nil(t, err)
		assert.True(t, hit)
		assert.Equal(t, []byte("second"), data)
	})
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	require.Nil(t, c.Set(ctx, "anything", []byte("data")))
	_, hit, err := c.Get(ctx, "anything")

	require.Nil(t, err)
	assert.False(t, hit)
}
