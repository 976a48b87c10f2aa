package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Save and delete", func(t *testing.T) {
		ref, err := store.Save(ctx, ".png", []byte("png-bytes"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, URLPrefix))
		assert.True(t, strings.HasSuffix(ref, ".png"))

		path := filepath.Join(dir, strings.TrimPrefix(ref, URLPrefix))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))

		require.NoError(t, store.Delete(ctx, ref))
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Extension without dot", func(t *testing.T) {
		ref, err := store.Save(ctx, "jpg", []byte("x"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(ref, ".jpg"))
	})

	t.Run("Unique names", func(t *testing.T) {
		a, err := store.Save(ctx, ".png", []byte("a"))
		require.NoError(t, err)
		b, err := store.Save(ctx, ".png", []byte("b"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("Missing file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, URLPrefix+"missing.png"))
	})

	t.Run("Path traversal rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Delete(ctx, URLPrefix+"../secret"), ErrInvalidRef)
		assert.ErrorIs(t, store.Delete(ctx, "/etc/passwd"), ErrInvalidRef)
	})
}
