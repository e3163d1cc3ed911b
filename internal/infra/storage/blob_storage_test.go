package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStorage(t *testing.T, maxSize int64) *blobStorage {
	t.Helper()

	storage, err := Open(context.Background(), "mem://", "https://cdn.example.com/", maxSize, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestBlobStorage_Upload(t *testing.T) {
	storage := newMemStorage(t, 1024)
	ctx := context.Background()

	obj, err := storage.Upload(ctx, "products", "shoe.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.Key, "products/"))
	assert.True(t, strings.HasSuffix(obj.Key, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+obj.Key, obj.URL)
	assert.Equal(t, int64(len("png-bytes")), obj.Size)

	stored, err := storage.bucket.ReadAll(ctx, obj.Key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestBlobStorage_Upload_SameContentSameKey(t *testing.T) {
	storage := newMemStorage(t, 1024)
	ctx := context.Background()

	first, err := storage.Upload(ctx, "avatars", "a.jpg", "image/jpeg", strings.NewReader("same"))
	require.NoError(t, err)
	second, err := storage.Upload(ctx, "avatars", "b.jpg", "image/jpeg", strings.NewReader("same"))
	require.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
}

func TestBlobStorage_Upload_Rejections(t *testing.T) {
	storage := newMemStorage(t, 4)

	tests := []struct {
		name        string
		contentType string
		body        []byte
	}{
		{"unsupported type", "application/pdf", []byte("pdf")},
		{"too large", "image/png", bytes.Repeat([]byte("x"), 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.Upload(context.Background(), "reviews", "f", tt.contentType, bytes.NewReader(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBlobStorage_Delete(t *testing.T) {
	storage := newMemStorage(t, 1024)
	ctx := context.Background()

	obj, err := storage.Upload(ctx, "products", "a.gif", "image/gif", strings.NewReader("gif"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, obj.Key))

	exists, err := storage.bucket.Exists(ctx, obj.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting again is a no-op
	assert.NoError(t, storage.Delete(ctx, obj.Key))
}
