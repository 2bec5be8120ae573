package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T, maxBytes int64) service.FileStorage {
	t.Helper()

	assets := memblob.OpenBucket(nil)
	deepAR := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = assets.Close()
		_ = deepAR.Close()
	})

	return NewBucketStorage(map[service.Namespace]Bucket{
		service.NamespaceAssets: {Bucket: assets, BaseURL: "https://cdn.test/assets/"},
		service.NamespaceDeepAR: {Bucket: deepAR, BaseURL: "https://cdn.test/deepar"},
	}, maxBytes, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBucketStorage_AddListDelete(t *testing.T) {
	storage := newTestStorage(t, 0)
	ctx := context.Background()

	url, err := storage.AddFile(ctx, service.NamespaceAssets, "ar_models/classic/red/main image.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/assets/ar_models/classic/red/main%20image.png", url)

	_, err = storage.AddFile(ctx, service.NamespaceAssets, "ar_models/classic/red/front.png", []byte("png"), "image/png")
	require.NoError(t, err)
	_, err = storage.AddFile(ctx, service.NamespaceAssets, "ar_models/runner/blue/main.png", []byte("png"), "image/png")
	require.NoError(t, err)

	files, err := storage.ListFiles(ctx, service.NamespaceAssets, "ar_models/classic/")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "ar_models/classic/red/front.png", files[0].Path)
	assert.Equal(t, int64(3), files[0].Size)
	assert.Equal(t, "image/png", files[0].ContentType)

	require.NoError(t, storage.DeleteURL(ctx, service.NamespaceAssets, url))
	files, err = storage.ListFiles(ctx, service.NamespaceAssets, "ar_models/classic/")
	require.NoError(t, err)
	assert.Len(t, files, 1)

	// Missing files are not an error.
	require.NoError(t, storage.DeleteFile(ctx, service.NamespaceAssets, "ar_models/classic/red/main image.png"))
}

func TestBucketStorage_NamespacesAreSeparate(t *testing.T) {
	storage := newTestStorage(t, 0)
	ctx := context.Background()

	url, err := storage.AddFile(ctx, service.NamespaceDeepAR, "effects/classic_red.deepar", []byte("fx"), "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/deepar/effects/classic_red.deepar", url)

	files, err := storage.ListFiles(ctx, service.NamespaceAssets, "")
	require.NoError(t, err)
	assert.Empty(t, files)

	err = storage.DeleteURL(ctx, service.NamespaceAssets, url)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBucketStorage_Rejections(t *testing.T) {
	storage := newTestStorage(t, 4)
	ctx := context.Background()

	tests := []struct {
		name      string
		namespace service.Namespace
		path      string
		content   []byte
		want      error
	}{
		{name: "too large", namespace: service.NamespaceAssets, path: "a.png", content: []byte("12345"), want: domainerrors.ErrFileTooLarge},
		{name: "empty", namespace: service.NamespaceAssets, path: "a.png", content: nil, want: domainerrors.ErrValidationFailed},
		{name: "traversal", namespace: service.NamespaceAssets, path: "../a.png", content: []byte("1"), want: domainerrors.ErrValidationFailed},
		{name: "unknown namespace", namespace: "videos", path: "a.mp4", content: []byte("1"), want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.AddFile(ctx, tt.namespace, tt.path, tt.content, "")
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/smartfit-assets", defaultBaseURL("gs://smartfit-assets"))
	assert.Equal(t, "file:///var/smartfit/assets", defaultBaseURL("file:///var/smartfit/assets/"))
}
