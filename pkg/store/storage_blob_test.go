package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/memblob"
)

func newMemBlobStorage(t *testing.T, prefix string) *BlobStorage {
	t.Helper()
	bucket, err := blob.OpenBucket(t.Context(), "mem://")
	require.NoError(t, err)
	storage := NewBlobStorageFromBucket(bucket, prefix)
	t.Cleanup(func() {
		require.NoError(t, storage.Close())
	})
	return storage
}

func TestBlobStorage(t *testing.T) {
	storage := newMemBlobStorage(t, "")
	ctx := t.Context()

	require.NoError(t, storage.Write(ctx, "skeleton-biped-current.json", []byte("a")))
	require.NoError(t, storage.Write(ctx, "skeleton-quadruped-current.json", []byte("b")))

	data, err := storage.Read(ctx, "skeleton-biped-current.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)

	keys, err := storage.List(ctx, "skeleton-")
	require.NoError(t, err)
	assert.Equal(t, []string{"skeleton-quadruped-current.json", "skeleton-biped-current.json"}, keys)

	require.NoError(t, storage.Delete(ctx, "skeleton-biped-current.json"))
	_, err = storage.Read(ctx, "skeleton-biped-current.json")
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, storage.Delete(ctx, "skeleton-biped-current.json"))
}

func TestBlobStoragePrefix(t *testing.T) {
	storage := newMemBlobStorage(t, "skeletons")
	ctx := t.Context()

	require.NoError(t, storage.Write(ctx, "skeleton-biped-current.json", []byte("a")))

	// keys come back without the bucket prefix
	keys, err := storage.List(ctx, "skeleton-")
	require.NoError(t, err)
	assert.Equal(t, []string{"skeleton-biped-current.json"}, keys)

	data, err := storage.Read(ctx, "skeleton-biped-current.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)
}

func TestBlobStorageReadMissing(t *testing.T) {
	storage := newMemBlobStorage(t, "")

	_, err := storage.Read(t.Context(), "skeleton-nope-current.json")
	require.ErrorIs(t, err, os.ErrNotExist)
}
