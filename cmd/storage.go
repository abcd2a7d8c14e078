package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/foomo/skeletonio/pkg/store"
)

// supportedBlobSchemes lists the URL schemes supported by blob storage
var supportedBlobSchemes = []string{"gs://", "s3://", "azblob://"}

// newLibrary creates a skeleton library on the configured storage backend
func newLibrary(ctx context.Context, v *viper.Viper, l *zap.Logger) (*store.Library, error) {
	storage, err := newStorage(ctx, v, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}
	return store.NewLibrary(l,
		store.LibraryWithStorage(storage),
		store.LibraryWithHistoryLimit(historyLimitFlag(v)),
	)
}

// newStorage creates a storage backend based on the configuration
func newStorage(ctx context.Context, v *viper.Viper, l *zap.Logger) (store.Storage, error) {
	storageType := storageTypeFlag(v)
	blobBucket := storageBlobBucketFlag(v)
	blobPrefix := storageBlobPrefixFlag(v)

	if storageType != "blob" && (blobBucket != "" || blobPrefix != "") {
		l.Warn("blob storage flags are set but storage-type is not 'blob'; blob config will be ignored",
			zap.String("storage-type", storageType),
			zap.String("blob-bucket", blobBucket),
			zap.String("blob-prefix", blobPrefix),
		)
	}

	switch storageType {
	case "blob":
		if blobBucket == "" {
			return nil, fmt.Errorf("blob bucket URL is required when storage-type is 'blob' (supported schemes: %s)", strings.Join(supportedBlobSchemes, ", "))
		}
		if !isValidBlobScheme(blobBucket) {
			return nil, fmt.Errorf("unsupported blob storage URL scheme in %q; supported schemes: %s", blobBucket, strings.Join(supportedBlobSchemes, ", "))
		}
		l.Info("using blob storage",
			zap.String("bucket", blobBucket),
			zap.String("prefix", blobPrefix),
		)
		return store.NewBlobStorage(ctx, blobBucket, blobPrefix)
	case "filesystem", "":
		dir := baseDirFlag(v)
		l.Info("using filesystem storage", zap.String("dir", dir))
		return store.NewFilesystemStorage(dir)
	default:
		return nil, fmt.Errorf("unknown storage type: %s (supported: filesystem, blob)", storageType)
	}
}

// isValidBlobScheme checks if the bucket URL has a supported scheme
func isValidBlobScheme(bucketURL string) bool {
	for _, scheme := range supportedBlobSchemes {
		if strings.HasPrefix(bucketURL, scheme) {
			return true
		}
	}
	return false
}
