// Package storage keeps uploaded images in a gocloud blob bucket.
package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
)

const defaultBucketURL = "mem://"

// allowedImageTypes maps accepted content types to the stored extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSize       int64
	logger        *slog.Logger
}

// Params holds dependencies for ImageStorage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("storage.bucketUrl not set, uploads are kept in memory")
		bucketURL = defaultBucketURL
	}

	storage, err := Open(params.Ctx, bucketURL, cfg.PublicBaseURL, cfg.MaxUploadSize, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return storage.Close()
		},
	})

	return storage, nil
}

// Open opens a bucket by URL.
func Open(ctx context.Context, bucketURL, publicBaseURL string, maxSize int64, logger *slog.Logger) (*blobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxSize:       maxSize,
		logger:        logger,
	}, nil
}

// Upload stores the content as folder/<sha256><ext>. Identical uploads share one object.
func (s *blobStorage) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (*service.StoredObject, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Only JPEG, PNG, WEBP and GIF images are allowed").WithDetails(filename)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > s.maxSize {
		return nil, domainerrors.ErrValidationFailed.WithMessage("File too large, maximum is " + util.FormatBytes(s.maxSize)).WithDetails(filename)
	}

	sum, err := util.Checksum(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	key := path.Join(folder, sum+ext)

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrapf(err, "failed to write object %s", key)
	}

	s.logger.Debug("Stored upload", slog.String("key", key), slog.String("size", util.FormatBytes(int64(len(data)))))

	return &service.StoredObject{
		Key:  key,
		URL:  s.publicURL(key),
		Size: int64(len(data)),
	}, nil
}

// Delete removes an object. A missing key is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if isNotFound(err) {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}
