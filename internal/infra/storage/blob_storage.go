// Package storage adapts a gocloud.dev blob bucket to the ObjectStorage domain service.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	"uploader/config"
	"uploader/internal/domain/service"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the bucket named by storage.bucketUrl and closes it on shutdown.
func NewBucket(params Params) (*blob.Bucket, error) {
	bucketURL := params.Config.Storage.BucketURL
	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", redactURL(bucketURL))
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.InfoContext(ctx, "Image bucket opened", slog.String("bucket", redactURL(bucketURL)))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage returns an ObjectStorage writing to the bucket.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.Config) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}
}

// Put uploads the body under key. The returned URL is the public base URL joined
// with the key, or the bare key when no public base URL is configured.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.Upload(ctx, key, body, opts); err != nil {
		return "", errors.Wrapf(err, "upload object %s", key)
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object. A missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && !isNotFound(err) {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

// redactURL drops credentials and query parameters before logging.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.User = nil
	u.RawQuery = ""

	return u.String()
}
