// Package storage stores user media in a gocloud.dev blob bucket. The bucket
// URL scheme picks the driver: s3:// for S3 compatible stores, file:// for a
// local directory and mem:// for tests.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"tube/config"
	"tube/internal/domain/lifecycle"
	"tube/internal/domain/service"
	"tube/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSize       int64
	newKey        func(folder, filename string) string
}

// OpenBucket opens the configured bucket and closes it when the app stops.
func OpenBucket(params Params) (*blob.Bucket, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing media bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// New returns the media storage backed by the opened bucket.
func New(bucket *blob.Bucket, cfg *config.Config) service.MediaStorage {
	return NewBlobStorage(bucket, cfg.Media)
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, cfg config.MediaConfig) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxSize:       cfg.MaxUploadSize,
		newKey:        randomKey,
	}
}

// Upload streams file into folder under a random name that keeps the original
// extension, and returns the public URL of the stored object.
func (s *blobStorage) Upload(ctx context.Context, folder string, file *service.MediaFile) (string, error) {
	if file == nil || file.Body == nil {
		return "", errors.New("no file to upload")
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", errors.Wrapf(service.ErrMediaTooLarge, "%d bytes", file.Size)
	}

	key := s.newKey(folder, file.Filename)

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: file.ContentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	body := file.Body
	if s.maxSize > 0 {
		// Size comes from the client, so the stream itself is bounded too.
		body = io.LimitReader(file.Body, s.maxSize+1)
	}

	written, err := io.Copy(w, body)
	if err == nil && s.maxSize > 0 && written > s.maxSize {
		err = errors.Wrapf(service.ErrMediaTooLarge, "more than %d bytes", s.maxSize)
	}
	if err != nil {
		// Cancelling the context before Close aborts the write.
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.publicURL(key), nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}

func randomKey(folder, filename string) string {
	return path.Join(folder, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
}
