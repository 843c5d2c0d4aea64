package service

import (
	"context"
	"io"

	"tube/internal/errors"
)

// ErrMediaTooLarge is returned when an upload exceeds the configured maximum size.
var ErrMediaTooLarge = errors.New("file exceeds the maximum upload size")

// MediaFile is an uploaded file handed from the transport to the media store.
type MediaFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaStorage stores user media and returns a public URL for it.
type MediaStorage interface {
	// Upload writes file under folder and returns its public URL.
	Upload(ctx context.Context, folder string, file *MediaFile) (string, error)
}
