package handler

import (
	"io"
	"net/http"

	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// formFile opens the multipart file field name. A missing field or a
// non-multipart request yields a nil file so the usecase can report which
// file is required. The returned closer is never nil.
func formFile(c echo.Context, name string) (*service.MediaFile, io.Closer, error) {
	header, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, io.NopCloser(nil), nil
		}

		return nil, io.NopCloser(nil), domainerrors.ErrValidationFailed.WithDetails("invalid multipart form")
	}

	file, err := header.Open()
	if err != nil {
		return nil, io.NopCloser(nil), errors.Wrapf(err, "open form file %s", name)
	}

	return &service.MediaFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	}, file, nil
}

// bind decodes the request into input and validates it.
func bind(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(input)
}
