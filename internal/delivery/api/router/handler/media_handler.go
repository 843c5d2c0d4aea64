package handler

import (
	"net/http"
	"path"
	"strings"

	domainerrors "tube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Bucket *blob.Bucket
}

// MediaHandler serves stored media objects when no CDN fronts the bucket.
type MediaHandler struct {
	bucket *blob.Bucket
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{bucket: params.Bucket}
}

// GetMedia streams the object named by the wildcard path.
func (h *MediaHandler) GetMedia(c echo.Context) error {
	key := strings.TrimPrefix(path.Clean("/"+c.Param("*")), "/")
	if key == "" || strings.HasSuffix(key, "/") {
		return domainerrors.ErrMediaNotFound
	}

	reader, err := h.bucket.NewReader(c.Request().Context(), key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return domainerrors.ErrMediaNotFound
		}

		return errors.Wrapf(err, "open media %s", key)
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, reader.ContentType(), reader)
}
