package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"homeveda_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// optionalFormFile reads one optional multipart file field and turns it into
// a storage upload. Returns (nil, no-op, nil) when the field is absent. The
// caller must invoke the returned closer once the upload has been consumed.
func optionalFormFile(c *gin.Context, field string) (*storage.FileUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	return openFormFile(fh)
}

// openFormFile opens a multipart file header as a storage upload.
func openFormFile(fh *multipart.FileHeader) (*storage.FileUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	upload := &storage.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}
	if upload.ContentType == "" {
		upload.ContentType = "application/octet-stream"
	}
	return upload, func() { f.Close() }, nil
}
