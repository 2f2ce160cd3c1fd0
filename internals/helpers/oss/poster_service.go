// file: internals/helpers/oss/poster_service.go
package helper

import (
	"context"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// PosterStorage is the upload/delete facade controllers talk to, so the OSS
// wiring stays out of the handlers.
type PosterStorage interface {
	UploadPoster(ctx context.Context, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByURL(ctx context.Context, publicURL string) error
}

type OSSPosterStorage struct {
	svc *OSSService
}

func NewOSSPosterStorageFromEnv() (*OSSPosterStorage, error) {
	s, err := NewOSSServiceFromEnv("events")
	if err != nil {
		return nil, err
	}
	return &OSSPosterStorage{svc: s}, nil
}

func (p *OSSPosterStorage) UploadPoster(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File missing")
	}
	url, err := p.svc.UploadAsWebP(ctx, fh) // re-encode → WebP
	if err != nil {
		return "", err
	}
	return url, nil
}

func (p *OSSPosterStorage) DeleteByURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL empty")
	}
	return p.svc.DeleteByPublicURL(ctx, publicURL)
}

var (
	storageOnce sync.Once
	storageInst PosterStorage
	storageErr  error
)

// GetPosterStorage lazily builds the OSS-backed storage from ENV once.
func GetPosterStorage() (PosterStorage, error) {
	storageOnce.Do(func() {
		storageInst, storageErr = NewOSSPosterStorageFromEnv()
	})
	return storageInst, storageErr
}

/* ===== multipart helpers ===== */

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// GetImageFile fetches the uploaded file from the first matching field name.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) *multipart.FileHeader {
	if len(fieldNames) == 0 {
		fieldNames = []string{"image", "poster", "file"}
	}
	for _, name := range fieldNames {
		if fh, err := c.FormFile(name); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}
