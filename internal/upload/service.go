// Package upload stores files in object storage on behalf of the browser.
package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/config"
	"github.com/novel2image/proxy/internal/storage"
)

// Request describes one upload. Filename is the name the key extension is
// taken from; it may differ from Path when the bytes were staged.
type Request struct {
	Path      string
	Filename  string
	Bucket    string
	ObjectKey string
	// ConfigStatus is the HTTP status reported when storage is not configured.
	ConfigStatus int
}

// Result is returned to the caller after a successful upload.
type Result struct {
	Bucket    string              `json:"bucket" example:"novel-images"`
	ObjectKey string              `json:"objectKey" example:"uploads/2025/03/09/0f8e3c1d2b4a49e6a7c5d9b8e1f2a3b4.png"`
	URL       string              `json:"url" example:"https://novel-images.tos-cn-beijing.volces.com/uploads/2025/03/09/0f8e3c1d2b4a49e6a7c5d9b8e1f2a3b4.png"`
	Result    *storage.ObjectInfo `json:"result"`
}

// Service resolves bucket and key, then delegates to the storage adapter.
type Service struct {
	store     storage.Storage
	cfg       *config.Config
	now       func() time.Time
	deriveKey func(filename string, now time.Time) string
}

// NewService creates an upload Service.
func NewService(store storage.Storage, cfg *config.Config) *Service {
	return &Service{
		store:     store,
		cfg:       cfg,
		now:       time.Now,
		deriveKey: storage.DeriveKey,
	}
}

// Upload stores the file described by req.
func (s *Service) Upload(ctx context.Context, req Request) (*Result, error) {
	bucket := req.Bucket
	if bucket == "" {
		bucket = s.cfg.TOSBucketName
	}
	if err := s.cfg.StorageMissing(bucket); err != nil {
		return nil, apperror.Config(req.ConfigStatus, err.Error())
	}

	key := req.ObjectKey
	if key == "" {
		name := req.Filename
		if name == "" {
			name = req.Path
		}
		key = s.deriveKey(name, s.now())
	}

	info, err := s.store.UploadFile(ctx, bucket, key, req.Path)
	if err != nil {
		return nil, fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}

	return &Result{
		Bucket:    bucket,
		ObjectKey: key,
		URL:       s.store.PublicURL(bucket, key),
		Result:    info,
	}, nil
}
