// Package storage defines the interface for object storage operations and the
// helpers shared by its implementations.
// The TOS implementation talks to Volcengine's S3-compatible endpoint through
// minio-go, so any S3-compatible provider works by changing the endpoint.
package storage

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectInfo is the provider's answer to a successful upload.
type ObjectInfo struct {
	ETag      string `json:"etag"`
	VersionID string `json:"versionId,omitempty"`
	Size      int64  `json:"size"`
	Location  string `json:"location,omitempty"`
}

// Storage is the interface for uploading objects.
type Storage interface {
	// UploadFile uploads the local file at path to bucket under key.
	UploadFile(ctx context.Context, bucket, key, path string) (*ObjectInfo, error)
	// PublicURL constructs the browser-accessible URL for an object.
	PublicURL(bucket, key string) string
}

// DeriveKey builds a fresh object key for filename uploaded at now:
// uploads/YYYY/MM/DD/<32 hex chars><ext>, using the UTC date.
func DeriveKey(filename string, now time.Time) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "uploads/" + now.UTC().Format("2006/01/02") + "/" + token + Ext(filename)
}

// Ext returns the extension of filename's base name, including the dot.
// Dotfiles such as ".env" have no extension.
func Ext(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}
