package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/s3utils"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/metrics"
)

// upstreamName labels storage calls in metrics.
const upstreamName = "tos"

// localRequestID is the request id minio-go stamps on errors raised before
// anything is sent to the server.
const localRequestID = "minio"

// TOSOptions configures a TOSStorage.
type TOSOptions struct {
	// S3Endpoint is the S3-compatible API host, e.g. "tos-s3-cn-beijing.volces.com".
	S3Endpoint string
	// PublicEndpoint is the host suffix of public object URLs, e.g. "tos-cn-beijing.volces.com".
	PublicEndpoint string
	Region         string
	AccessKey      string
	SecretKey      string
	// Insecure disables TLS and PathStyle disables virtual-host bucket
	// addressing; both are only used against local test servers.
	Insecure  bool
	PathStyle bool
	// Metrics records one observation per upload call; nil disables it.
	Metrics *metrics.Collector
}

// TOSStorage implements Storage on Volcengine TOS through its S3-compatible API.
type TOSStorage struct {
	client         *minio.Client
	publicEndpoint string
	metrics        *metrics.Collector
}

// ServerErrorDetail is the structured part of a storage server fault.
type ServerErrorDetail struct {
	Code       string `json:"code"`
	RequestID  string `json:"requestId"`
	HostID     string `json:"hostId,omitempty"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// NewTOSStorage creates a client for the TOS S3 endpoint. No network call is
// made until the first upload.
func NewTOSStorage(opts TOSOptions) (*TOSStorage, error) {
	lookup := minio.BucketLookupDNS
	if opts.PathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(opts.S3Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:       !opts.Insecure,
		Region:       opts.Region,
		BucketLookup: lookup,
		// A single attempt; failures are reported to the caller as they are.
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("create tos client: %w", err)
	}

	return &TOSStorage{
		client:         client,
		publicEndpoint: strings.Trim(opts.PublicEndpoint, "/"),
		metrics:        opts.Metrics,
	}, nil
}

// UploadFile uploads the file at path. The content type is derived from the
// path's extension. Errors are classified into apperror kinds.
func (s *TOSStorage) UploadFile(ctx context.Context, bucket, key, path string) (*ObjectInfo, error) {
	if err := s3utils.CheckValidBucketName(bucket); err != nil {
		return nil, apperror.UpstreamClient(fmt.Sprintf("TOS client error: invalid bucket %q: %v", bucket, err), err)
	}
	if err := s3utils.CheckValidObjectName(key); err != nil {
		return nil, apperror.UpstreamClient(fmt.Sprintf("TOS client error: invalid object key %q: %v", key, err), err)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, classify(err)
	}

	start := time.Now()
	info, err := s.client.FPutObject(ctx, bucket, key, path, minio.PutObjectOptions{})
	s.metrics.ObserveUpstream(upstreamName, responseCode(err), time.Since(start))
	if err != nil {
		return nil, classify(err)
	}

	log.Printf("storage: uploaded %s/%s (%d bytes)", bucket, key, info.Size)
	return &ObjectInfo{
		ETag:      info.ETag,
		VersionID: info.VersionID,
		Size:      info.Size,
		Location:  info.Location,
	}, nil
}

// PublicURL returns https://<bucket>.<public endpoint>/<key>. Whether the
// object is actually readable depends on the bucket policy or a CDN.
func (s *TOSStorage) PublicURL(bucket, key string) string {
	return "https://" + bucket + "." + s.publicEndpoint + "/" + key
}

// responseCode is the HTTP status behind an upload result, or 0 when the
// server never answered.
func responseCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && resp.RequestID != localRequestID {
		return resp.StatusCode
	}
	return 0
}

// classify maps an upload failure onto the proxy error kinds. Any error
// response from the server is a server error, 4xx included.
func classify(err error) error {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		if resp.StatusCode == 0 || resp.RequestID == localRequestID {
			return apperror.UpstreamClient("TOS client error: "+resp.Message, err)
		}
		return apperror.UpstreamServer("TOS server error", ServerErrorDetail{
			Code:       resp.Code,
			RequestID:  resp.RequestID,
			HostID:     resp.HostID,
			Message:    resp.Message,
			StatusCode: resp.StatusCode,
		}, err)
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return apperror.UpstreamClient("TOS client error: "+err.Error(), err)
	}

	return apperror.Unknown(err)
}
