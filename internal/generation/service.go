// Package generation proxies text-to-image requests to the Doubao Seedream API.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/upstream"
)

// Timeout bounds a single generation call.
const Timeout = 60 * time.Second

// DefaultSize is used when the caller does not pick an output size.
const DefaultSize = "2K"

// Upstream is the provider-facing half of the proxy.
type Upstream interface {
	HasKey() bool
	Forward(ctx context.Context, payload any) (*upstream.Result, error)
}

// Request is the inbound generation payload. Image is kept raw so a URL, a
// data URI or a list of references reaches the provider unchanged.
type Request struct {
	Model  string          `json:"model,omitempty" example:"doubao-seedream-4-0-250828"`
	Prompt string          `json:"prompt" example:"moonlit forest, ancient tomb entrance"`
	Size   string          `json:"size,omitempty" example:"2K"`
	Image  json.RawMessage `json:"image,omitempty" swaggertype:"string" example:"https://example.com/ref.png"`
}

// upstreamRequest is the body sent to the provider.
type upstreamRequest struct {
	Model  string          `json:"model"`
	Prompt string          `json:"prompt"`
	Image  json.RawMessage `json:"image,omitempty"`
	Size   string          `json:"size"`
}

// Service builds provider requests from inbound payloads.
type Service struct {
	upstream     Upstream
	defaultModel string
}

// NewService creates a generation Service.
func NewService(up Upstream, defaultModel string) *Service {
	return &Service{upstream: up, defaultModel: defaultModel}
}

// Generate forwards req to the provider and returns its successful answer.
func (s *Service) Generate(ctx context.Context, req Request) (*upstream.Result, error) {
	if !s.upstream.HasKey() {
		return nil, apperror.Config(http.StatusInternalServerError, "API key not configured")
	}
	return s.upstream.Forward(ctx, s.build(req))
}

func (s *Service) build(req Request) upstreamRequest {
	out := upstreamRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Size:   req.Size,
	}
	if out.Model == "" {
		out.Model = s.defaultModel
	}
	if out.Size == "" {
		out.Size = DefaultSize
	}
	if hasValue(req.Image) {
		out.Image = req.Image
	}
	return out
}

// hasValue reports whether raw holds something other than null or "".
func hasValue(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) > 0 && !bytes.Equal(v, []byte("null")) && !bytes.Equal(v, []byte(`""`))
}
