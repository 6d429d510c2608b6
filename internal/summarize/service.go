// Package summarize proxies novel summarization requests to the DeepSeek chat
// completions API.
package summarize

import (
	"context"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/upstream"
)

// Timeout bounds a single summarization call.
const Timeout = 120 * time.Second

// Upstream is the provider-facing half of the proxy.
type Upstream interface {
	HasKey() bool
	Forward(ctx context.Context, payload any) (*upstream.Result, error)
}

// Request is the inbound summarization payload. Stream is accepted for
// client compatibility and ignored.
type Request struct {
	Model        string `json:"model,omitempty" example:"deepseek-chat"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
	NovelText    string `json:"novelText,omitempty" example:"第一章..."`
	UserPrompt   string `json:"userPrompt,omitempty" example:"生成一张森林场景图"`
	Stream       bool   `json:"stream,omitempty"`
}

// chatRequest is the body sent to the provider. Stream is always false and
// always present.
type chatRequest struct {
	Model    string                         `json:"model"`
	Messages []openai.ChatCompletionMessage `json:"messages"`
	Stream   bool                           `json:"stream"`
}

// Service builds chat requests from inbound payloads.
type Service struct {
	upstream     Upstream
	defaultModel string
}

// NewService creates a summarization Service.
func NewService(up Upstream, defaultModel string) *Service {
	return &Service{upstream: up, defaultModel: defaultModel}
}

// Summarize forwards req to the provider and returns its successful answer.
func (s *Service) Summarize(ctx context.Context, req Request) (*upstream.Result, error) {
	if !s.upstream.HasKey() {
		return nil, apperror.Config(http.StatusInternalServerError, "API key not configured")
	}
	return s.upstream.Forward(ctx, s.build(req))
}

func (s *Service) build(req Request) chatRequest {
	model := req.Model
	if model == "" {
		model = s.defaultModel
	}
	system := req.SystemPrompt
	if system == "" {
		system = DefaultSystemPrompt
	}

	return chatRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserMessage(req.NovelText, req.UserPrompt)},
		},
		Stream: false,
	}
}
