package summarize

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/upstream"
)

type mockUpstream struct {
	hasKey   bool
	payloads []any
	result   *upstream.Result
	err      error
}

func (m *mockUpstream) HasKey() bool { return m.hasKey }

func (m *mockUpstream) Forward(_ context.Context, payload any) (*upstream.Result, error) {
	m.payloads = append(m.payloads, payload)
	return m.result, m.err
}

func TestSummarize_DefaultSystemPromptAndTemplate(t *testing.T) {
	up := &mockUpstream{hasKey: true, result: &upstream.Result{StatusCode: http.StatusOK, Body: []byte(`{}`)}}
	svc := NewService(up, "deepseek-chat")

	_, err := svc.Summarize(context.Background(), Request{
		NovelText:  "第一章...",
		UserPrompt: "生成一张森林场景图",
	})
	require.NoError(t, err)
	require.Len(t, up.payloads, 1)

	got, ok := up.payloads[0].(chatRequest)
	require.True(t, ok)
	assert.Equal(t, "deepseek-chat", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)

	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, DefaultSystemPrompt, got.Messages[0].Content)

	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
	want := "小说文本 (Novel text):\n第一章...\n\n用户需求 (User request):\n生成一张森林场景图"
	assert.Equal(t, want, got.Messages[1].Content)
}

func TestSummarize_CallerOverrides(t *testing.T) {
	up := &mockUpstream{hasKey: true, result: &upstream.Result{StatusCode: http.StatusOK}}
	svc := NewService(up, "deepseek-chat")

	_, err := svc.Summarize(context.Background(), Request{
		Model:        "deepseek-reasoner",
		SystemPrompt: "只提取原文片段",
		NovelText:    "text",
		UserPrompt:   "主题：古墓",
	})
	require.NoError(t, err)

	got := up.payloads[0].(chatRequest)
	assert.Equal(t, "deepseek-reasoner", got.Model)
	assert.Equal(t, "只提取原文片段", got.Messages[0].Content)
}

func TestSummarize_MissingKey(t *testing.T) {
	up := &mockUpstream{hasKey: false}
	svc := NewService(up, "deepseek-chat")

	_, err := svc.Summarize(context.Background(), Request{NovelText: "x"})
	require.Error(t, err)

	e, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConfiguration, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, e.Status())
	assert.Empty(t, up.payloads)
}

func TestHandler_WireFormat(t *testing.T) {
	var body map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"森林"}}]}`))
	}))
	defer srv.Close()

	client := upstream.New("deepseek", srv.URL, "k", time.Second, nil)
	h := NewHandler(NewService(client, "deepseek-chat"))

	req := httptest.NewRequest(http.MethodPost, "/proxy/deepseek/summarize",
		strings.NewReader(`{"novelText":"第一章...","userPrompt":"森林","stream":true}`))
	rec := httptest.NewRecorder()
	h.Summarize(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "森林")

	assert.JSONEq(t, `false`, string(body["stream"]))
	assert.JSONEq(t, `"deepseek-chat"`, string(body["model"]))

	var messages []map[string]any
	require.NoError(t, json.Unmarshal(body["messages"], &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0]["role"])
	assert.Equal(t, "user", messages[1]["role"])
}

func TestHandler_UpstreamServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"Server overloaded"}}`))
	}))
	defer srv.Close()

	client := upstream.New("deepseek", srv.URL, "k", time.Second, nil)
	h := NewHandler(NewService(client, "deepseek-chat"))

	rec := httptest.NewRecorder()
	h.Summarize(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, `{"error":{"message":"Server overloaded"}}`, rec.Body.String())
}
