package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/metrics"
)

func TestPostJSON_SendsBearerAndBody(t *testing.T) {
	var gotAuth, gotType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New("doubao", srv.URL, "secret", time.Second, metrics.NewCollector())
	res, err := c.PostJSON(context.Background(), map[string]string{"prompt": "forest"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]any{"prompt": "forest"}, gotBody)
	assert.True(t, res.OK())
	assert.JSONEq(t, `{"ok":true}`, string(res.Body))
}

func TestForward_NonSuccessKeepsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	c := New("deepseek", srv.URL, "wrong", time.Second, nil)
	_, err := c.Forward(context.Background(), map[string]string{})
	require.Error(t, err)

	e, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, e.Status())
	assert.Equal(t, `{"error":{"message":"bad key"}}`, string(e.Body))
}

func TestPostJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New("slow", srv.URL, "k", 50*time.Millisecond, nil)
	_, err := c.PostJSON(context.Background(), struct{}{})
	require.Error(t, err)

	e, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnknown, e.Kind)
}

func TestHasKey(t *testing.T) {
	assert.False(t, New("x", "http://localhost", "", time.Second, nil).HasKey())
	assert.True(t, New("x", "http://localhost", "k", time.Second, nil).HasKey())
}
