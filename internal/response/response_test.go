package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novel2image/proxy/internal/apperror"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestFail_ConfigurationError(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, apperror.Config(0, "API key not configured"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "API key not configured", env.Error)
}

func TestFail_UpstreamBodyForwardedVerbatim(t *testing.T) {
	body := []byte(`{"error":{"message":"invalid size","code":"InvalidParameter"}}`)
	rec := httptest.NewRecorder()
	Fail(rec, apperror.Upstream(http.StatusUnprocessableEntity, body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, string(body), rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestFail_ServerErrorDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, apperror.UpstreamServer("storage server error", map[string]string{"requestId": "req-1"}, nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "storage server error", env.Error)
	assert.Equal(t, map[string]interface{}{"requestId": "req-1"}, env.Detail)
}

func TestFail_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Error, "boom")
}

func TestRaw_DefaultsToJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	Raw(rec, http.StatusOK, "", []byte(`{"data":[]}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"data":[]}`, rec.Body.String())
}
