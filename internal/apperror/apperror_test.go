package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindConfiguration, http.StatusInternalServerError},
		{KindValidation, http.StatusBadRequest},
		{KindUpstreamClient, http.StatusBadRequest},
		{KindUpstreamServer, http.StatusBadGateway},
		{KindUnknown, http.StatusInternalServerError},
		{Kind(42), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestConfig_StatusOverride(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Config(http.StatusBadRequest, "missing").Status())
	assert.Equal(t, http.StatusInternalServerError, Config(0, "missing").Status())
}

func TestUpstream_KeepsStatusAndBody(t *testing.T) {
	e := Upstream(http.StatusTooManyRequests, []byte(`{"error":{"message":"slow down"}}`))
	assert.Equal(t, KindUpstreamClient, e.Kind)
	assert.Equal(t, http.StatusTooManyRequests, e.Status())
	assert.JSONEq(t, `{"error":{"message":"slow down"}}`, string(e.Body))

	e = Upstream(http.StatusServiceUnavailable, []byte("down"))
	assert.Equal(t, KindUpstreamServer, e.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, e.Status())
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("upload: %w", Validation("file is required"))
	e := From(wrapped)
	assert.Equal(t, KindValidation, e.Kind)

	e = From(errors.New("disk on fire"))
	require.Equal(t, KindUnknown, e.Kind)
	assert.Contains(t, e.Message, "disk on fire")
	assert.Equal(t, http.StatusInternalServerError, e.Status())
}
