// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/novel2image/proxy/internal/apperror"
)

// Envelope is the standard API error envelope.
type Envelope struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Detail  interface{} `json:"detail,omitempty"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with payload as the whole body.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Raw writes body verbatim. An empty contentType defaults to JSON.
func Raw(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error writes an error response with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Error: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Fail maps err to an HTTP response. Upstream answers that carry a raw body
// are forwarded with their original status and body.
func Fail(w http.ResponseWriter, err error) {
	e := apperror.From(err)
	if e.Body != nil {
		Raw(w, e.Status(), "", e.Body)
		return
	}
	if e.Kind == apperror.KindUnknown {
		log.Printf("request failed: %v", err)
	}
	JSON(w, e.Status(), Envelope{Success: false, Error: e.Message, Detail: e.Detail})
}
