// Package apperror defines the closed set of failure kinds a proxy handler can
// produce and the HTTP status each kind maps to.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is any failure not covered by another kind.
	KindUnknown Kind = iota
	// KindConfiguration means a required credential or setting is absent.
	KindConfiguration
	// KindValidation means a required request field is missing or malformed.
	KindValidation
	// KindUpstreamClient is a request rejected by, or never sent to, an external provider.
	KindUpstreamClient
	// KindUpstreamServer is a fault reported by an external provider.
	KindUpstreamServer
)

var kindStatus = map[Kind]int{
	KindUnknown:        http.StatusInternalServerError,
	KindConfiguration:  http.StatusInternalServerError,
	KindValidation:     http.StatusBadRequest,
	KindUpstreamClient: http.StatusBadRequest,
	KindUpstreamServer: http.StatusBadGateway,
}

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindConfiguration:  "configuration",
	KindValidation:     "validation",
	KindUpstreamClient: "upstream_client",
	KindUpstreamServer: "upstream_server",
}

// Status returns the default HTTP status for the kind.
func (k Kind) Status() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified failure ready to be written as an HTTP response.
type Error struct {
	Kind Kind
	// StatusCode overrides Kind.Status() when non-zero.
	StatusCode int
	Message    string
	// Detail carries structured provider information (e.g. request id).
	Detail any
	// Body is a raw upstream response body to forward verbatim.
	Body  []byte
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Status returns the HTTP status this error should be written with.
func (e *Error) Status() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	return e.Kind.Status()
}

// Config reports a missing credential or setting. status lets callers keep
// endpoint-specific codes (the path upload endpoint answers 400).
func Config(status int, message string) *Error {
	return &Error{Kind: KindConfiguration, StatusCode: status, Message: message}
}

// Validation reports a missing or malformed request field.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// UpstreamClient reports a request error raised before or by the provider client.
func UpstreamClient(message string, cause error) *Error {
	return &Error{Kind: KindUpstreamClient, Message: message, Cause: cause}
}

// UpstreamServer reports a provider-side fault with structured detail.
func UpstreamServer(message string, detail any, cause error) *Error {
	return &Error{Kind: KindUpstreamServer, Message: message, Detail: detail, Cause: cause}
}

// Unknown wraps any other failure. The message keeps the original text.
func Unknown(cause error) *Error {
	msg := "internal server error"
	if cause != nil {
		msg = "internal server error: " + cause.Error()
	}
	return &Error{Kind: KindUnknown, Message: msg, Cause: cause}
}

// Upstream reports a non-success HTTP answer from an AI provider. The status
// and body are kept verbatim so they can be forwarded unchanged.
func Upstream(status int, body []byte) *Error {
	kind := KindUpstreamClient
	if status >= http.StatusInternalServerError {
		kind = KindUpstreamServer
	}
	return &Error{
		Kind:       kind,
		StatusCode: status,
		Message:    fmt.Sprintf("upstream returned status %d", status),
		Body:       body,
	}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// From returns err as an *Error, classifying unknown errors as KindUnknown.
func From(err error) *Error {
	if e, ok := As(err); ok {
		return e
	}
	return Unknown(err)
}
