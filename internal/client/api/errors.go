package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Kind classifies a failed call. Every failure maps to exactly one Kind.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindTimeout
	KindUnauthorized
	KindValidation
	KindServer
	KindMalformedResponse
)

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrNetwork           = errors.New("network error")
	ErrTimeout           = errors.New("request timed out")
	ErrUnauthorized      = errors.New("session expired, please log in again")
	ErrValidation        = errors.New("request rejected")
	ErrServer            = errors.New("server error")
	ErrMalformedResponse = errors.New("malformed response")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindTimeout:
		return ErrTimeout
	case KindUnauthorized:
		return ErrUnauthorized
	case KindValidation:
		return ErrValidation
	case KindServer:
		return ErrServer
	default:
		return ErrMalformedResponse
	}
}

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Error is the failure returned by every Client operation.
//
// Message is safe to show to the user: the backend's own message when the
// response body carried one, else the generic text of the Kind.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return e.Message
}

// Is matches the sentinel belonging to e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// Message returns the user-facing text for err.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func newError(kind Kind, status int, message string, cause error) *Error {
	if message == "" {
		message = kind.sentinel().Error()
	}
	return &Error{Kind: kind, Status: status, Message: message, Err: cause}
}

// transportError classifies an error returned before or while reading a
// response.
func transportError(err error) *Error {
	if errors.Is(err, context.Canceled) {
		return newError(KindNetwork, 0, "request cancelled", err)
	}
	if isTimeout(err) {
		return newError(KindTimeout, 0, "", err)
	}
	return newError(KindNetwork, 0, "", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// statusError maps a non-2xx response to its Kind.
func statusError(status int, body []byte) *Error {
	var kind Kind
	switch {
	case status == http.StatusUnauthorized:
		kind = KindUnauthorized
	case status >= 400 && status < 500:
		kind = KindValidation
	case status >= 500:
		kind = KindServer
	default:
		kind = KindMalformedResponse
	}
	return newError(kind, status, bodyMessage(body), nil)
}

const maxPlainMessage = 200

// bodyMessage extracts {"message"} or {"error"} from a JSON body, or a short
// plain-text body. Anything else yields "".
func bodyMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}

	if strings.HasPrefix(trimmed, "<") || len(trimmed) > maxPlainMessage || !utf8.ValidString(trimmed) {
		return ""
	}
	return trimmed
}
