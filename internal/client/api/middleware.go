package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gymbro/internal/common"
	"github.com/dmitrijs2005/gymbro/internal/logging"
)

// Doer sends one request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to Doer.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware wraps a Doer with extra behaviour.
type Middleware func(next Doer) Doer

// Chain wraps base so that mws[0] is the outermost layer.
func Chain(base Doer, mws ...Middleware) Doer {
	d := base
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	return d
}

// TokenSource yields the token to attach to the next request.
type TokenSource interface {
	Token() string
}

// Invalidator drops the session if it still holds token.
type Invalidator interface {
	Invalidate(ctx context.Context, token string) (bool, error)
}

// BearerAuth reads the token at send time and sets the Authorization header
// on a copy of the request. No header is sent without a token.
func BearerAuth(src TokenSource) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {

			r := req.Clone(req.Context())
			r.Header.Del(common.AuthorizationHeader)

			if token := src.Token(); token != "" {
				r.Header.Set(common.AuthorizationHeader, common.BearerScheme+token)
			}

			return next.Do(r)
		})
	}
}

// ResetOnUnauthorized clears the session when a request carrying its token
// comes back 401. The clear completes before the response is handed back.
// Must sit inside BearerAuth so the header it inspects is the one sent.
func ResetOnUnauthorized(inv Invalidator, log logging.Logger) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {

			resp, err := next.Do(req)
			if err != nil || resp.StatusCode != http.StatusUnauthorized {
				return resp, err
			}

			sent := strings.TrimPrefix(req.Header.Get(common.AuthorizationHeader), common.BearerScheme)
			cleared, ierr := inv.Invalidate(req.Context(), sent)
			if ierr != nil {
				log.Error(req.Context(), "failed to clear rejected session", "error", ierr)
			}
			if cleared {
				log.Info(req.Context(), "session rejected by server, cleared", "path", req.URL.Path)
			}

			return resp, nil
		})
	}
}

// RequestID tags each request with a fresh X-Request-ID unless one is set.
func RequestID() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(common.RequestIDHeader) != "" {
				return next.Do(req)
			}
			r := req.Clone(req.Context())
			r.Header.Set(common.RequestIDHeader, uuid.NewString())
			return next.Do(r)
		})
	}
}

// Logging records method, path, status and latency of every call.
func Logging(log logging.Logger) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.Do(req)
			elapsed := time.Since(start)

			ctx := req.Context()
			switch {
			case err != nil:
				log.Warn(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "duration", elapsed, "error", err)
			case resp.StatusCode >= http.StatusBadRequest:
				log.Warn(ctx, "request rejected", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "duration", elapsed)
			default:
				log.Debug(ctx, "request done", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "duration", elapsed)
			}

			return resp, err
		})
	}
}
