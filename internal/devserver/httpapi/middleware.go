package httpapi

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/gymbro/internal/common"
)

const userIDKey = "userID"

// recovery turns a handler panic into a 500 and logs the stack.
func (s *Server) recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error(c.Request().Context(), "panic recovered",
						"panic", fmt.Sprint(r),
						"stack", string(debug.Stack()),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
					)
					returnErr = newHTTPError(http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}

// requestLogger logs method, path, status, latency and remote IP once the
// request completes. 4xx log at warn, 5xx at error.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// render now so the logged status is the one sent
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"latency", time.Since(start),
				"remote_ip", c.RealIP(),
			}
			if id := req.Header.Get(common.RequestIDHeader); id != "" {
				args = append(args, "request_id", id)
			}

			switch {
			case status >= 500:
				s.logger.Error(req.Context(), "request", args...)
			case status >= 400:
				s.logger.Warn(req.Context(), "request", args...)
			default:
				s.logger.Info(req.Context(), "request", args...)
			}

			return nil
		}
	}
}

// requireAuth resolves the bearer token to a user ID stored on the context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Request().Header.Get(common.AuthorizationHeader)
		token, found := strings.CutPrefix(h, common.BearerScheme)
		if !found || strings.TrimSpace(token) == "" {
			return newHTTPError(http.StatusUnauthorized, "Authorization token required")
		}

		id, err := s.users.Authenticate(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}

		c.Set(userIDKey, id)
		return next(c)
	}
}

func currentUserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
