package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/common"
)

// httpError is a handler failure with a fixed status and client message.
type httpError struct {
	Code    int
	Message string
}

func (e *httpError) Error() string { return e.Message }

func newHTTPError(code int, message string) *httpError {
	return &httpError{Code: code, Message: message}
}

// statusFor maps err to a status and a message safe to show clients.
// ok is false for errors nothing recognises.
func statusFor(err error) (code int, message string, ok bool) {
	var he *httpError
	var ve *common.ValidationError
	var ee *echo.HTTPError

	switch {
	case errors.As(err, &he):
		return he.Code, he.Message, true
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message, true
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired", true
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token", true
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "Not found", true
	case errors.As(err, &ee):
		if msg, isString := ee.Message.(string); isString {
			return ee.Code, msg, true
		}
		return ee.Code, http.StatusText(ee.Code), true
	}
	return http.StatusInternalServerError, "Internal server error", false
}

// errorHandler renders every failed request as {"message": "..."}.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message, known := statusFor(err)
	if !known {
		s.logger.Error(c.Request().Context(), "unhandled error",
			"error", err,
			"path", c.Request().URL.Path,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, models.MessageResponse{Message: message})
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "write error response", "error", err)
	}
}
