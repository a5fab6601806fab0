package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/fortes-labs/storefront/internal/repo"
	"github.com/fortes-labs/storefront/internal/service"
)

// Envelope is the uniform response wrapper returned by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondOK(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, Envelope{Success: true, Data: data, Message: message})
}

func respondError(c echo.Context, code int, errMsg string) error {
	return c.JSON(code, Envelope{Success: false, Error: errMsg})
}

// respondServiceError maps a service/repo failure onto the envelope and an
// HTTP status. Unexpected errors become a generic 500 so internals do not
// leak past the request boundary.
func respondServiceError(c echo.Context, l *slog.Logger, op string, err error) error {
	var stockErr *repo.StockError
	var goneErr *repo.ProductGoneError

	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(op, "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrEmptyCart):
		l.Warn(op, "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &stockErr):
		l.Warn(op, "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &goneErr):
		l.Warn(op, "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(op, "status", 404, "error", err)
		return respondError(c, http.StatusNotFound, err.Error())
	default:
		l.Error(op, "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
}

// ErrorHandler rewraps errors echo raises itself (unknown route, method not
// allowed) so nothing escapes the envelope.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}

		_ = c.JSON(code, Envelope{Success: false, Error: msg})
	}
}
