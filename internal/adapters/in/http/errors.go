package http

import (
	"errors"
	"log/slog"
	"net/http"

	"deliveryapi/internal/core/domain/model/account"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/core/domain/services"
	"deliveryapi/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var badRequestErrors = []error{
	order.ErrInvalidTransition,
	order.ErrTerminalState,
	order.ErrEmptyOrder,
	order.ErrAlreadyCanceled,
	order.ErrUnknownStatus,
	services.ErrInvalidQuantity,
	services.ErrInvalidPrice,
	services.ErrInvalidDeliveryFee,
	services.ErrProductUnavailable,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
}

// statusOf maps an error returned by a handler to an HTTP status. Domain
// messages are safe to show; anything unrecognized becomes a bare 500.
func statusOf(err error) (int, string) {
	var (
		httpErr    *echo.HTTPError
		requestErr *openapi3filter.RequestError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, account.ErrInvalidCredentials), errors.Is(err, account.ErrUserIsInactive):
		return http.StatusUnauthorized, account.ErrInvalidCredentials.Error()
	case errors.Is(err, account.ErrEmailAlreadyTaken):
		return http.StatusConflict, err.Error()
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, requestErr.Error()
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, err.Error()
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// errorHandler is installed as echo's HTTPErrorHandler.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := statusOf(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, errorResponse{Code: code, Message: msg})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", slog.Any("error", writeErr))
		}
	}
}

// badRequest wraps a binding failure so it maps to 400.
func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
