package middleware

import (
	"errors"
	"net/http"

	"lottoInsight/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Message string `json:"message"`
}

// ErrorHandler renders unhandled errors with the same body shape as the handlers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorBody{Message: msg})
	}
	if err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}
