package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lottoInsight/business/lotto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"propagates caller id", "req-123"},
		{"generates id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			h := TraceMiddleware()(func(c echo.Context) error {
				seen = lotto.TraceIDFromContext(c.Request().Context())
				return c.NoContent(http.StatusNoContent)
			})
			require.NoError(t, h(c))

			require.NotEmpty(t, seen)
			if tt.header != "" {
				assert.Equal(t, tt.header, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"http error", echo.NewHTTPError(http.StatusNotFound, "route not found"), http.StatusNotFound, `{"message":"route not found"}`},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
