package middleware

import (
	"lottoInsight/business/lotto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware propagates X-Request-ID (or a fresh uuid) into the request context
// so service logs can be correlated with the response.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			tid := req.Header.Get(echo.HeaderXRequestID)
			if tid == "" {
				tid = uuid.NewString()
			}

			c.SetRequest(req.WithContext(lotto.WithTraceID(req.Context(), tid)))
			c.Response().Header().Set(echo.HeaderXRequestID, tid)

			return next(c)
		}
	}
}
