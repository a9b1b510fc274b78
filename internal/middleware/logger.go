package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id, exposes a child logger through
// the request context and logs the request once it is served.
func RequestLogger(l zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, id)

			reqLogger := l.With().Str("request_id", id).Logger()
			c.SetRequest(req.WithContext(reqLogger.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			event := reqLogger.Info()
			if status >= 500 {
				event = reqLogger.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("request")

			return nil
		}
	}
}
