package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/pkg/logger"
)

// RequestLogger attaches a child of log tagged with the request id to the
// request context and writes one access line per request. It must run after
// echo's RequestID middleware.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			res := c.Response()

			reqLog := log.With().
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), reqLog)))

			err := next(c)
			if err != nil {
				// Commit the error response so the logged status is final.
				c.Error(err)
			}

			ev := reqLog.Info()
			if res.Status >= 500 {
				ev = reqLog.Error()
			}
			ev.Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")
			return nil
		}
	}
}
