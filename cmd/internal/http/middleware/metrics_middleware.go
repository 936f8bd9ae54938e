package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type RequestRecorder interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// NewMetricsMiddleware records every request by its route template so paths
// with ids do not explode the label cardinality.
func NewMetricsMiddleware(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			recorder.ObserveRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
