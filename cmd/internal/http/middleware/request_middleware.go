package middleware

import (
	"net/http"
	"strings"
	"time"

	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
)

// NewRequestIDMiddleware tags every request with an id, reusing the one sent by
// the client when present, and makes it available to lower layers through the context.
func NewRequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: utils.RequestIDHeader,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(utils.ContextWithRequestID(req.Context(), id)))
		},
	})
}

func NewRequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Errorf("[%s] %s %s %d %s: %v", v.RequestID, v.Method, v.URI, v.Status, v.Latency, v.Error)
				return nil
			}
			log.Infof("[%s] %s %s %d %s", v.RequestID, v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}

// NewRateLimiter limits each client IP to limit requests per second.
// A non-positive limit disables it.
func NewRateLimiter(limit float64) echo.MiddlewareFunc {
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     max(1, int(limit)),
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, apierror.NewSimple(http.StatusForbidden, "Unable to identify the client"))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, apierror.TooManyRequestsErr)
		},
	})
}

// InfraSkipper skips infrastructure routes (health and metrics) in middlewares
// meant only for the API.
func InfraSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" || strings.HasPrefix(path, "/metrics")
}
