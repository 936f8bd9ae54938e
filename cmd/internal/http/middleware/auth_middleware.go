package middleware

import (
	"net/http"

	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type AuthMiddlewareConfig struct {
	// Secret is the HS256 key tokens are signed with.
	Secret  []byte
	Skipper middleware.Skipper
}

// NewAuthMiddleware rejects requests without a valid bearer token.
// It only checks the signature and expiration, there are no users or roles.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	skipper := cfg.Skipper
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			tokenData, err := utils.ParseTokenDataCtx(c, cfg.Secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}
