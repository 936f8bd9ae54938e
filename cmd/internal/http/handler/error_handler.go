package handler

import (
	"errors"
	"net/http"

	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ErrorHandler renders errors that escape the routes (unknown routes, middleware
// rejections, panics) with the same body shape as the API errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	apierr := apierror.InternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			apierr = apierror.NotFoundError
		case http.StatusInternalServerError:
		default:
			apierr = apierror.NewSimple(he.Code, http.StatusText(he.Code))
		}
	}

	if apierr.Code() == http.StatusInternalServerError {
		log.Errorf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(apierr.Code())
	} else {
		err = c.JSON(apierr.Code(), apierr)
	}
	if err != nil {
		log.Errorf("failed to write error response: %v", err)
	}
}
