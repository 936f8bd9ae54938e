package handler

import (
	"strconv"
	"strings"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var queryBinder = &echo.DefaultBinder{}

// pathID reads the "id" path parameter, which must be a UUID.
func pathID(c echo.Context) (string, apierror.ErrorResponse) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", apierror.NewMissingParamError("id")
	}

	if err := uuid.Validate(id); err != nil {
		return "", apierror.InvalidIDError
	}
	return id, nil
}

func bindQuery(c echo.Context, dst any) apierror.ErrorResponse {
	if err := queryBinder.BindQueryParams(c, dst); err != nil {
		return apierror.MalformedQueryError
	}
	return nil
}

// bindTopQuery reads the filters shared by the "top" listings.
func bindTopQuery(c echo.Context) (*contract.TopProductionQuery, apierror.ErrorResponse) {
	var query contract.TopProductionQuery
	if apierr := bindQuery(c, &query); apierr != nil {
		return nil, apierr
	}

	if raw := strings.TrimSpace(c.QueryParam("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apierror.NewInvalidParamTypeError("year", "int")
		}
		query.Year = &year
	}
	return &query, nil
}
