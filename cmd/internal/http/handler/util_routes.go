package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AddressService interface {
	Lookup(ctx context.Context, cep string) (*contract.PostalAddressResponse, apierror.ErrorResponse)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type DefaultUtilRoute struct {
	AddressService AddressService
	DB             Pinger
}

func NewUtilRoute(addressService AddressService, db Pinger) *DefaultUtilRoute {
	return &DefaultUtilRoute{AddressService: addressService, DB: db}
}

func (u *DefaultUtilRoute) GetAddress(c echo.Context) error {
	cep := strings.TrimSpace(c.Param("cep"))
	if cep == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("cep"))
	}

	address, apierr := u.AddressService.Lookup(c.Request().Context(), cep)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, address)
}

// HealthCheck is used by the container healthcheck, it fails when the database is unreachable.
func (u *DefaultUtilRoute) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := u.DB.PingContext(ctx); err != nil {
		log.Errorf("health check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
