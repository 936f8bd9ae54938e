package handler

import (
	"context"
	"net/http"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type FarmService interface {
	Register(ctx context.Context, req *contract.CreateFarmRequest) (*contract.FarmResponse, apierror.ErrorResponse)
	List(ctx context.Context, query *contract.FarmListQuery) (*contract.PageResponse[*contract.FarmResponse], apierror.ErrorResponse)
	ListTop(ctx context.Context, query *contract.TopProductionQuery) ([]*contract.TopFarmResponse, apierror.ErrorResponse)
}

type DefaultFarmRoute struct {
	FarmService FarmService
}

func NewFarmRoute(farmService FarmService) *DefaultFarmRoute {
	return &DefaultFarmRoute{FarmService: farmService}
}

func (f *DefaultFarmRoute) CreateFarm(c echo.Context) error {
	var req contract.CreateFarmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	farm, apierr := f.FarmService.Register(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, farm)
}

func (f *DefaultFarmRoute) GetFarms(c echo.Context) error {
	var query contract.FarmListQuery
	if apierr := bindQuery(c, &query); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	page, apierr := f.FarmService.List(c.Request().Context(), &query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, page)
}

func (f *DefaultFarmRoute) GetTopFarms(c echo.Context) error {
	query, apierr := bindTopQuery(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	top, apierr := f.FarmService.ListTop(c.Request().Context(), query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, top)
}
