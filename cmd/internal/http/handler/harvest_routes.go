package handler

import (
	"context"
	"net/http"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CultureService interface {
	Register(ctx context.Context, req *contract.CreateCultureRequest) (*contract.CultureResponse, apierror.ErrorResponse)
}

type HarvestService interface {
	Register(ctx context.Context, req *contract.CreateHarvestRequest) (*contract.HarvestResponse, apierror.ErrorResponse)
	ListTop(ctx context.Context, query *contract.TopProductionQuery) ([]*contract.TopHarvestResponse, apierror.ErrorResponse)
}

type DefaultHarvestRoute struct {
	CultureService CultureService
	HarvestService HarvestService
}

func NewHarvestRoute(cultureService CultureService, harvestService HarvestService) *DefaultHarvestRoute {
	return &DefaultHarvestRoute{
		CultureService: cultureService,
		HarvestService: harvestService,
	}
}

func (h *DefaultHarvestRoute) CreateCulture(c echo.Context) error {
	var req contract.CreateCultureRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	culture, apierr := h.CultureService.Register(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, culture)
}

func (h *DefaultHarvestRoute) CreateHarvest(c echo.Context) error {
	var req contract.CreateHarvestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	harvest, apierr := h.HarvestService.Register(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, harvest)
}

func (h *DefaultHarvestRoute) GetTopHarvests(c echo.Context) error {
	query, apierr := bindTopQuery(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	top, apierr := h.HarvestService.ListTop(c.Request().Context(), query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, top)
}
