package handler

import (
	"context"
	"net/http"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProducerService interface {
	Register(ctx context.Context, req *contract.CreateProducerRequest) (*contract.ProducerResponse, apierror.ErrorResponse)
	List(ctx context.Context, query *contract.ProducerListQuery) (*contract.PageResponse[*contract.ProducerResponse], apierror.ErrorResponse)
	Get(ctx context.Context, id string) (*contract.ProducerDetailResponse, apierror.ErrorResponse)
	Update(ctx context.Context, id string, req *contract.UpdateProducerRequest) (*contract.AffectedResponse, apierror.ErrorResponse)
	Delete(ctx context.Context, id string) (*contract.AffectedResponse, apierror.ErrorResponse)
	ListTop(ctx context.Context) ([]*contract.TopProducerResponse, apierror.ErrorResponse)
}

type DefaultProducerRoute struct {
	ProducerService ProducerService
}

func NewProducerRoute(producerService ProducerService) *DefaultProducerRoute {
	return &DefaultProducerRoute{ProducerService: producerService}
}

func (p *DefaultProducerRoute) CreateProducer(c echo.Context) error {
	var req contract.CreateProducerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	producer, apierr := p.ProducerService.Register(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, producer)
}

func (p *DefaultProducerRoute) GetProducers(c echo.Context) error {
	var query contract.ProducerListQuery
	if apierr := bindQuery(c, &query); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	page, apierr := p.ProducerService.List(c.Request().Context(), &query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, page)
}

func (p *DefaultProducerRoute) GetTopProducers(c echo.Context) error {
	top, apierr := p.ProducerService.ListTop(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, top)
}

func (p *DefaultProducerRoute) GetProducer(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	producer, apierr := p.ProducerService.Get(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, producer)
}

func (p *DefaultProducerRoute) UpdateProducer(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateProducerRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := p.ProducerService.Update(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProducerRoute) DeleteProducer(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := p.ProducerService.Delete(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
