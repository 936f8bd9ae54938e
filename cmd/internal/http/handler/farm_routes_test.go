package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type fakeFarmService struct {
	registered *contract.CreateFarmRequest
	listed     *contract.FarmListQuery
	top        *contract.TopProductionQuery
}

func (f *fakeFarmService) Register(_ context.Context, req *contract.CreateFarmRequest) (*contract.FarmResponse, apierror.ErrorResponse) {
	f.registered = req
	return &contract.FarmResponse{ID: "farm-1", Name: req.Name}, nil
}

func (f *fakeFarmService) List(_ context.Context, query *contract.FarmListQuery) (*contract.PageResponse[*contract.FarmResponse], apierror.ErrorResponse) {
	f.listed = query
	return &contract.PageResponse[*contract.FarmResponse]{Data: []*contract.FarmResponse{}}, nil
}

func (f *fakeFarmService) ListTop(_ context.Context, query *contract.TopProductionQuery) ([]*contract.TopFarmResponse, apierror.ErrorResponse) {
	f.top = query
	return []*contract.TopFarmResponse{}, nil
}

type fakeCultureService struct {
	registered *contract.CreateCultureRequest
}

func (f *fakeCultureService) Register(_ context.Context, req *contract.CreateCultureRequest) (*contract.CultureResponse, apierror.ErrorResponse) {
	f.registered = req
	return &contract.CultureResponse{ID: "culture-1", Name: req.Name}, nil
}

type fakeHarvestService struct {
	harvest *contract.CreateHarvestRequest
	top     *contract.TopProductionQuery
}

func (f *fakeHarvestService) Register(_ context.Context, req *contract.CreateHarvestRequest) (*contract.HarvestResponse, apierror.ErrorResponse) {
	f.harvest = req
	return &contract.HarvestResponse{ID: "harvest-1"}, nil
}

func (f *fakeHarvestService) ListTop(_ context.Context, query *contract.TopProductionQuery) ([]*contract.TopHarvestResponse, apierror.ErrorResponse) {
	f.top = query
	return []*contract.TopHarvestResponse{}, nil
}

type fakeAddressService struct{}

func (fakeAddressService) Lookup(_ context.Context, cep string) (*contract.PostalAddressResponse, apierror.ErrorResponse) {
	if cep != "01001-000" {
		return nil, apierror.CEPNotFoundError
	}
	return &contract.PostalAddressResponse{ZipCode: "01001-000", City: "São Paulo", State: "SP"}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newFarmServer(farms *fakeFarmService, harvests *fakeHarvestService, db Pinger) *echo.Echo {
	return newServer(farms, &fakeCultureService{}, harvests, db)
}

func newServer(farms FarmService, cultures CultureService, harvests HarvestService, db Pinger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler

	farmRoutes := NewFarmRoute(farms)
	e.POST("/farm", farmRoutes.CreateFarm)
	e.GET("/farm", farmRoutes.GetFarms)
	e.GET("/farm/top", farmRoutes.GetTopFarms)

	harvestRoutes := NewHarvestRoute(cultures, harvests)
	e.POST("/culture", harvestRoutes.CreateCulture)
	e.POST("/harvest", harvestRoutes.CreateHarvest)
	e.GET("/harvest/top", harvestRoutes.GetTopHarvests)

	utilRoutes := NewUtilRoute(fakeAddressService{}, db)
	e.GET("/address/:cep", utilRoutes.GetAddress)
	e.GET("/health", utilRoutes.HealthCheck)
	return e
}

func TestCreateFarmDecodesDecimals(t *testing.T) {
	farms := &fakeFarmService{}
	e := newFarmServer(farms, &fakeHarvestService{}, fakePinger{})

	rec := doRequest(e, http.MethodPost, "/farm", `{"name":"Boa Vista","totalArea":100.5,"arableArea":"60.25","vegetationArea":0,"address":{"state":"SP"}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	req := farms.registered
	if req.TotalArea.String() != "100.5" || req.ArableArea.String() != "60.25" || !req.VegetationArea.IsZero() {
		t.Errorf("areas = %v %v %v", req.TotalArea, req.ArableArea, req.VegetationArea)
	}
	if req.Address == nil || req.Address.State != "SP" {
		t.Errorf("address = %+v", req.Address)
	}

	rec = doRequest(e, http.MethodPost, "/farm", `{"totalArea":"lots"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid decimal: status = %d", rec.Code)
	}
}

func TestGetFarmsQuery(t *testing.T) {
	farms := &fakeFarmService{}
	e := newFarmServer(farms, &fakeHarvestService{}, fakePinger{})

	rec := doRequest(e, http.MethodGet, "/farm?state=sp&cultureName=Soja&producerId="+producerID+"&orderBy=arableArea", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	q := farms.listed
	if q.State != "sp" || q.CultureName != "Soja" || q.ProducerID != producerID || q.OrderBy != "arableArea" {
		t.Errorf("query = %+v", q)
	}
}

func TestTopQueries(t *testing.T) {
	farms := &fakeFarmService{}
	harvests := &fakeHarvestService{}
	e := newFarmServer(farms, harvests, fakePinger{})

	rec := doRequest(e, http.MethodGet, "/farm/top?year=2024&state=MG&cultureName=Caf%C3%A9", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if farms.top.Year == nil || *farms.top.Year != 2024 || farms.top.State != "MG" || farms.top.CultureName != "Café" {
		t.Errorf("farm top query = %+v", farms.top)
	}

	rec = doRequest(e, http.MethodGet, "/harvest/top", "")
	if rec.Code != http.StatusOK || harvests.top.Year != nil {
		t.Errorf("harvest top: status = %d, query = %+v", rec.Code, harvests.top)
	}

	rec = doRequest(e, http.MethodGet, "/harvest/top?year=last", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid year: status = %d", rec.Code)
	}
}

func TestCreateCultureAndHarvest(t *testing.T) {
	cultures := &fakeCultureService{}
	harvests := &fakeHarvestService{}
	e := newServer(&fakeFarmService{}, cultures, harvests, fakePinger{})

	rec := doRequest(e, http.MethodPost, "/culture", `{"name":"Soja","farmId":"farm-1"}`)
	if rec.Code != http.StatusCreated || cultures.registered.Name != "Soja" || cultures.registered.FarmID != "farm-1" {
		t.Errorf("culture: status = %d, req = %+v", rec.Code, cultures.registered)
	}

	rec = doRequest(e, http.MethodPost, "/harvest", `{"year":2024,"season":"SUMMER","area":10,"expectedProduction":20,"actualProduction":null}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("harvest: status = %d", rec.Code)
	}
	if h := harvests.harvest; h.Year != 2024 || h.Area.String() != "10" || h.ActualProduction != nil {
		t.Errorf("harvest req = %+v", h)
	}
}

func TestGetAddress(t *testing.T) {
	e := newFarmServer(&fakeFarmService{}, &fakeHarvestService{}, fakePinger{})

	rec := doRequest(e, http.MethodGet, "/address/01001-000", "")
	if rec.Code != http.StatusOK || decodeBody(t, rec)["city"] != "São Paulo" {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(e, http.MethodGet, "/address/99999999", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown: status = %d", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	e := newFarmServer(&fakeFarmService{}, &fakeHarvestService{}, fakePinger{})
	if rec := doRequest(e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("healthy: status = %d", rec.Code)
	}

	e = newFarmServer(&fakeFarmService{}, &fakeHarvestService{}, fakePinger{err: errors.New("connection refused")})
	if rec := doRequest(e, http.MethodGet, "/health", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy: status = %d", rec.Code)
	}
}
