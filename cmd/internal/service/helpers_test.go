package service

import (
	"context"
	"testing"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/database/databasetest"
	"agrodog/cmd/internal/domain/database/repository"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/infrastructure/viacep"
	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"
	"agrodog/cmd/internal/utils/validators"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ctx = context.Background()

// stubPostalCodes resolves only the postal codes it knows.
type stubPostalCodes struct {
	known map[string]*entity.PostalAddress
	err   error
	calls int
}

func (s *stubPostalCodes) FindByCEP(_ context.Context, cep string) (*entity.PostalAddress, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	clean := utils.CleanCEP(cep)
	if clean == "" {
		return nil, viacep.ErrInvalidPostalCode
	}
	if a, ok := s.known[clean]; ok {
		return a, nil
	}
	return nil, viacep.ErrNotFound
}

type testEnv struct {
	db          *gorm.DB
	postalCodes *stubPostalCodes
	producers   *DefaultProducerService
	farms       *DefaultFarmService
	cultures    *DefaultCultureService
	harvests    *DefaultHarvestService
	addresses   *DefaultAddressService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := databasetest.New(t)
	validate := validators.New()
	transactor := database.NewTransactor(db)

	producerRepo := repository.NewProducerRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	cultureRepo := repository.NewCultureRepository(db)
	harvestRepo := repository.NewHarvestRepository(db)

	postalCodes := &stubPostalCodes{known: map[string]*entity.PostalAddress{
		"14000000": {ZipCode: "14000000", City: "Ribeirão Preto", State: "SP"},
	}}
	addresses := NewAddressService(postalCodes, nil)

	return &testEnv{
		db:          db,
		postalCodes: postalCodes,
		producers:   NewProducerService(producerRepo, validate),
		farms:       NewFarmService(farmRepo, addressRepo, producerRepo, addresses, transactor, validate),
		cultures:    NewCultureService(cultureRepo, farmRepo, validate),
		harvests:    NewHarvestService(harvestRepo, farmRepo, cultureRepo, transactor, validate),
		addresses:   addresses,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func wantStatus(t *testing.T, apierr apierror.ErrorResponse, status int) {
	t.Helper()
	if apierr == nil {
		t.Fatalf("expected status %d, got no error", status)
	}
	if apierr.Code() != status {
		t.Fatalf("status = %d, want %d (%+v)", apierr.Code(), status, apierr)
	}
}

func wantOK(t *testing.T, apierr apierror.ErrorResponse) {
	t.Helper()
	if apierr != nil {
		t.Fatalf("unexpected error %d: %+v", apierr.Code(), apierr)
	}
}

func (e *testEnv) mustProducer(t *testing.T, name, cpf, email string) *contract.ProducerResponse {
	t.Helper()
	p, apierr := e.producers.Register(ctx, &contract.CreateProducerRequest{
		Name: name, CPF: cpf, Email: email, Phone: "11987654321",
	})
	wantOK(t, apierr)
	return p
}

func farmRequest(producerID, name, state, total, arable, vegetation string) *contract.CreateFarmRequest {
	return &contract.CreateFarmRequest{
		ProducerID:     producerID,
		Name:           name,
		TotalArea:      decPtr(total),
		ArableArea:     decPtr(arable),
		VegetationArea: decPtr(vegetation),
		Address: &contract.AddressRequest{
			Street:       "Estrada Municipal",
			Number:       "100",
			Neighborhood: "Zona Rural",
			City:         "Ribeirão Preto",
			State:        state,
			ZipCode:      "14000-000",
		},
	}
}

func (e *testEnv) mustFarm(t *testing.T, producerID, name, state, arable string) *contract.FarmResponse {
	t.Helper()
	f, apierr := e.farms.Register(ctx, farmRequest(producerID, name, state, "1000", arable, "0"))
	wantOK(t, apierr)
	return f
}

func (e *testEnv) mustCulture(t *testing.T, farmID, name string) *contract.CultureResponse {
	t.Helper()
	c, apierr := e.cultures.Register(ctx, &contract.CreateCultureRequest{Name: name, FarmID: farmID})
	wantOK(t, apierr)
	return c
}

func harvestRequest(farmID, cultureID string, year int, area string, actual *decimal.Decimal) *contract.CreateHarvestRequest {
	return &contract.CreateHarvestRequest{
		Year:               year,
		Season:             "SUMMER",
		Area:               decPtr(area),
		ExpectedProduction: decPtr("100"),
		ActualProduction:   actual,
		FarmID:             farmID,
		CultureID:          cultureID,
	}
}

func (e *testEnv) mustHarvest(t *testing.T, farmID, cultureID string, year int, area string, actual *decimal.Decimal) *contract.HarvestResponse {
	t.Helper()
	h, apierr := e.harvests.Register(ctx, harvestRequest(farmID, cultureID, year, area, actual))
	wantOK(t, apierr)
	return h
}
