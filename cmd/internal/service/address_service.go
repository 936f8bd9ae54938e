package service

import (
	"context"
	"errors"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/infrastructure/viacep"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type PostalCodeClient interface {
	FindByCEP(ctx context.Context, cep string) (*entity.PostalAddress, error)
}

type DefaultAddressService struct {
	PostalCodes PostalCodeClient
	Metrics     LookupRecorder
}

func NewAddressService(postalCodes PostalCodeClient, metrics LookupRecorder) *DefaultAddressService {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &DefaultAddressService{PostalCodes: postalCodes, Metrics: metrics}
}

func (s *DefaultAddressService) Lookup(ctx context.Context, cep string) (*contract.PostalAddressResponse, apierror.ErrorResponse) {
	address, apierr := s.resolve(ctx, cep)
	if apierr != nil {
		return nil, apierr
	}

	return &contract.PostalAddressResponse{
		ZipCode:      address.ZipCode,
		Street:       address.Street,
		Complement:   address.Complement,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		State:        address.State,
		IBGECode:     address.IBGECode,
		AreaCode:     address.AreaCode,
	}, nil
}

// resolve looks the postal code up and maps client failures to API errors.
func (s *DefaultAddressService) resolve(ctx context.Context, cep string) (*entity.PostalAddress, apierror.ErrorResponse) {
	address, err := s.PostalCodes.FindByCEP(ctx, cep)
	switch {
	case err == nil:
		s.Metrics.IncrementPostalCodeLookup("found")
		return address, nil
	case errors.Is(err, viacep.ErrInvalidPostalCode):
		s.Metrics.IncrementPostalCodeLookup("invalid")
		return nil, apierror.InvalidCEPError
	case errors.Is(err, viacep.ErrNotFound):
		s.Metrics.IncrementPostalCodeLookup("not_found")
		return nil, apierror.CEPNotFoundError
	default:
		s.Metrics.IncrementPostalCodeLookup("error")
		log.Errorf("failed to look up postal code %s: %v", cep, err)
		return nil, apierror.InternalServerError
	}
}
