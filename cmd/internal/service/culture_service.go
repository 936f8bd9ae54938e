package service

import (
	"context"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CultureRepository interface {
	Create(ctx context.Context, culture *entity.Culture) error
	FindByID(ctx context.Context, id string) (*entity.Culture, error)
	ExistsByName(ctx context.Context, farmID, name string) (bool, error)
}

type FarmFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Farm, error)
}

type DefaultCultureService struct {
	CultureRepo CultureRepository
	FarmRepo    FarmFinder
	Validate    *validator.Validate
}

func NewCultureService(cultureRepo CultureRepository, farmRepo FarmFinder, validate *validator.Validate) *DefaultCultureService {
	return &DefaultCultureService{
		CultureRepo: cultureRepo,
		FarmRepo:    farmRepo,
		Validate:    validate,
	}
}

func (s *DefaultCultureService) Register(ctx context.Context, req *contract.CreateCultureRequest) (*contract.CultureResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateStruct(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	farm, err := s.FarmRepo.FindByID(ctx, req.FarmID)
	if err != nil {
		log.Errorf("failed to fetch farm %s: %v", req.FarmID, err)
		return nil, apierror.InternalServerError
	}

	if farm == nil {
		return nil, apierror.FarmNotFoundError
	}

	exists, err := s.CultureRepo.ExistsByName(ctx, farm.ID, req.Name)
	if err != nil {
		log.Errorf("failed to check culture name: %v", err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.CultureExistsError
	}

	culture := &entity.Culture{
		FarmID:      farm.ID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err = s.CultureRepo.Create(ctx, culture); err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return nil, apierror.CultureExistsError
		case database.IsForeignKeyViolation(err):
			return nil, apierror.FarmNotFoundError
		}
		log.Errorf("failed to create culture: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.CultureResponse{
		ID:          culture.ID,
		Name:        culture.Name,
		Description: culture.Description,
		FarmID:      culture.FarmID,
		CreatedAt:   utils.FormatTime(culture.CreatedAt),
	}, nil
}
