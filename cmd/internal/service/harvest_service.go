package service

import (
	"context"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/database/repository"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/domain/policy"
	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

type HarvestRepository interface {
	Create(ctx context.Context, harvest *entity.Harvest) error
	SumAreaByFarm(ctx context.Context, farmID string) (decimal.Decimal, error)
	TopByProduction(ctx context.Context, filter repository.ProductionFilter, limit int) ([]*entity.Harvest, error)
}

type FarmLocker interface {
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Farm, error)
}

type CultureFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Culture, error)
}

type DefaultHarvestService struct {
	HarvestRepo HarvestRepository
	FarmRepo    FarmLocker
	CultureRepo CultureFinder
	Transactor  Transactor
	Policy      *policy.FarmPolicy
	Validate    *validator.Validate
}

func NewHarvestService(
	harvestRepo HarvestRepository,
	farmRepo FarmLocker,
	cultureRepo CultureFinder,
	transactor Transactor,
	validate *validator.Validate,
) *DefaultHarvestService {
	return &DefaultHarvestService{
		HarvestRepo: harvestRepo,
		FarmRepo:    farmRepo,
		CultureRepo: cultureRepo,
		Transactor:  transactor,
		Policy:      policy.NewFarmPolicy(),
		Validate:    validate,
	}
}

// Register plants a harvest on a farm. The farm row is locked while the planted
// area is summed so concurrent registrations cannot overflow the arable area.
func (s *DefaultHarvestService) Register(ctx context.Context, req *contract.CreateHarvestRequest) (*contract.HarvestResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateStruct(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	harvest := &entity.Harvest{
		FarmID:             req.FarmID,
		CultureID:          req.CultureID,
		Year:               req.Year,
		Season:             entity.Season(req.Season),
		Area:               *req.Area,
		ExpectedProduction: *req.ExpectedProduction,
	}
	if req.ActualProduction != nil {
		harvest.ActualProduction = decimal.NewNullDecimal(*req.ActualProduction)
	}

	var rejection apierror.ErrorResponse
	err := s.Transactor.Execute(ctx, func(txCtx context.Context) error {
		rejection = s.checkPlanting(txCtx, harvest)
		if rejection != nil {
			return errRejected
		}
		return s.HarvestRepo.Create(txCtx, harvest)
	})

	if rejection != nil {
		return nil, rejection
	}

	if err != nil {
		log.Errorf("failed to create harvest: %v", err)
		return nil, apierror.InternalServerError
	}
	return toHarvestResponse(harvest), nil
}

func (s *DefaultHarvestService) checkPlanting(ctx context.Context, harvest *entity.Harvest) apierror.ErrorResponse {
	farm, err := s.FarmRepo.FindByIDForUpdate(ctx, harvest.FarmID)
	if err != nil {
		log.Errorf("failed to fetch farm %s: %v", harvest.FarmID, err)
		return apierror.InternalServerError
	}

	if farm == nil {
		return apierror.HarvestFarmNotFoundError
	}

	culture, err := s.CultureRepo.FindByID(ctx, harvest.CultureID)
	if err != nil {
		log.Errorf("failed to fetch culture %s: %v", harvest.CultureID, err)
		return apierror.InternalServerError
	}

	if culture == nil {
		return apierror.HarvestCultureNotFoundErr
	}

	used, err := s.HarvestRepo.SumAreaByFarm(ctx, farm.ID)
	if err != nil {
		log.Errorf("failed to sum planted area of farm %s: %v", farm.ID, err)
		return apierror.InternalServerError
	}
	return s.Policy.CheckHarvestBudget(farm.ArableArea, used, harvest.Area)
}

// ListTop returns the three harvests with the highest actual production matching the query.
func (s *DefaultHarvestService) ListTop(ctx context.Context, query *contract.TopProductionQuery) ([]*contract.TopHarvestResponse, apierror.ErrorResponse) {
	utils.Sanitize(query)
	if apierr := validateStruct(s.Validate, query); apierr != nil {
		return nil, apierr
	}

	harvests, err := s.HarvestRepo.TopByProduction(ctx, toProductionFilter(query), topLimit)
	if err != nil {
		log.Errorf("failed to rank harvests: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TopHarvestResponse, len(harvests))
	for i, h := range harvests {
		item := &contract.TopHarvestResponse{
			ID:              h.CultureID,
			Name:            h.CultureName(),
			HarvestID:       h.ID,
			Year:            h.Year,
			TotalProduction: h.Production(),
			TotalArea:       h.Area,
		}
		if h.Farm != nil {
			item.FarmName = h.Farm.Name
			if h.Farm.Producer != nil {
				item.ProducerName = h.Farm.Producer.Name
			}
		}
		resp[i] = item
	}
	return resp, nil
}

func toHarvestResponse(h *entity.Harvest) *contract.HarvestResponse {
	resp := &contract.HarvestResponse{
		ID:                 h.ID,
		Year:               h.Year,
		Season:             string(h.Season),
		Area:               h.Area,
		ExpectedProduction: h.ExpectedProduction,
		FarmID:             h.FarmID,
		CultureID:          h.CultureID,
		CreatedAt:          utils.FormatTime(h.CreatedAt),
	}
	if h.ActualProduction.Valid {
		actual := h.ActualProduction.Decimal
		resp.ActualProduction = &actual
	}
	return resp
}
