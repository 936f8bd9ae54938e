package service

import (
	"context"
	"strings"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/database/repository"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/domain/policy"
	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

var farmColumns = map[string]string{
	"name":       "name",
	"totalArea":  "total_area",
	"arableArea": "arable_area",
	"createdAt":  "created_at",
}

type FarmRepository interface {
	Create(ctx context.Context, farm *entity.Farm) error
	FindByID(ctx context.Context, id string) (*entity.Farm, error)
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Farm, error)
	List(ctx context.Context, filter repository.FarmFilter) ([]*entity.Farm, int64, error)
	TopByProduction(ctx context.Context, filter repository.ProductionFilter, limit int) ([]repository.FarmTotal, error)
	FindWithProduction(ctx context.Context, ids []string, filter repository.ProductionFilter) ([]*entity.Farm, error)
}

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
}

type ProducerFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Producer, error)
}

type DefaultFarmService struct {
	FarmRepo     FarmRepository
	AddressRepo  AddressRepository
	ProducerRepo ProducerFinder
	Addresses    *DefaultAddressService
	Transactor   Transactor
	Policy       *policy.FarmPolicy
	Validate     *validator.Validate
}

func NewFarmService(
	farmRepo FarmRepository,
	addressRepo AddressRepository,
	producerRepo ProducerFinder,
	addresses *DefaultAddressService,
	transactor Transactor,
	validate *validator.Validate,
) *DefaultFarmService {
	return &DefaultFarmService{
		FarmRepo:     farmRepo,
		AddressRepo:  addressRepo,
		ProducerRepo: producerRepo,
		Addresses:    addresses,
		Transactor:   transactor,
		Policy:       policy.NewFarmPolicy(),
		Validate:     validate,
	}
}

// Register creates a farm and its address in a single transaction.
func (s *DefaultFarmService) Register(ctx context.Context, req *contract.CreateFarmRequest) (*contract.FarmResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateStruct(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if apierr := s.Policy.CheckAreaComposition(*req.TotalArea, *req.ArableArea, *req.VegetationArea); apierr != nil {
		return nil, apierr
	}

	producer, err := s.ProducerRepo.FindByID(ctx, req.ProducerID)
	if err != nil {
		log.Errorf("failed to fetch producer %s: %v", req.ProducerID, err)
		return nil, apierror.InternalServerError
	}

	if producer == nil {
		return nil, apierror.ProducerNotFoundError
	}

	if _, apierr := s.Addresses.resolve(ctx, req.Address.ZipCode); apierr != nil {
		return nil, apierr
	}

	farm := &entity.Farm{
		ProducerID:     producer.ID,
		Name:           req.Name,
		TotalArea:      *req.TotalArea,
		ArableArea:     *req.ArableArea,
		VegetationArea: *req.VegetationArea,
		Status:         entity.StatusActive,
	}
	address := &entity.Address{
		Street:       req.Address.Street,
		Number:       req.Address.Number,
		Complement:   req.Address.Complement,
		Neighborhood: req.Address.Neighborhood,
		City:         req.Address.City,
		State:        strings.ToUpper(req.Address.State),
		ZipCode:      utils.CleanCEP(req.Address.ZipCode),
	}

	err = s.Transactor.Execute(ctx, func(txCtx context.Context) error {
		if err := s.FarmRepo.Create(txCtx, farm); err != nil {
			return err
		}

		address.FarmID = farm.ID
		return s.AddressRepo.Create(txCtx, address)
	})
	if err != nil {
		// The producer was deleted in the meantime
		if database.IsForeignKeyViolation(err) {
			return nil, apierror.ProducerNotFoundError
		}
		log.Errorf("failed to create farm: %v", err)
		return nil, apierror.InternalServerError
	}

	farm.Producer = producer
	farm.Address = address
	return toFarmResponse(farm), nil
}

func (s *DefaultFarmService) List(ctx context.Context, query *contract.FarmListQuery) (*contract.PageResponse[*contract.FarmResponse], apierror.ErrorResponse) {
	utils.Sanitize(query)
	if apierr := validateStruct(s.Validate, query); apierr != nil {
		return nil, apierr
	}

	filter := repository.FarmFilter{
		Page:        newPage(query.Page, query.Limit, query.OrderBy, query.SortBy, farmColumns, "name"),
		Search:      query.Search,
		ProducerID:  query.ProducerID,
		State:       query.State,
		CultureName: query.CultureName,
	}

	farms, total, err := s.FarmRepo.List(ctx, filter)
	if err != nil {
		log.Errorf("failed to list farms: %v", err)
		return nil, apierror.InternalServerError
	}

	data := make([]*contract.FarmResponse, len(farms))
	for i, f := range farms {
		data[i] = toFarmResponse(f)
	}

	return &contract.PageResponse[*contract.FarmResponse]{
		Data: data,
		Meta: contract.NewPageMeta(filter.Page.Page, filter.Limit, total),
	}, nil
}

// ListTop returns the three farms with the highest actual production among the
// harvests matching the query. Harvests with unknown production are ignored.
func (s *DefaultFarmService) ListTop(ctx context.Context, query *contract.TopProductionQuery) ([]*contract.TopFarmResponse, apierror.ErrorResponse) {
	utils.Sanitize(query)
	if apierr := validateStruct(s.Validate, query); apierr != nil {
		return nil, apierr
	}

	filter := toProductionFilter(query)

	totals, err := s.FarmRepo.TopByProduction(ctx, filter, topLimit)
	if err != nil {
		log.Errorf("failed to rank farms: %v", err)
		return nil, apierror.InternalServerError
	}

	ids := make([]string, len(totals))
	for i, t := range totals {
		ids[i] = t.ID
	}

	farms, err := s.FarmRepo.FindWithProduction(ctx, ids, filter)
	if err != nil {
		log.Errorf("failed to load top farms: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TopFarmResponse, len(farms))
	for i, f := range farms {
		total := decimal.Zero
		for _, h := range f.Harvests {
			total = total.Add(h.Production())
		}

		producerName := ""
		if f.Producer != nil {
			producerName = f.Producer.Name
		}

		resp[i] = &contract.TopFarmResponse{
			ID:              f.ID,
			Name:            f.Name,
			State:           f.State(),
			TotalProduction: total,
			ProducerName:    producerName,
			Cultures:        harvestCultures(f.Harvests),
		}
	}
	return resp, nil
}

func toProductionFilter(query *contract.TopProductionQuery) repository.ProductionFilter {
	return repository.ProductionFilter{
		Year:        query.Year,
		CultureName: query.CultureName,
		State:       query.State,
	}
}

func toFarmResponse(f *entity.Farm) *contract.FarmResponse {
	resp := &contract.FarmResponse{
		ID:             f.ID,
		Name:           f.Name,
		TotalArea:      f.TotalArea,
		ArableArea:     f.ArableArea,
		VegetationArea: f.VegetationArea,
		Status:         string(f.Status),
		ProducerID:     f.ProducerID,
		Cultures:       harvestCultures(f.Harvests),
		CreatedAt:      utils.FormatTime(f.CreatedAt),
		UpdatedAt:      utils.FormatTime(f.UpdatedAt),
	}

	if f.Producer != nil {
		resp.Producer = &contract.FarmProducerResponse{ID: f.Producer.ID, Name: f.Producer.Name}
	}

	if f.Address != nil {
		resp.Address = &contract.AddressResponse{
			Street:       f.Address.Street,
			Number:       f.Address.Number,
			Complement:   f.Address.Complement,
			Neighborhood: f.Address.Neighborhood,
			City:         f.Address.City,
			State:        f.Address.State,
			ZipCode:      utils.FormatCEP(f.Address.ZipCode),
		}
	}
	return resp
}
