package service

import (
	"context"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/database/repository"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

var producerColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"cpf":       "cpf",
	"phone":     "phone",
	"status":    "status",
	"createdAt": "created_at",
}

type ProducerRepository interface {
	Create(ctx context.Context, producer *entity.Producer) error
	FindByID(ctx context.Context, id string) (*entity.Producer, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	ExistsByCPF(ctx context.Context, cpf, excludeID string) (bool, error)
	List(ctx context.Context, filter repository.ProducerFilter) ([]*entity.Producer, int64, error)
	Updates(ctx context.Context, id string, changes map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	TopByProduction(ctx context.Context, limit int) ([]repository.ProducerTotal, error)
	FindWithProduction(ctx context.Context, ids []string) ([]*entity.Producer, error)
}

type DefaultProducerService struct {
	ProducerRepo ProducerRepository
	Validate     *validator.Validate
}

func NewProducerService(producerRepo ProducerRepository, validate *validator.Validate) *DefaultProducerService {
	return &DefaultProducerService{
		ProducerRepo: producerRepo,
		Validate:     validate,
	}
}

func (s *DefaultProducerService) Register(ctx context.Context, req *contract.CreateProducerRequest) (*contract.ProducerResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateStruct(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	cpf := utils.CleanCPF(req.CPF)

	exists, err := s.ProducerRepo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		log.Errorf("failed to check producer email: %v", err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.ProducerEmailExistsError
	}

	exists, err = s.ProducerRepo.ExistsByCPF(ctx, cpf, "")
	if err != nil {
		log.Errorf("failed to check producer cpf: %v", err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.ProducerCPFExistsError
	}

	producer := &entity.Producer{
		Name:   req.Name,
		CPF:    cpf,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: entity.StatusActive,
	}

	if err = s.ProducerRepo.Create(ctx, producer); err != nil {
		// Lost a race against a concurrent registration
		if database.IsUniqueViolation(err) {
			return nil, apierror.ProducerUniqueConflictErr
		}
		log.Errorf("failed to create producer: %v", err)
		return nil, apierror.InternalServerError
	}
	return toProducerResponse(producer), nil
}

func (s *DefaultProducerService) List(ctx context.Context, query *contract.ProducerListQuery) (*contract.PageResponse[*contract.ProducerResponse], apierror.ErrorResponse) {
	utils.Sanitize(query)
	if apierr := validateStruct(s.Validate, query); apierr != nil {
		return nil, apierr
	}

	filter := repository.ProducerFilter{
		Page:   newPage(query.Page, query.Limit, query.OrderBy, query.SortBy, producerColumns, "name"),
		Search: query.Search,
	}

	producers, total, err := s.ProducerRepo.List(ctx, filter)
	if err != nil {
		log.Errorf("failed to list producers: %v", err)
		return nil, apierror.InternalServerError
	}

	data := make([]*contract.ProducerResponse, len(producers))
	for i, p := range producers {
		data[i] = toProducerResponse(p)
	}

	return &contract.PageResponse[*contract.ProducerResponse]{
		Data: data,
		Meta: contract.NewPageMeta(filter.Page.Page, filter.Limit, total),
	}, nil
}

func (s *DefaultProducerService) Get(ctx context.Context, id string) (*contract.ProducerDetailResponse, apierror.ErrorResponse) {
	producer, apierr := s.findProducer(ctx, id)
	if apierr != nil {
		return nil, apierr
	}

	farms := make([]*contract.ProducerFarmResponse, len(producer.Farms))
	for i, f := range producer.Farms {
		farms[i] = &contract.ProducerFarmResponse{ID: f.ID, Name: f.Name}
	}

	return &contract.ProducerDetailResponse{
		ProducerResponse: toProducerResponse(producer),
		Farms:            farms,
	}, nil
}

func (s *DefaultProducerService) Update(ctx context.Context, id string, req *contract.UpdateProducerRequest) (*contract.AffectedResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateStruct(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	producer, apierr := s.findProducer(ctx, id)
	if apierr != nil {
		return nil, apierr
	}

	updater := &producerUpdater{
		ctx:     ctx,
		repo:    s.ProducerRepo,
		target:  producer,
		changes: make(map[string]any),
	}

	updater.setName(req.Name)
	updater.setCPF(req.CPF)
	updater.setEmail(req.Email)
	updater.setPhone(req.Phone)
	updater.setStatus(req.Status)

	if updater.err != nil {
		return nil, updater.err
	}

	if len(updater.changes) == 0 {
		return &contract.AffectedResponse{Affected: 0}, nil
	}

	affected, err := s.ProducerRepo.Updates(ctx, producer.ID, updater.changes)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apierror.ProducerUniqueConflictErr
		}
		log.Errorf("failed to update producer: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.AffectedResponse{Affected: affected}, nil
}

func (s *DefaultProducerService) Delete(ctx context.Context, id string) (*contract.AffectedResponse, apierror.ErrorResponse) {
	producer, apierr := s.findProducer(ctx, id)
	if apierr != nil {
		return nil, apierr
	}

	affected, err := s.ProducerRepo.Delete(ctx, producer.ID)
	if err != nil {
		log.Errorf("failed to delete producer: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.AffectedResponse{Affected: affected}, nil
}

// ListTop returns the three producers with the highest actual production.
// Harvests without a known production count as zero.
func (s *DefaultProducerService) ListTop(ctx context.Context) ([]*contract.TopProducerResponse, apierror.ErrorResponse) {
	totals, err := s.ProducerRepo.TopByProduction(ctx, topLimit)
	if err != nil {
		log.Errorf("failed to rank producers: %v", err)
		return nil, apierror.InternalServerError
	}

	ids := make([]string, len(totals))
	for i, t := range totals {
		ids[i] = t.ID
	}

	producers, err := s.ProducerRepo.FindWithProduction(ctx, ids)
	if err != nil {
		log.Errorf("failed to load top producers: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TopProducerResponse, len(producers))
	for i, p := range producers {
		resp[i] = toTopProducerResponse(p)
	}
	return resp, nil
}

func (s *DefaultProducerService) findProducer(ctx context.Context, id string) (*entity.Producer, apierror.ErrorResponse) {
	producer, err := s.ProducerRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch producer %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if producer == nil {
		return nil, apierror.ProducerNotFoundError
	}
	return producer, nil
}

func toProducerResponse(p *entity.Producer) *contract.ProducerResponse {
	return &contract.ProducerResponse{
		ID:        p.ID,
		Name:      p.Name,
		CPF:       p.CPF,
		Email:     p.Email,
		Phone:     p.Phone,
		Status:    string(p.Status),
		CreatedAt: utils.FormatTime(p.CreatedAt),
		UpdatedAt: utils.FormatTime(p.UpdatedAt),
	}
}

func toTopProducerResponse(p *entity.Producer) *contract.TopProducerResponse {
	total := decimal.Zero
	farms := make([]*contract.TopProducerFarmResponse, len(p.Farms))
	for i, f := range p.Farms {
		production := decimal.Zero
		for _, h := range f.Harvests {
			production = production.Add(h.Production())
		}
		total = total.Add(production)

		farms[i] = &contract.TopProducerFarmResponse{
			Name:       f.Name,
			State:      f.State(),
			Cultures:   harvestCultures(f.Harvests),
			Production: production,
		}
	}

	return &contract.TopProducerResponse{
		ID:              p.ID,
		Name:            p.Name,
		TotalProduction: total,
		Farms:           farms,
	}
}
