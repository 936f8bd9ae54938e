package repository

import (
	"context"
	"errors"
	"strings"

	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProducerFilter struct {
	Page
	Search string
}

// ProducerTotal is a producer id ranked by its summed actual production.
type ProducerTotal struct {
	ID    string
	Total decimal.Decimal
}

type DefaultProducerRepository struct {
	db *gorm.DB
}

func NewProducerRepository(db *gorm.DB) *DefaultProducerRepository {
	return &DefaultProducerRepository{db: db}
}

func (r *DefaultProducerRepository) Create(ctx context.Context, producer *entity.Producer) error {
	return database.Conn(ctx, r.db).Omit("Farms").Create(producer).Error
}

func (r *DefaultProducerRepository) FindByID(ctx context.Context, id string) (*entity.Producer, error) {
	var producer entity.Producer
	err := database.Conn(ctx, r.db).
		Preload("Farms", func(db *gorm.DB) *gorm.DB {
			return db.Order("farms.name ASC")
		}).
		Where("id = ?", id).
		First(&producer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &producer, nil
}

// ExistsByEmail checks every row, soft-deleted ones included, except excludeID when set.
func (r *DefaultProducerRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

// ExistsByCPF checks every row, soft-deleted ones included, except excludeID when set.
func (r *DefaultProducerRepository) ExistsByCPF(ctx context.Context, cpf, excludeID string) (bool, error) {
	return r.exists(ctx, "cpf", cpf, excludeID)
}

func (r *DefaultProducerRepository) exists(ctx context.Context, column, value, excludeID string) (bool, error) {
	query := database.Conn(ctx, r.db).
		Unscoped().
		Model(&entity.Producer{}).
		Where(column+" = ?", value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultProducerRepository) List(ctx context.Context, filter ProducerFilter) ([]*entity.Producer, int64, error) {
	var total int64
	err := database.Conn(ctx, r.db).
		Model(&entity.Producer{}).
		Scopes(producerSearchScope(filter.Search)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var producers []*entity.Producer
	err = database.Conn(ctx, r.db).
		Scopes(producerSearchScope(filter.Search)).
		Order(filter.OrderClause("producers")).
		Order("producers.id ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&producers).Error
	if err != nil {
		return nil, 0, err
	}
	return producers, total, nil
}

// producerSearchScope matches the search term against name, email and phone.
func producerSearchScope(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(search) == "" {
			return db
		}
		pattern := likePattern(search)
		return db.Where(
			"producers.name LIKE ? ESCAPE '!' OR producers.email LIKE ? ESCAPE '!' OR producers.phone LIKE ? ESCAPE '!'",
			pattern, pattern, pattern,
		)
	}
}

// Updates writes the given columns and returns the number of affected rows.
func (r *DefaultProducerRepository) Updates(ctx context.Context, id string, changes map[string]any) (int64, error) {
	result := database.Conn(ctx, r.db).
		Model(&entity.Producer{}).
		Where("id = ?", id).
		Updates(changes)
	return result.RowsAffected, result.Error
}

// Delete soft-deletes the producer and returns the number of affected rows.
func (r *DefaultProducerRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Producer{})
	return result.RowsAffected, result.Error
}

// TopByProduction ranks producers by the actual production of their farms' harvests,
// unknown production counting as zero.
func (r *DefaultProducerRepository) TopByProduction(ctx context.Context, limit int) ([]ProducerTotal, error) {
	var totals []ProducerTotal
	err := database.Conn(ctx, r.db).
		Table("producers").
		Select("producers.id AS id, ROUND(COALESCE(SUM(harvests.actual_production), 0), 2) AS total").
		Joins("LEFT JOIN farms ON farms.producer_id = producers.id AND farms.deleted_at IS NULL").
		Joins("LEFT JOIN harvests ON harvests.farm_id = farms.id").
		Where("producers.deleted_at IS NULL").
		Group("producers.id, producers.name").
		Order("total DESC").
		Order("producers.name ASC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	for i := range totals {
		totals[i].Total = totals[i].Total.Round(areaScale)
	}
	return totals, nil
}

// FindWithProduction loads the producers with farms, addresses and harvest cultures,
// preserving the order of ids.
func (r *DefaultProducerRepository) FindWithProduction(ctx context.Context, ids []string) ([]*entity.Producer, error) {
	if len(ids) == 0 {
		return []*entity.Producer{}, nil
	}

	var producers []*entity.Producer
	err := database.Conn(ctx, r.db).
		Preload("Farms", func(db *gorm.DB) *gorm.DB {
			return db.Order("farms.name ASC")
		}).
		Preload("Farms.Address").
		Preload("Farms.Harvests", func(db *gorm.DB) *gorm.DB {
			return db.Order("harvests.year DESC").Order("harvests.id ASC")
		}).
		Preload("Farms.Harvests.Culture").
		Where("id IN ?", ids).
		Find(&producers).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Producer, len(producers))
	for _, p := range producers {
		byID[p.ID] = p
	}

	ordered := make([]*entity.Producer, 0, len(producers))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
