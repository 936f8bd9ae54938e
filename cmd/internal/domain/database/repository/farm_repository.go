package repository

import (
	"context"
	"errors"
	"strings"

	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FarmFilter struct {
	Page
	Search      string // farm or producer name
	ProducerID  string
	State       string
	CultureName string
}

// FarmTotal is a farm id ranked by the summed actual production of its matching harvests.
type FarmTotal struct {
	ID    string
	Total decimal.Decimal
}

type DefaultFarmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) *DefaultFarmRepository {
	return &DefaultFarmRepository{db: db}
}

// Create inserts the farm row only, associations are persisted by their own repositories.
func (r *DefaultFarmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	return database.Conn(ctx, r.db).Omit(clause.Associations).Create(farm).Error
}

func (r *DefaultFarmRepository) FindByID(ctx context.Context, id string) (*entity.Farm, error) {
	return r.findByID(database.Conn(ctx, r.db), id)
}

// FindByIDForUpdate loads the farm and locks its row until the surrounding transaction ends.
func (r *DefaultFarmRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Farm, error) {
	return r.findByID(database.ForUpdate(database.Conn(ctx, r.db)), id)
}

func (r *DefaultFarmRepository) findByID(db *gorm.DB, id string) (*entity.Farm, error) {
	var farm entity.Farm
	err := db.Where("id = ?", id).First(&farm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *DefaultFarmRepository) List(ctx context.Context, filter FarmFilter) ([]*entity.Farm, int64, error) {
	var total int64
	err := database.Conn(ctx, r.db).
		Model(&entity.Farm{}).
		Scopes(farmFilterScope(filter)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var farms []*entity.Farm
	err = database.Conn(ctx, r.db).
		Model(&entity.Farm{}).
		Select("farms.*").
		Scopes(farmFilterScope(filter)).
		Preload("Producer").
		Preload("Address").
		Preload("Harvests", func(db *gorm.DB) *gorm.DB {
			return db.Order("harvests.year DESC").Order("harvests.id ASC")
		}).
		Preload("Harvests.Culture").
		Order(filter.OrderClause("farms")).
		Order("farms.id ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&farms).Error
	if err != nil {
		return nil, 0, err
	}
	return farms, total, nil
}

func farmFilterScope(filter FarmFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.
			Joins("JOIN producers ON producers.id = farms.producer_id AND producers.deleted_at IS NULL").
			Joins("LEFT JOIN addresses ON addresses.farm_id = farms.id AND addresses.deleted_at IS NULL")

		if search := strings.TrimSpace(filter.Search); search != "" {
			pattern := strings.ToLower(likePattern(search))
			db = db.Where("LOWER(farms.name) LIKE ? ESCAPE '!' OR LOWER(producers.name) LIKE ? ESCAPE '!'", pattern, pattern)
		}
		if filter.ProducerID != "" {
			db = db.Where("farms.producer_id = ?", filter.ProducerID)
		}
		if state := strings.TrimSpace(filter.State); state != "" {
			db = db.Where("UPPER(addresses.state) = ?", strings.ToUpper(state))
		}
		if name := strings.TrimSpace(filter.CultureName); name != "" {
			db = db.Where(
				"EXISTS (SELECT 1 FROM harvests JOIN cultures ON cultures.id = harvests.culture_id "+
					"WHERE harvests.farm_id = farms.id AND LOWER(cultures.name) = ?)",
				strings.ToLower(name),
			)
		}
		return db
	}
}

// TopByProduction ranks farms by the actual production of the harvests matching filter.
// Harvests without actual production are ignored.
func (r *DefaultFarmRepository) TopByProduction(ctx context.Context, filter ProductionFilter, limit int) ([]FarmTotal, error) {
	var totals []FarmTotal
	err := database.Conn(ctx, r.db).
		Table("harvests").
		Select("farms.id AS id, ROUND(SUM(harvests.actual_production), 2) AS total").
		Scopes(productionScope(filter)).
		Group("farms.id, farms.name").
		Order("total DESC").
		Order("farms.name ASC").
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

// FindWithProduction loads the farms with producer and address, attaching only the
// harvests matching filter. The order of ids is preserved.
func (r *DefaultFarmRepository) FindWithProduction(ctx context.Context, ids []string, filter ProductionFilter) ([]*entity.Farm, error) {
	if len(ids) == 0 {
		return []*entity.Farm{}, nil
	}

	db := database.Conn(ctx, r.db)

	var farms []*entity.Farm
	err := db.
		Preload("Producer").
		Preload("Address").
		Where("id IN ?", ids).
		Find(&farms).Error
	if err != nil {
		return nil, err
	}

	var harvests []*entity.Harvest
	err = db.
		Model(&entity.Harvest{}).
		Select("harvests.*").
		Scopes(productionScope(filter)).
		Where("harvests.farm_id IN ?", ids).
		Preload("Culture").
		Order("harvests.year DESC").
		Order("harvests.id ASC").
		Find(&harvests).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Farm, len(farms))
	for _, f := range farms {
		byID[f.ID] = f
	}
	for _, h := range harvests {
		if f, ok := byID[h.FarmID]; ok {
			f.Harvests = append(f.Harvests, h)
		}
	}

	ordered := make([]*entity.Farm, 0, len(farms))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

// productionScope joins a harvests query with its live farm, culture and address
// and keeps the harvests with a known production that match filter.
func productionScope(filter ProductionFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.
			Joins("JOIN farms ON farms.id = harvests.farm_id AND farms.deleted_at IS NULL").
			Joins("JOIN producers ON producers.id = farms.producer_id AND producers.deleted_at IS NULL").
			Joins("JOIN cultures ON cultures.id = harvests.culture_id AND cultures.deleted_at IS NULL").
			Joins("LEFT JOIN addresses ON addresses.farm_id = farms.id AND addresses.deleted_at IS NULL").
			Where("harvests.actual_production IS NOT NULL")

		if filter.Year != nil {
			db = db.Where("harvests.year = ?", *filter.Year)
		}
		if name := strings.TrimSpace(filter.CultureName); name != "" {
			db = db.Where("LOWER(cultures.name) = ?", strings.ToLower(name))
		}
		if state := strings.TrimSpace(filter.State); state != "" {
			db = db.Where("UPPER(addresses.state) = ?", strings.ToUpper(state))
		}
		return db
	}
}
