package repository

import (
	"context"

	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultHarvestRepository struct {
	db *gorm.DB
}

func NewHarvestRepository(db *gorm.DB) *DefaultHarvestRepository {
	return &DefaultHarvestRepository{db: db}
}

func (r *DefaultHarvestRepository) Create(ctx context.Context, harvest *entity.Harvest) error {
	return database.Conn(ctx, r.db).Omit(clause.Associations).Create(harvest).Error
}

// SumAreaByFarm returns the area already planted on the farm across all its harvests,
// at the scale of the area column.
func (r *DefaultHarvestRepository) SumAreaByFarm(ctx context.Context, farmID string) (decimal.Decimal, error) {
	var result struct {
		Used decimal.Decimal
	}
	err := database.Conn(ctx, r.db).
		Model(&entity.Harvest{}).
		Select("ROUND(COALESCE(SUM(area), 0), 2) AS used").
		Where("farm_id = ?", farmID).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Used.Round(areaScale), nil
}

// TopByProduction returns the harvests with the highest actual production matching filter,
// with culture, farm, producer and address loaded.
func (r *DefaultHarvestRepository) TopByProduction(ctx context.Context, filter ProductionFilter, limit int) ([]*entity.Harvest, error) {
	var harvests []*entity.Harvest
	err := database.Conn(ctx, r.db).
		Model(&entity.Harvest{}).
		Select("harvests.*").
		Scopes(productionScope(filter)).
		Preload("Culture").
		Preload("Farm").
		Preload("Farm.Producer").
		Preload("Farm.Address").
		Order("harvests.actual_production DESC").
		Order("harvests.year DESC").
		Order("harvests.id ASC").
		Limit(limit).
		Find(&harvests).Error
	if err != nil {
		return nil, err
	}
	return harvests, nil
}
