package repository

import (
	"context"
	"errors"
	"strings"

	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCultureRepository struct {
	db *gorm.DB
}

func NewCultureRepository(db *gorm.DB) *DefaultCultureRepository {
	return &DefaultCultureRepository{db: db}
}

func (r *DefaultCultureRepository) Create(ctx context.Context, culture *entity.Culture) error {
	return database.Conn(ctx, r.db).Omit(clause.Associations).Create(culture).Error
}

func (r *DefaultCultureRepository) FindByID(ctx context.Context, id string) (*entity.Culture, error) {
	var culture entity.Culture
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&culture).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &culture, nil
}

// ExistsByName reports whether the farm already grows a culture with this exact name.
func (r *DefaultCultureRepository) ExistsByName(ctx context.Context, farmID, name string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		Model(&entity.Culture{}).
		Where("farm_id = ? AND name = ?", farmID, strings.TrimSpace(name)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
