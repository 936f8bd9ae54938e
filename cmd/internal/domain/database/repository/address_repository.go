package repository

import (
	"context"

	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *DefaultAddressRepository {
	return &DefaultAddressRepository{db: db}
}

func (r *DefaultAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	return database.Conn(ctx, r.db).Create(address).Error
}
