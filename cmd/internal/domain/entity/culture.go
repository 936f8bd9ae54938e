package entity

import "gorm.io/gorm"

// Culture is a crop type grown on a farm. Names are unique per farm.
type Culture struct {
	Model
	FarmID      string         `gorm:"size:36;not null;uniqueIndex:idx_cultures_farm_name"`
	Name        string         `gorm:"size:100;not null;uniqueIndex:idx_cultures_farm_name"`
	Description *string        `gorm:"type:text"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relationships
	Farm     *Farm      `gorm:"foreignKey:FarmID;references:ID"`
	Harvests []*Harvest `gorm:"foreignKey:CultureID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
