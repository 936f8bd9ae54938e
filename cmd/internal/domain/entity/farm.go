package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Farm is a land holding. Areas are in hectares and ArableArea + VegetationArea
// never exceeds TotalArea at registration.
type Farm struct {
	Model
	ProducerID     string          `gorm:"size:36;not null;index"`
	Name           string          `gorm:"size:100;not null"`
	TotalArea      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ArableArea     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	VegetationArea decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status         Status          `gorm:"size:20;not null;default:ACTIVE"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`

	// Relationships
	Producer *Producer  `gorm:"foreignKey:ProducerID;references:ID"`
	Address  *Address   `gorm:"foreignKey:FarmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Cultures []*Culture `gorm:"foreignKey:FarmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Harvests []*Harvest `gorm:"foreignKey:FarmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// State returns the farm's federative unit, or an empty string when the address was not loaded.
func (f *Farm) State() string {
	if f.Address == nil {
		return ""
	}
	return f.Address.State
}
