package entity

import "gorm.io/gorm"

// Producer is a rural landowner or operator. CPF and email are globally unique,
// soft-deleted rows included.
type Producer struct {
	Model
	Name      string         `gorm:"size:100;not null"`
	CPF       string         `gorm:"column:cpf;size:11;not null;uniqueIndex"`
	Email     string         `gorm:"size:100;not null;uniqueIndex"`
	Phone     string         `gorm:"size:20;not null"`
	Status    Status         `gorm:"size:20;not null;default:ACTIVE"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	Farms []*Farm `gorm:"foreignKey:ProducerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
