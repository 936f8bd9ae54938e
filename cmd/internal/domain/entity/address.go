package entity

import "gorm.io/gorm"

type Address struct {
	Model
	FarmID       string         `gorm:"size:36;not null;uniqueIndex"`
	Street       string         `gorm:"size:200;not null"`
	Number       string         `gorm:"size:10;not null"`
	Complement   *string        `gorm:"size:100"`
	Neighborhood string         `gorm:"size:100;not null"`
	City         string         `gorm:"size:100;not null"`
	State        string         `gorm:"size:2;not null;index"`
	ZipCode      string         `gorm:"size:8;not null"` // digits only
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
