package entity

import (
	"github.com/shopspring/decimal"
)

type Season string

const (
	SeasonSummer     Season = "SUMMER"
	SeasonWinter     Season = "WINTER"
	SeasonSpring     Season = "SPRING"
	SeasonAutumn     Season = "AUTUMN"
	SeasonFirstCrop  Season = "FIRST_CROP"
	SeasonSecondCrop Season = "SECOND_CROP"
)

// Harvest is one season of a culture planted on a farm.
// ActualProduction stays null until the harvest is completed.
type Harvest struct {
	Model
	FarmID             string              `gorm:"size:36;not null;index"`
	CultureID          string              `gorm:"size:36;not null;index"`
	Year               int                 `gorm:"not null;index"`
	Season             Season              `gorm:"size:20;not null"`
	Area               decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	ExpectedProduction decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	ActualProduction   decimal.NullDecimal `gorm:"type:decimal(10,2)"`

	// Relationships
	Farm    *Farm    `gorm:"foreignKey:FarmID;references:ID"`
	Culture *Culture `gorm:"foreignKey:CultureID;references:ID"`
}

// Production returns the actual production, zero while it is unknown.
func (h *Harvest) Production() decimal.Decimal {
	if !h.ActualProduction.Valid {
		return decimal.Zero
	}
	return h.ActualProduction.Decimal
}

// CultureName returns the harvested culture name, or an empty string when not loaded.
func (h *Harvest) CultureName() string {
	if h.Culture == nil {
		return ""
	}
	return h.Culture.Name
}
