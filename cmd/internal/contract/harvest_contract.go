package contract

import "github.com/shopspring/decimal"

type CreateCultureRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	FarmID      string  `json:"farmId" validate:"required,uuid"`
}

type CultureResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	FarmID      string  `json:"farmId"`
	CreatedAt   string  `json:"createdAt"`
}

type CreateHarvestRequest struct {
	Year               int              `json:"year" validate:"required,min=1900"`
	Season             string           `json:"season" validate:"required,oneof=SUMMER WINTER SPRING AUTUMN FIRST_CROP SECOND_CROP"`
	Area               *decimal.Decimal `json:"area" validate:"required,min=0"`
	ExpectedProduction *decimal.Decimal `json:"expectedProduction" validate:"required,min=0"`
	ActualProduction   *decimal.Decimal `json:"actualProduction" validate:"omitempty,min=0"`
	FarmID             string           `json:"farmId" validate:"required,uuid"`
	CultureID          string           `json:"cultureId" validate:"required,uuid"`
}

type HarvestResponse struct {
	ID                 string           `json:"id"`
	Year               int              `json:"year"`
	Season             string           `json:"season"`
	Area               decimal.Decimal  `json:"area"`
	ExpectedProduction decimal.Decimal  `json:"expectedProduction"`
	ActualProduction   *decimal.Decimal `json:"actualProduction"`
	FarmID             string           `json:"farmId"`
	CultureID          string           `json:"cultureId"`
	CreatedAt          string           `json:"createdAt"`
}

// TopHarvestResponse describes a harvest by its culture, as in "the 2024 soy of Fazenda X".
type TopHarvestResponse struct {
	ID              string          `json:"id"` // culture id
	Name            string          `json:"name"`
	HarvestID       string          `json:"harvestId"`
	Year            int             `json:"year"`
	FarmName        string          `json:"farmName"`
	ProducerName    string          `json:"producerName"`
	TotalProduction decimal.Decimal `json:"totalProduction"`
	TotalArea       decimal.Decimal `json:"totalArea"`
}
