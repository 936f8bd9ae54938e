package contract

import "github.com/shopspring/decimal"

type CreateFarmRequest struct {
	ProducerID     string           `json:"producerId" validate:"required,uuid"`
	Name           string           `json:"name" validate:"required,max=100"`
	TotalArea      *decimal.Decimal `json:"totalArea" validate:"required,min=0"`
	ArableArea     *decimal.Decimal `json:"arableArea" validate:"required,min=0"`
	VegetationArea *decimal.Decimal `json:"vegetationArea" validate:"required,min=0"`
	Address        *AddressRequest  `json:"address" validate:"required"`
}

type AddressRequest struct {
	Street       string  `json:"street" validate:"required,max=200"`
	Number       string  `json:"number" validate:"required,max=10"`
	Complement   *string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood string  `json:"neighborhood" validate:"required,max=100"`
	City         string  `json:"city" validate:"required,max=100"`
	State        string  `json:"state" validate:"required,uf"`
	ZipCode      string  `json:"zipCode" validate:"required,cep"`
}

type FarmListQuery struct {
	Page        int    `query:"page" json:"page" validate:"omitempty,min=1"`
	Limit       int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	OrderBy     string `query:"orderBy" json:"orderBy" validate:"omitempty,oneof=name totalArea arableArea createdAt"`
	SortBy      string `query:"sortBy" json:"sortBy" validate:"omitempty,oneof=ASC DESC asc desc"`
	Search      string `query:"search" json:"search" validate:"max=100"`
	ProducerID  string `query:"producerId" json:"producerId" validate:"omitempty,uuid"`
	State       string `query:"state" json:"state" validate:"omitempty,uf"`
	CultureName string `query:"cultureName" json:"cultureName" validate:"max=100"`
}

// TopProductionQuery filters the harvests counted by the top production listings.
type TopProductionQuery struct {
	Year        *int   `query:"-" json:"year" validate:"omitempty,min=1900"`
	CultureName string `query:"cultureName" json:"cultureName" validate:"max=100"`
	State       string `query:"state" json:"state" validate:"omitempty,uf"`
}

type FarmResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	TotalArea      decimal.Decimal       `json:"totalArea"`
	ArableArea     decimal.Decimal       `json:"arableArea"`
	VegetationArea decimal.Decimal       `json:"vegetationArea"`
	Status         string                `json:"status"`
	ProducerID     string                `json:"producerId"`
	Producer       *FarmProducerResponse `json:"producer,omitempty"`
	Address        *AddressResponse      `json:"address,omitempty"`
	Cultures       []string              `json:"cultures"`
	CreatedAt      string                `json:"createdAt"`
	UpdatedAt      string                `json:"updatedAt"`
}

type FarmProducerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AddressResponse struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
}

type TopFarmResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	State           string          `json:"state"`
	TotalProduction decimal.Decimal `json:"totalProduction"`
	ProducerName    string          `json:"producerName"`
	Cultures        []string        `json:"cultures"`
}
