package contract

import "github.com/shopspring/decimal"

type CreateProducerRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=100"`
	CPF   string `json:"cpf" validate:"required,cpf"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,digits,min=10,max=11"`
}

// UpdateProducerRequest is a partial update, nil fields are left untouched.
type UpdateProducerRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=3,max=100"`
	CPF    *string `json:"cpf" validate:"omitempty,cpf"`
	Email  *string `json:"email" validate:"omitempty,email,max=100"`
	Phone  *string `json:"phone" validate:"omitempty,digits,min=10,max=11"`
	Status *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type ProducerListQuery struct {
	Page    int    `query:"page" json:"page" validate:"omitempty,min=1"`
	Limit   int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	OrderBy string `query:"orderBy" json:"orderBy" validate:"omitempty,oneof=name email cpf phone status createdAt"`
	SortBy  string `query:"sortBy" json:"sortBy" validate:"omitempty,oneof=ASC DESC asc desc"`
	Search  string `query:"search" json:"search" validate:"max=100"`
}

type ProducerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type ProducerFarmResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TopProducerResponse struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	TotalProduction decimal.Decimal            `json:"totalProduction"`
	Farms           []*TopProducerFarmResponse `json:"farms"`
}

type TopProducerFarmResponse struct {
	Name       string          `json:"name"`
	State      string          `json:"state"`
	Cultures   []string        `json:"cultures"`
	Production decimal.Decimal `json:"production"`
}

type ProducerDetailResponse struct {
	*ProducerResponse
	Farms []*ProducerFarmResponse `json:"farms"`
}
