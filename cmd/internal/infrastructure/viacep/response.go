package viacep

import (
	"strings"

	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/utils"
)

type addressResponse struct {
	CEP          string   `json:"cep"`
	Street       string   `json:"logradouro"`
	Complement   string   `json:"complemento"`
	Neighborhood string   `json:"bairro"`
	City         string   `json:"localidade"`
	State        string   `json:"uf"`
	IBGE         string   `json:"ibge"`
	DDD          string   `json:"ddd"`
	Error        flexBool `json:"erro"`
}

// flexBool accepts both true and "true", ViaCEP has answered with either.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	v := strings.Trim(strings.TrimSpace(string(data)), `"`)
	*b = flexBool(strings.EqualFold(v, "true"))
	return nil
}

func (a *addressResponse) ToDomain() *entity.PostalAddress {
	return &entity.PostalAddress{
		ZipCode:      utils.OnlyDigits(a.CEP),
		Street:       a.Street,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        strings.ToUpper(a.State),
		IBGECode:     a.IBGE,
		AreaCode:     a.DDD,
	}
}
