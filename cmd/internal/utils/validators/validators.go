package validators

import (
	"reflect"
	"strings"

	"agrodog/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

var federativeUnits = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {}, "ES": {}, "GO": {},
	"MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {}, "PB": {}, "PR": {}, "PE": {}, "PI": {},
	"RJ": {}, "RN": {}, "RS": {}, "RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// New returns a validator with every custom tag used by the request contracts.
func New() *validator.Validate {
	validate := validator.New()
	RegisterAll(validate)
	return validate
}

func RegisterAll(validate *validator.Validate) {
	validate.RegisterCustomTypeFunc(DecimalValue, decimal.Decimal{}, decimal.NullDecimal{})

	// Field names in error responses follow the json tags
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("cpf", CPF)
	_ = validate.RegisterValidation("cep", CEP)
	_ = validate.RegisterValidation("uf", FederativeUnit)
	_ = validate.RegisterValidation("digits", Digits)
}

// CPF accepts formatted ("123.456.789-09") or raw CPFs with valid verifying digits.
func CPF(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsCPFValid(val)
}

// CEP accepts any postal code that reduces to exactly 8 digits.
func CEP(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsCEPValid(val)
}

func FederativeUnit(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, found := federativeUnits[strings.ToUpper(val)]
	return found
}

// Digits rejects anything that is not made only of ASCII digits.
func Digits(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'digits' applied to non-string type: %s", field.Kind().String())
		return false
	}
	return utils.IsOnlyNumbers(field.String())
}

// DecimalValue lets numeric tags (min, max, gte) work on decimal fields.
func DecimalValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := v.Float64()
		return f
	case decimal.NullDecimal:
		if !v.Valid {
			return nil
		}
		f, _ := v.Decimal.Float64()
		return f
	}
	return nil
}
