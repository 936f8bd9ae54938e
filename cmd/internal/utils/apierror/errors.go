package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed JSON body")
	MalformedQueryError = NewSimple(400, "Malformed query parameters")
	InternalServerError = NewSimple(500, "Internal server error")
	UnauthorizedError   = NewSimple(401, "Missing or invalid authorization token")
	TooManyRequestsErr  = NewSimple(429, "Too many requests")

	NotFoundError  = NewSimple(404, "Resource not found")
	InvalidIDError = NewSimple(400, "The provided ID is invalid, IDs are UUIDs")

	/*
	 * Producers
	 */
	ProducerNotFoundError     = NewSimple(404, "Producer not found")
	ProducerEmailExistsError  = NewSimple(400, "Producer with this email already exists")
	ProducerCPFExistsError    = NewSimple(400, "Producer with this CPF already exists")
	ProducerEmailTakenError   = NewSimple(400, "Email already registered for another producer")
	ProducerCPFTakenError     = NewSimple(400, "CPF already registered for another producer")
	ProducerUniqueConflictErr = NewSimple(400, "Producer email or CPF already registered")
	InvalidCPFError           = NewSimple(400, "The provided CPF is invalid")

	/*
	 * Farms, cultures and harvests
	 */
	FarmNotFoundError         = NewSimple(404, "Farm not found")
	HarvestFarmNotFoundError  = NewSimple(400, "Farm not found")
	HarvestCultureNotFoundErr = NewSimple(400, "Culture not found")
	CultureExistsError        = NewSimple(400, "A culture with this name already exists for this farm")

	/*
	 * Postal codes
	 */
	InvalidCEPError  = NewSimple(400, "Postal code must contain 8 digits")
	CEPNotFoundError = NewSimple(404, "Postal code not found")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := fe.Field()

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too small, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too large, max: "+fe.Param())
		case "len":
			problems[field] = append(problems[field], "Value must have length "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "uuid", "uuid4":
			problems[field] = append(problems[field], "Value must be a valid UUID")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "cpf":
			problems[field] = append(problems[field], "Value must be a valid CPF")
		case "cep":
			problems[field] = append(problems[field], "Value must be a postal code with 8 digits")
		case "uf":
			problems[field] = append(problems[field], "Value must be a valid state (UF) code")
		case "digits":
			problems[field] = append(problems[field], "Value must contain only digits")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewBadRequestError(msg string, args ...any) *APIError {
	return NewSimple(http.StatusBadRequest, msg, args...)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Missing required parameter '%s'", name)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
