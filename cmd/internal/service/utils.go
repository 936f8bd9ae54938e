package service

import (
	"context"
	"errors"
	"strings"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/database/repository"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// Top production listings always return the first three entries.
const topLimit = 3

// errRejected aborts a transaction after a business rule rejected the operation.
// The rule's apierror.ErrorResponse is reported separately.
var errRejected = errors.New("operation rejected")

// Transactor runs fn inside a database transaction carried by the context.
type Transactor interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// LookupRecorder counts postal code lookups by result.
type LookupRecorder interface {
	IncrementPostalCodeLookup(result string)
}

type noopRecorder struct{}

func (noopRecorder) IncrementPostalCodeLookup(string) {}

func validateStruct(validate *validator.Validate, req any) apierror.ErrorResponse {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verr := apierror.FromValidationError(err); verr != nil {
		return verr
	}

	log.Errorf("failed to validate %T: %v", req, err)
	return apierror.InternalServerError
}

// newPage turns list query parameters into a repository page, applying defaults.
// columns maps the accepted orderBy values to database columns.
func newPage(page, limit int, orderBy, sortBy string, columns map[string]string, defaultOrder string) repository.Page {
	if page < 1 {
		page = contract.DefaultPage
	}
	if limit < 1 {
		limit = contract.DefaultLimit
	}
	limit = min(limit, contract.MaxLimit)

	column, ok := columns[orderBy]
	if !ok {
		column = columns[defaultOrder]
	}

	return repository.Page{
		Page:   page,
		Limit:  limit,
		Column: column,
		Desc:   strings.EqualFold(sortBy, "DESC"),
	}
}

// harvestCultures returns the distinct culture names of harvests, in order of appearance.
func harvestCultures(harvests []*entity.Harvest) []string {
	seen := make(map[string]struct{}, len(harvests))
	names := make([]string, 0, len(harvests))
	for _, h := range harvests {
		name := h.CultureName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
