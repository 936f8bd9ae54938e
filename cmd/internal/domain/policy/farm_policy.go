package policy

import (
	"agrodog/cmd/internal/utils/apierror"

	"github.com/shopspring/decimal"
)

// FarmPolicy holds the area rules of farms and the harvests planted on them.
// Violations are returned as apierror.ErrorResponse so services can hand them straight to handlers.
type FarmPolicy struct{}

func NewFarmPolicy() *FarmPolicy {
	return &FarmPolicy{}
}

// CheckAreaComposition rejects farms whose arable and vegetation areas together exceed the total area.
func (p *FarmPolicy) CheckAreaComposition(total, arable, vegetation decimal.Decimal) apierror.ErrorResponse {
	if arable.IsNegative() || vegetation.IsNegative() || total.IsNegative() {
		return apierror.NewBadRequestError("Farm areas cannot be negative")
	}

	if arable.Add(vegetation).GreaterThan(total) {
		return apierror.NewBadRequestError(
			"The sum of arable area (%s ha) and vegetation area (%s ha) exceeds the total area of the farm (%s ha)",
			arable.String(), vegetation.String(), total.String(),
		)
	}
	return nil
}

// CheckHarvestBudget rejects a new harvest whose area, added to the area already
// planted on the farm, exceeds the farm's arable area. Filling it exactly is allowed.
func (p *FarmPolicy) CheckHarvestBudget(arable, used, area decimal.Decimal) apierror.ErrorResponse {
	if area.IsNegative() {
		return apierror.NewBadRequestError("Harvest area cannot be negative")
	}

	if used.Add(area).GreaterThan(arable) {
		return apierror.NewBadRequestError(
			"The planting area (%s ha) added to the area already planted (%s ha) exceeds the arable area of the farm (%s ha)",
			area.String(), used.String(), arable.String(),
		)
	}
	return nil
}
