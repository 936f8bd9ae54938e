package service

import (
	"context"

	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/utils"
	"agrodog/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// producerUpdater acts as a change set for a producer partial update.
// It accumulates the columns to write and stops at the first error.
type producerUpdater struct {
	ctx    context.Context
	repo   ProducerRepository
	target *entity.Producer

	// State
	changes map[string]any
	err     apierror.ErrorResponse
}

func (u *producerUpdater) setName(newVal *string) {
	u.setString("name", newVal)
}

func (u *producerUpdater) setPhone(newVal *string) {
	u.setString("phone", newVal)
}

func (u *producerUpdater) setString(column string, newVal *string) {
	if u.err != nil || newVal == nil {
		return
	}
	u.changes[column] = *newVal
}

// setCPF checks uniqueness only when the CPF actually changes.
func (u *producerUpdater) setCPF(newVal *string) {
	if u.err != nil || newVal == nil {
		return
	}

	cpf := utils.CleanCPF(*newVal)
	if cpf != u.target.CPF {
		exists, err := u.repo.ExistsByCPF(u.ctx, cpf, u.target.ID)
		if err != nil {
			log.Errorf("failed to check producer cpf: %v", err)
			u.err = apierror.InternalServerError
			return
		}

		if exists {
			u.err = apierror.ProducerCPFTakenError
			return
		}
	}
	u.changes["cpf"] = cpf
}

// setEmail checks uniqueness only when the email actually changes.
func (u *producerUpdater) setEmail(newVal *string) {
	if u.err != nil || newVal == nil {
		return
	}

	if *newVal != u.target.Email {
		exists, err := u.repo.ExistsByEmail(u.ctx, *newVal, u.target.ID)
		if err != nil {
			log.Errorf("failed to check producer email: %v", err)
			u.err = apierror.InternalServerError
			return
		}

		if exists {
			u.err = apierror.ProducerEmailTakenError
			return
		}
	}
	u.changes["email"] = *newVal
}

func (u *producerUpdater) setStatus(newVal *string) {
	if u.err != nil || newVal == nil {
		return
	}

	status := entity.Status(*newVal)
	if !status.Valid() {
		u.err = apierror.NewBadRequestError("Invalid producer status '%s'", *newVal)
		return
	}
	u.changes["status"] = status
}
