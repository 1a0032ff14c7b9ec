package client

import (
	"context"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/client"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

type UpdateClientInput struct {
	Name    *string
	CPF     *string
	Phone   *string
	Email   *string
	Address *string
	City    *string
	State   *string
	CEP     *string
}

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

// Edição exclui o próprio registro do conjunto de duplicados
// (excludeID) e roda o par check+save na mesma transação.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	current *models.Client,
	in UpdateClientInput,
	actorID uint,
) (*models.Client, error) {

	if in.Name != nil {
		current.Name = *in.Name
	}
	if in.CPF != nil {
		current.CPF = *in.CPF
	}
	if in.Phone != nil {
		current.Phone = *in.Phone
	}
	if in.Email != nil {
		current.Email = *in.Email
	}
	if in.Address != nil {
		current.Address = *in.Address
	}
	if in.City != nil {
		current.City = *in.City
	}
	if in.State != nil {
		current.State = *in.State
	}
	if in.CEP != nil {
		current.CEP = *in.CEP
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		match, err := tx.FindDuplicate(ctx, domain.Candidate{
			Name:  current.Name,
			CPF:   current.CPF,
			Phone: current.Phone,
		}, current.ID)
		if err != nil {
			return err
		}
		if match != nil {
			return &DuplicateError{Match: match}
		}

		return tx.UpdateClient(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &current.ID,
	})

	return current, nil
}
