package client

import (
	"context"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/client"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PetInput struct {
	Name         string
	Species      string
	Breed        string
	Age          int
	Weight       float64
	Observations string
}

type CreateClientInput struct {
	Name    string
	CPF     string
	Phone   string
	Email   string
	Address string
	City    string
	State   string
	CEP     string

	Pets []PetInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Cadastro do tutor e dos pets iniciais numa única transação:
// o pré-check de duplicado e o insert enxergam o mesmo snapshot,
// e o índice único nas colunas normalizadas cobre a corrida
// entre requisições concorrentes.
func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
	actorID uint,
) (*models.Client, error) {

	var created *models.Client

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		match, err := tx.FindDuplicate(ctx, domain.Candidate{
			Name:  in.Name,
			CPF:   in.CPF,
			Phone: in.Phone,
		}, 0)
		if err != nil {
			return err
		}
		if match != nil {
			return &DuplicateError{Match: match}
		}

		cl := &models.Client{
			Name:    in.Name,
			CPF:     in.CPF,
			Phone:   in.Phone,
			Email:   in.Email,
			Address: in.Address,
			City:    in.City,
			State:   in.State,
			CEP:     in.CEP,
		}

		if err := tx.CreateClient(ctx, cl); err != nil {
			return err
		}

		for _, p := range in.Pets {
			pet := &models.Pet{
				ClientID:     cl.ID,
				Name:         p.Name,
				Species:      p.Species,
				Breed:        p.Breed,
				Age:          p.Age,
				Weight:       p.Weight,
				Observations: p.Observations,
			}
			if err := tx.CreatePet(ctx, pet); err != nil {
				return err
			}
			cl.Pets = append(cl.Pets, *pet)
		}

		created = cl
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &created.ID,
	})

	return created, nil
}
