package client

import (
	"context"
	"errors"
	"strings"

	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/client"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
	"github.com/VidaPetServices01/petshop-manager/internal/normalize"
)

// Compile-time check
var _ domain.Repository = (*memClientRepository)(nil)

// memClientRepository guarda clientes em memória aplicando as mesmas
// regras de normalização do repositório real.
type memClientRepository struct {
	clients []*models.Client
	pets    []*models.Pet
	nextID  uint

	FindDuplicateFunc func(ctx context.Context, cand domain.Candidate, excludeID uint) (*domain.DuplicateMatch, error)
	CreateClientFunc  func(ctx context.Context, cl *models.Client) error
	CreatePetFunc     func(ctx context.Context, pet *models.Pet) error
}

func newMemClientRepository(seed ...*models.Client) *memClientRepository {
	repo := &memClientRepository{nextID: 1}
	for _, cl := range seed {
		cl.ID = repo.nextID
		repo.nextID++
		cl.NameNorm = normalize.Name(cl.Name)
		cl.CPFNorm = normalize.Digits(cl.CPF)
		cl.PhoneNorm = normalize.Digits(cl.Phone)
		repo.clients = append(repo.clients, cl)
	}
	return repo
}

func (m *memClientRepository) FindDuplicate(
	ctx context.Context,
	cand domain.Candidate,
	excludeID uint,
) (*domain.DuplicateMatch, error) {

	if m.FindDuplicateFunc != nil {
		return m.FindDuplicateFunc(ctx, cand, excludeID)
	}

	nameNorm := normalize.Name(cand.Name)
	cpfNorm := normalize.Digits(cand.CPF)
	phoneNorm := normalize.Digits(cand.Phone)

	for _, cl := range m.clients {
		if excludeID > 0 && cl.ID == excludeID {
			continue
		}
		switch {
		case nameNorm != "" && cl.NameNorm == nameNorm:
			return &domain.DuplicateMatch{Field: "name", Client: cl}, nil
		case cpfNorm != "" && cl.CPFNorm == cpfNorm:
			return &domain.DuplicateMatch{Field: "cpf", Client: cl}, nil
		case phoneNorm != "" && cl.PhoneNorm == phoneNorm:
			return &domain.DuplicateMatch{Field: "phone", Client: cl}, nil
		}
	}
	return nil, nil
}

func (m *memClientRepository) FindByField(
	ctx context.Context,
	field string,
	value string,
) (*models.Client, error) {

	norm := normalize.Field(field, value)
	if norm == "" {
		return nil, nil
	}

	for _, cl := range m.clients {
		switch field {
		case "name":
			if cl.NameNorm == norm {
				return cl, nil
			}
		case "cpf":
			if cl.CPFNorm == norm {
				return cl, nil
			}
		case "phone":
			if cl.PhoneNorm == norm {
				return cl, nil
			}
		}
	}
	return nil, nil
}

func (m *memClientRepository) CreateClient(ctx context.Context, cl *models.Client) error {
	if m.CreateClientFunc != nil {
		return m.CreateClientFunc(ctx, cl)
	}

	cl.ID = m.nextID
	m.nextID++
	cl.NameNorm = normalize.Name(cl.Name)
	cl.CPFNorm = normalize.Digits(cl.CPF)
	cl.PhoneNorm = normalize.Digits(cl.Phone)
	m.clients = append(m.clients, cl)
	return nil
}

func (m *memClientRepository) CreatePet(ctx context.Context, pet *models.Pet) error {
	if m.CreatePetFunc != nil {
		return m.CreatePetFunc(ctx, pet)
	}

	pet.ID = uint(len(m.pets) + 1)
	m.pets = append(m.pets, pet)
	return nil
}

func (m *memClientRepository) FindPetByName(
	ctx context.Context,
	clientID uint,
	name string,
) (*models.Pet, error) {

	for _, pet := range m.pets {
		if pet.ClientID == clientID && strings.EqualFold(pet.Name, name) {
			return pet, nil
		}
	}
	return nil, nil
}

func (m *memClientRepository) UpdateClient(ctx context.Context, cl *models.Client) error {
	cl.NameNorm = normalize.Name(cl.Name)
	cl.CPFNorm = normalize.Digits(cl.CPF)
	cl.PhoneNorm = normalize.Digits(cl.Phone)

	for i, existing := range m.clients {
		if existing.ID == cl.ID {
			m.clients[i] = cl
			return nil
		}
	}
	return errors.New("client not found")
}

func (m *memClientRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return fn(m)
}
