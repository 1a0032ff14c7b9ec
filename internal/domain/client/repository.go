package client

import (
	"context"

	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

// Candidate carrega os campos comparados na detecção de duplicados.
type Candidate struct {
	Name  string
	CPF   string
	Phone string
}

// DuplicateMatch aponta o registro existente e qual campo colidiu.
type DuplicateMatch struct {
	Field  string         `json:"field"`
	Client *models.Client `json:"client"`
}

type Repository interface {
	// FindDuplicate busca o primeiro registro cujo nome, CPF ou
	// telefone normalizado é igual ao do candidato. excludeID > 0
	// tira o próprio registro do conjunto (fluxo de edição).
	FindDuplicate(
		ctx context.Context,
		cand Candidate,
		excludeID uint,
	) (*DuplicateMatch, error)

	// FindByField é a variação de campo único usada pela validação
	// incremental on-blur do front.
	FindByField(
		ctx context.Context,
		field string,
		value string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		cl *models.Client,
	) error

	// CreatePet participa da mesma transação do cadastro do tutor.
	CreatePet(
		ctx context.Context,
		pet *models.Pet,
	) error

	// FindPetByName procura pet do tutor com o mesmo nome,
	// ignorando caixa. Aviso ao usuário; nunca bloqueia cadastro.
	FindPetByName(
		ctx context.Context,
		clientID uint,
		name string,
	) (*models.Pet, error)

	UpdateClient(
		ctx context.Context,
		cl *models.Client,
	) error

	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
