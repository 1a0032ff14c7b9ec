package client

import (
	"context"

	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

// DuplicateChecker é o recorte do repositório usado pela validação
// incremental de campo único.
type DuplicateChecker interface {
	FindByField(
		ctx context.Context,
		field string,
		value string,
	) (*models.Client, error)
}

// PetNameChecker é o recorte usado pelo aviso de nome de pet
// repetido dentro do mesmo tutor.
type PetNameChecker interface {
	FindPetByName(
		ctx context.Context,
		clientID uint,
		name string,
	) (*models.Pet, error)
}
