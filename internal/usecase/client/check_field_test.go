package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

func TestFindPetByName_CaseInsensitive(t *testing.T) {
	repo := newMemClientRepository()
	repo.pets = append(repo.pets, &models.Pet{ID: 1, ClientID: 7, Name: "Dora"})

	var checker PetNameChecker = repo

	// qualquer variação de caixa encontra o mesmo pet
	for _, name := range []string{"DORA", "dora", "Dora"} {
		pet, err := checker.FindPetByName(context.Background(), 7, name)
		require.NoError(t, err, "name %q", name)
		require.NotNil(t, pet, "name %q", name)
		assert.Equal(t, uint(1), pet.ID)
	}
}

func TestFindPetByName_ScopedToClient(t *testing.T) {
	repo := newMemClientRepository()
	repo.pets = append(repo.pets,
		&models.Pet{ID: 1, ClientID: 7, Name: "Dora"},
		&models.Pet{ID: 2, ClientID: 8, Name: "Mel"},
	)

	var checker PetNameChecker = repo

	// outro tutor pode ter pet com o mesmo nome
	pet, err := checker.FindPetByName(context.Background(), 8, "Dora")
	require.NoError(t, err)
	assert.Nil(t, pet)

	pet, err = checker.FindPetByName(context.Background(), 8, "mel")
	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, uint(2), pet.ID)
}
