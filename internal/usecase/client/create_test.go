package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

func TestCreateClient_Success(t *testing.T) {
	repo := newMemClientRepository()
	uc := NewCreateClient(repo, nil)

	created, err := uc.Execute(context.Background(), CreateClientInput{
		Name:  "Anderson Luiz Dias",
		CPF:   "034.400.159-80",
		Phone: "(11) 98765-4321",
		Email: "anderson@example.com",
		Pets: []PetInput{
			{Name: "Dora", Species: "cachorro", Breed: "SRD", Age: 3, Weight: 12.5},
			{Name: "Mel", Species: "gato"},
		},
	}, 1)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	// o CPF é guardado como digitado; só a coluna normalizada perde a máscara
	assert.Equal(t, "034.400.159-80", created.CPF)
	assert.Equal(t, "03440015980", created.CPFNorm)
	assert.Equal(t, "anderson luiz dias", created.NameNorm)

	require.Len(t, created.Pets, 2)
	assert.Equal(t, created.ID, created.Pets[0].ClientID)
	assert.Equal(t, "Dora", created.Pets[0].Name)
}

func TestCreateClient_DuplicateCPFUnmasked(t *testing.T) {
	repo := newMemClientRepository(&models.Client{
		Name:  "Anderson Luiz Dias",
		CPF:   "034.400.159-80",
		Phone: "(11) 98765-4321",
	})
	uc := NewCreateClient(repo, nil)

	// mesmo CPF sem máscara e nome diferente ainda é duplicado
	_, err := uc.Execute(context.Background(), CreateClientInput{
		Name:  "Outro Nome Qualquer",
		CPF:   "03440015980",
		Phone: "(21) 90000-0000",
	}, 1)

	require.Error(t, err)
	de, ok := AsDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, "cpf", de.Match.Field)
	assert.Equal(t, "Anderson Luiz Dias", de.Match.Client.Name)

	// nada foi inserido
	assert.Len(t, repo.clients, 1)
}

func TestCreateClient_DuplicateNameCaseInsensitive(t *testing.T) {
	repo := newMemClientRepository(&models.Client{
		Name:  "Anderson Luiz Dias",
		CPF:   "034.400.159-80",
		Phone: "(11) 98765-4321",
	})
	uc := NewCreateClient(repo, nil)

	_, err := uc.Execute(context.Background(), CreateClientInput{
		Name:  "ANDERSON LUIZ DIAS",
		CPF:   "111.444.777-35",
		Phone: "(21) 90000-0000",
	}, 1)

	require.Error(t, err)
	de, ok := AsDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, "name", de.Match.Field)
}

func TestCreateClient_DuplicatePhoneMaskVariants(t *testing.T) {
	repo := newMemClientRepository(&models.Client{
		Name:  "Anderson Luiz Dias",
		CPF:   "034.400.159-80",
		Phone: "(11) 98765-4321",
	})
	uc := NewCreateClient(repo, nil)

	_, err := uc.Execute(context.Background(), CreateClientInput{
		Name:  "Outro Nome Qualquer",
		CPF:   "111.444.777-35",
		Phone: "11987654321",
	}, 1)

	require.Error(t, err)
	de, ok := AsDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, "phone", de.Match.Field)
}

func TestUpdateClient_IgnoresOwnRecord(t *testing.T) {
	repo := newMemClientRepository(&models.Client{
		Name:  "Anderson Luiz Dias",
		CPF:   "034.400.159-80",
		Phone: "(11) 98765-4321",
	})
	uc := NewUpdateClient(repo, nil)

	current := repo.clients[0]
	email := "novo@example.com"

	// manter o próprio CPF não pode disparar o guard de duplicado
	updated, err := uc.Execute(context.Background(), current, UpdateClientInput{
		Email: &email,
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, "novo@example.com", updated.Email)
}

func TestUpdateClient_CollidesWithAnotherClient(t *testing.T) {
	repo := newMemClientRepository(
		&models.Client{
			Name:  "Anderson Luiz Dias",
			CPF:   "034.400.159-80",
			Phone: "(11) 98765-4321",
		},
		&models.Client{
			Name:  "Maria Souza Lima",
			CPF:   "111.444.777-35",
			Phone: "(21) 90000-0000",
		},
	)
	uc := NewUpdateClient(repo, nil)

	current := repo.clients[1]
	cpf := "03440015980"

	_, err := uc.Execute(context.Background(), current, UpdateClientInput{
		CPF: &cpf,
	}, 1)

	require.Error(t, err)
	de, ok := AsDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, "cpf", de.Match.Field)
	assert.Equal(t, uint(1), de.Match.Client.ID)
}
