package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/appointment"
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

func seedRepo() *memAppointmentRepository {
	repo := newMemAppointmentRepository()
	repo.pets[10] = &models.Pet{ID: 10, ClientID: 1, Name: "Dora"}
	repo.serviceTypes[5] = &models.ServiceType{
		ID:        5,
		Name:      "Banho e Tosa",
		BasePrice: 80,
		Active:    true,
	}
	return repo
}

func TestNormalizeTime(t *testing.T) {
	got, err := NormalizeTime("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30:00", got)

	got, err = NormalizeTime("14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "14:30:00", got)

	_, err = NormalizeTime("25:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	_, err = NormalizeTime("2h30")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	created, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:30",
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", created.AppointmentDate)
	assert.Equal(t, "14:30:00", created.AppointmentTime)
	assert.Equal(t, "agendado", created.Status)

	// sem preço informado, herda o preço base do serviço
	assert.Equal(t, 80.0, created.Price)
	assert.Equal(t, "Banho e Tosa", created.ServiceName)
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:30",
	}, 1)
	require.NoError(t, err)

	// mesmo slot, mesmo enviado como HH:MM:SS
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:30:00",
	}, 1)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Len(t, repo.appointments, 1)

	// um minuto depois é outro slot
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:31",
	}, 1)
	require.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestCreateAppointment_CancelledStillHoldsSlot(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	first, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:30",
	}, 1)
	require.NoError(t, err)

	// cancelar não apaga o registro, e o slot segue ocupado
	first.Status = string(domain.StatusCancelled)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:30",
	}, 1)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointment_PetNotOwnedByClient(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      2,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:30",
	}, 1)

	assert.True(t, httperr.IsBusiness(err, "pet_not_owned_by_client"))
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointment_InactiveServiceType(t *testing.T) {
	repo := seedRepo()
	repo.serviceTypes[5].Active = false
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "2026-09-01",
		Time:          "14:30",
	}, 1)

	assert.True(t, httperr.IsBusiness(err, "service_type_inactive"))
}

func TestCreateAppointment_InvalidDate(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:      1,
		PetID:         10,
		ServiceTypeID: 5,
		Date:          "01/09/2026",
		Time:          "14:30",
	}, 1)

	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
