package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

func seedScheduled(repo *memAppointmentRepository) *models.Appointment {
	ap := &models.Appointment{
		ID:              1,
		ClientID:        1,
		PetID:           10,
		ServiceTypeID:   5,
		ServiceName:     "Banho e Tosa",
		Price:           80,
		AppointmentDate: "2026-09-01",
		AppointmentTime: "14:30:00",
		Status:          "agendado",
	}
	repo.appointments = append(repo.appointments, ap)
	return ap
}

func TestUpdateStatus_CompletionWritesHistoryAndCash(t *testing.T) {
	repo := newMemAppointmentRepository()
	seedScheduled(repo)
	uc := NewUpdateStatus(repo, nil, "America/Sao_Paulo")

	ap, err := uc.Execute(context.Background(), 1, "concluido", 1)
	require.NoError(t, err)
	assert.Equal(t, "concluido", ap.Status)

	require.Len(t, repo.histories, 1)
	h := repo.histories[0]
	assert.Equal(t, uint(1), h.AppointmentID)
	assert.Equal(t, "Banho e Tosa", h.ServiceName)
	assert.Equal(t, 80.0, h.Price)

	require.Len(t, repo.cashEntries, 1)
	e := repo.cashEntries[0]
	assert.Equal(t, models.CashEntryIn, e.Type)
	assert.Equal(t, 80.0, e.Amount)
	require.NotNil(t, e.AppointmentID)
	assert.Equal(t, uint(1), *e.AppointmentID)
}

func TestUpdateStatus_CompletionSumsTransport(t *testing.T) {
	repo := newMemAppointmentRepository()
	ap := seedScheduled(repo)
	ap.Transport = true
	ap.TransportPrice = 15

	uc := NewUpdateStatus(repo, nil, "America/Sao_Paulo")

	_, err := uc.Execute(context.Background(), 1, "concluido", 1)
	require.NoError(t, err)

	require.Len(t, repo.cashEntries, 1)
	assert.Equal(t, 95.0, repo.cashEntries[0].Amount)
}

func TestUpdateStatus_StartDoesNotTouchCash(t *testing.T) {
	repo := newMemAppointmentRepository()
	seedScheduled(repo)
	uc := NewUpdateStatus(repo, nil, "America/Sao_Paulo")

	ap, err := uc.Execute(context.Background(), 1, "em_andamento", 1)
	require.NoError(t, err)
	assert.Equal(t, "em_andamento", ap.Status)

	assert.Empty(t, repo.histories)
	assert.Empty(t, repo.cashEntries)
}

func TestUpdateStatus_TerminalStateRejected(t *testing.T) {
	repo := newMemAppointmentRepository()
	ap := seedScheduled(repo)
	ap.Status = "cancelado"

	uc := NewUpdateStatus(repo, nil, "America/Sao_Paulo")

	_, err := uc.Execute(context.Background(), 1, "em_andamento", 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := newMemAppointmentRepository()
	seedScheduled(repo)
	uc := NewUpdateStatus(repo, nil, "America/Sao_Paulo")

	_, err := uc.Execute(context.Background(), 1, "finalizado", 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := newMemAppointmentRepository()
	uc := NewUpdateStatus(repo, nil, "America/Sao_Paulo")

	_, err := uc.Execute(context.Background(), 99, "concluido", 1)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
