package appointment

import (
	"context"

	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetServiceType(
		ctx context.Context,
		id uint,
	) (*models.ServiceType, error)

	GetPet(
		ctx context.Context,
		id uint,
	) (*models.Pet, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// HasSlotConflict compara (data, hora) byte a byte; agendamento
	// é tratado como ponto no tempo, sem noção de duração.
	HasSlotConflict(
		ctx context.Context,
		date string,
		timeOfDay string,
		excludeID uint,
	) (bool, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Completion side effects --------
	CreateServiceHistory(
		ctx context.Context,
		h *models.ServiceHistory,
	) error

	CreateCashEntry(
		ctx context.Context,
		e *models.CashEntry,
	) error

	// -------- Unit of work --------
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
