package appointment

import (
	"context"
	"errors"

	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/appointment"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

// Compile-time check
var _ domain.Repository = (*memAppointmentRepository)(nil)

type memAppointmentRepository struct {
	serviceTypes map[uint]*models.ServiceType
	pets         map[uint]*models.Pet
	appointments []*models.Appointment
	histories    []*models.ServiceHistory
	cashEntries  []*models.CashEntry

	HasSlotConflictFunc   func(ctx context.Context, date, timeOfDay string, excludeID uint) (bool, error)
	CreateAppointmentFunc func(ctx context.Context, ap *models.Appointment) error
}

func newMemAppointmentRepository() *memAppointmentRepository {
	return &memAppointmentRepository{
		serviceTypes: map[uint]*models.ServiceType{},
		pets:         map[uint]*models.Pet{},
	}
}

func (m *memAppointmentRepository) GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error) {
	st, ok := m.serviceTypes[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return st, nil
}

func (m *memAppointmentRepository) GetPet(ctx context.Context, id uint) (*models.Pet, error) {
	pet, ok := m.pets[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return pet, nil
}

func (m *memAppointmentRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.CreateAppointmentFunc != nil {
		return m.CreateAppointmentFunc(ctx, ap)
	}

	ap.ID = uint(len(m.appointments) + 1)
	m.appointments = append(m.appointments, ap)
	return nil
}

func (m *memAppointmentRepository) HasSlotConflict(
	ctx context.Context,
	date string,
	timeOfDay string,
	excludeID uint,
) (bool, error) {

	if m.HasSlotConflictFunc != nil {
		return m.HasSlotConflictFunc(ctx, date, timeOfDay, excludeID)
	}

	for _, ap := range m.appointments {
		if excludeID > 0 && ap.ID == excludeID {
			continue
		}
		if ap.AppointmentDate == date && ap.AppointmentTime == timeOfDay {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAppointmentRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range m.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *memAppointmentRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i, existing := range m.appointments {
		if existing.ID == ap.ID {
			m.appointments[i] = ap
			return nil
		}
	}
	return errors.New("record not found")
}

func (m *memAppointmentRepository) CreateServiceHistory(ctx context.Context, h *models.ServiceHistory) error {
	h.ID = uint(len(m.histories) + 1)
	m.histories = append(m.histories, h)
	return nil
}

func (m *memAppointmentRepository) CreateCashEntry(ctx context.Context, e *models.CashEntry) error {
	e.ID = uint(len(m.cashEntries) + 1)
	m.cashEntries = append(m.cashEntries, e)
	return nil
}

func (m *memAppointmentRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return fn(m)
}
