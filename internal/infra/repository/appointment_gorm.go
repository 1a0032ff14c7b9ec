package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/appointment"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServiceType(
	ctx context.Context,
	id uint,
) (*models.ServiceType, error) {

	var st models.ServiceType
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *AppointmentGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// HasSlotConflict: igualdade exata de (data, hora) sobre todos os
// agendamentos existentes da loja, inclusive cancelados, sem
// raciocínio de duração. O lock segura o slot até o commit da
// transação corrente.
func (r *AppointmentGormRepository) HasSlotConflict(
	ctx context.Context,
	date string,
	timeOfDay string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"appointment_date = ? AND appointment_time = ?",
			date, timeOfDay,
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pet").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Completion side effects
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateServiceHistory(
	ctx context.Context,
	h *models.ServiceHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *AppointmentGormRepository) CreateCashEntry(
	ctx context.Context,
	e *models.CashEntry,
) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
