package appointment

import (
	"context"
	"time"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/appointment"
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID      uint
	PetID         uint
	ServiceTypeID uint

	Date string
	Time string

	Price          float64
	Transport      bool
	TransportPrice float64
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// NormalizeTime aceita HH:MM ou HH:MM:SS e devolve sempre HH:MM:SS,
// a forma comparada byte a byte no conflito de slot.
func NormalizeTime(t string) (string, error) {
	if parsed, err := time.Parse("15:04:05", t); err == nil {
		return parsed.Format("15:04:05"), nil
	}
	if parsed, err := time.Parse("15:04", t); err == nil {
		return parsed.Format("15:04:05"), nil
	}
	return "", httperr.ErrBusiness("invalid_time")
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
	actorID uint,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Data / hora
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	timeOfDay, err := NormalizeTime(in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Pet pertence ao cliente?
	// --------------------------------------------------
	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_not_found")
	}
	if pet.ClientID != in.ClientID {
		return nil, httperr.ErrBusiness("pet_not_owned_by_client")
	}

	// --------------------------------------------------
	// Serviço (cópia desnormalizada de nome e preço)
	// --------------------------------------------------
	st, err := uc.repo.GetServiceType(ctx, in.ServiceTypeID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_type_not_found")
	}
	if !st.Active {
		return nil, httperr.ErrBusiness("service_type_inactive")
	}

	price := in.Price
	if price <= 0 {
		price = st.BasePrice
	}

	// --------------------------------------------------
	// Conflito de slot + criação na mesma transação
	// --------------------------------------------------
	var created *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		conflict, err := tx.HasSlotConflict(ctx, in.Date, timeOfDay, 0)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("time_conflict")
		}

		ap := &models.Appointment{
			ClientID:        in.ClientID,
			PetID:           in.PetID,
			ServiceTypeID:   in.ServiceTypeID,
			ServiceName:     st.Name,
			Price:           price,
			AppointmentDate: in.Date,
			AppointmentTime: timeOfDay,
			Status:          string(domain.InitialStatus()),
			Transport:       in.Transport,
			TransportPrice:  in.TransportPrice,
			Notes:           in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
