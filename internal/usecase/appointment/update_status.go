package appointment

import (
	"context"
	"fmt"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/appointment"
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
	"github.com/VidaPetServices01/petshop-manager/internal/timezone"
)

type UpdateStatus struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// Execute aplica a transição pedida. Conclusão grava também o
// histórico de serviço e o lançamento de caixa, tudo ou nada.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	target string,
	actorID uint,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(target) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Transition(ap, domain.Status(target)); err != nil {
		return nil, err
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		if domain.Status(ap.Status) != domain.StatusCompleted {
			return nil
		}

		now := timezone.NowIn(uc.timezone)

		history := &models.ServiceHistory{
			AppointmentID: ap.ID,
			ClientID:      ap.ClientID,
			PetID:         ap.PetID,
			ServiceName:   ap.ServiceName,
			Price:         ap.Price,
			PerformedAt:   now,
			Notes:         ap.Notes,
		}
		if err := tx.CreateServiceHistory(ctx, history); err != nil {
			return err
		}

		amount := ap.Price
		if ap.Transport {
			amount += ap.TransportPrice
		}

		entry := &models.CashEntry{
			AppointmentID: &ap.ID,
			Description:   fmt.Sprintf("%s - agendamento #%d", ap.ServiceName, ap.ID),
			Amount:        amount,
			Type:          models.CashEntryIn,
			EntryDate:     now.Format("2006-01-02"),
		}
		return tx.CreateCashEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_" + target,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
