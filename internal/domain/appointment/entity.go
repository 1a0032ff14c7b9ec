package appointment

import (
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Start(ap *models.Appointment) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

// Transition aplica a mudança pedida pelo PATCH de status.
func Transition(ap *models.Appointment, target Status) error {
	switch target {
	case StatusInProgress:
		return Start(ap)
	case StatusCompleted:
		return Complete(ap)
	case StatusCancelled:
		return Cancel(ap)
	default:
		return httperr.ErrBusiness("invalid_status")
	}
}
