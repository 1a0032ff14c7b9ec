package appointment

import "github.com/VidaPetServices01/petshop-manager/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "agendado"
	StatusInProgress Status = "em_andamento"
	StatusCompleted  Status = "concluido"
	StatusCancelled  Status = "cancelado"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanStart define se o atendimento pode ser iniciado
func CanStart(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se o atendimento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se o agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
