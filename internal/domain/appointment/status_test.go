package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

func TestTransition_HappyPath(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	assert.NoError(t, Transition(ap, StatusInProgress))
	assert.Equal(t, string(StatusInProgress), ap.Status)

	assert.NoError(t, Transition(ap, StatusCompleted))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestTransition_CompleteDirectly(t *testing.T) {
	// atendimento concluído sem passar por em_andamento
	ap := &models.Appointment{Status: string(StatusScheduled)}
	assert.NoError(t, Transition(ap, StatusCompleted))
}

func TestTransition_CancelFromInProgress(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusInProgress)}
	assert.NoError(t, Transition(ap, StatusCancelled))
	assert.Equal(t, string(StatusCancelled), ap.Status)
}

func TestTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		for _, target := range []Status{StatusInProgress, StatusCompleted, StatusCancelled} {
			ap := &models.Appointment{Status: string(terminal)}
			err := Transition(ap, target)
			assert.Error(t, err, "from %s to %s", terminal, target)
			assert.Equal(t, string(terminal), ap.Status)
		}
	}
}

func TestTransition_BackToScheduledRejected(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusInProgress)}
	assert.Error(t, Transition(ap, StatusScheduled))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("agendado"))
	assert.True(t, IsValidStatus("em_andamento"))
	assert.True(t, IsValidStatus("concluido"))
	assert.True(t, IsValidStatus("cancelado"))
	assert.False(t, IsValidStatus("finalizado"))
	assert.False(t, IsValidStatus(""))
}
