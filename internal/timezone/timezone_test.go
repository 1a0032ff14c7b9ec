package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStart(t *testing.T) {
	start := DayStart("America/Sao_Paulo")

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 0, start.Second())
	assert.Equal(t, "America/Sao_Paulo", start.Location().String())

	// meia-noite local do dia corrente, nunca no futuro
	now := NowIn("America/Sao_Paulo")
	require.False(t, start.After(now))
	assert.Less(t, now.Sub(start), 24*time.Hour)
	assert.Equal(t, now.Format("2006-01-02"), start.Format("2006-01-02"))
}

func TestMonthStart(t *testing.T) {
	start := MonthStart("America/Sao_Paulo")

	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 0, start.Hour())

	now := NowIn("America/Sao_Paulo")
	require.False(t, start.After(now))
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, now.Year(), start.Year())
}

func TestDayStart_FallsBackToDefault(t *testing.T) {
	start := DayStart("Not/AZone")
	assert.Equal(t, DefaultTimezone, start.Location().String())
}
