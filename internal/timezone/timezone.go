package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today devolve a data local no formato usado nos agendamentos.
func Today(tz string) string {
	return NowIn(tz).Format("2006-01-02")
}

// DayStart devolve a meia-noite local do dia corrente como instante,
// para comparar com colunas timestamptz sem depender do fuso da
// sessão do banco.
func DayStart(tz string) time.Time {
	now := NowIn(tz)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// MonthStart devolve a meia-noite local do dia 1 do mês corrente.
func MonthStart(tz string) time.Time {
	now := NowIn(tz)
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
