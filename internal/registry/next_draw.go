package registry

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultDrawTime = "20:00"

var weekdays = map[string]time.Weekday{
	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terça":   time.Tuesday,
	"terca":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sábado":  time.Saturday,
	"sabado":  time.Saturday,
}

// Location retorna o fuso horário da loteria, ou UTC quando não informado
func (e Entry) Location() (*time.Location, error) {
	if e.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "fuso horário inválido para %s", e.Slug)
	}
	return loc, nil
}

// NextDraw calcula o próximo sorteio estritamente após now, no fuso da loteria.
// Sem dias de sorteio conhecidos, considera o dia seguinte no horário configurado.
func (e Entry) NextDraw(now time.Time) (time.Time, error) {
	loc, err := e.Location()
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, err := parseClock(e.DrawTime)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "horário de sorteio inválido para %s", e.Slug)
	}

	days := make(map[time.Weekday]bool, len(e.DrawDays))
	for _, d := range e.DrawDays {
		if wd, ok := weekdays[strings.ToLower(strings.TrimSpace(d))]; ok {
			days[wd] = true
		}
	}

	local := now.In(loc)
	if len(days) == 0 {
		next := local.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), hour, minute, 0, 0, loc), nil
	}

	for offset := 0; offset <= 7; offset++ {
		day := local.AddDate(0, 0, offset)
		candidate := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
		if days[candidate.Weekday()] && candidate.After(local) {
			return candidate, nil
		}
	}

	// inalcançável com ao menos um dia válido
	return time.Time{}, errors.Errorf("nenhum sorteio encontrado para %s", e.Slug)
}

func parseClock(value string) (int, int, error) {
	if value == "" {
		value = defaultDrawTime
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("formato esperado HH:MM, recebido %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.Errorf("hora inválida %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.Errorf("minuto inválido %q", parts[1])
	}

	return hour, minute, nil
}
