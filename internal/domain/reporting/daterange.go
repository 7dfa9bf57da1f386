package reporting

import (
	"fmt"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// Range filtro temporal de los tableros.
type Range string

const (
	RangeThisWeek   Range = "this_week"
	RangeLastWeek   Range = "last_week"
	RangeLast4Weeks Range = "last_4_weeks"
	RangeAll        Range = "all"
)

// ParseRange interpreta el parámetro de consulta; vacío equivale a "all".
func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case "":
		return RangeAll, nil
	case RangeThisWeek, RangeLastWeek, RangeLast4Weeks, RangeAll:
		return r, nil
	default:
		return "", fmt.Errorf("%w: rango %q", domain.ErrInvalidInput, s)
	}
}

// startOfWeek lunes 00:00 de la semana de t, en la zona de t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// Bounds intervalo [desde, hasta) del rango respecto de now. ok=false para RangeAll.
func (r Range) Bounds(now time.Time) (from, to time.Time, ok bool) {
	week := startOfWeek(now)
	switch r {
	case RangeThisWeek:
		return week, week.AddDate(0, 0, 7), true
	case RangeLastWeek:
		return week.AddDate(0, 0, -7), week, true
	case RangeLast4Weeks:
		return week.AddDate(0, 0, -21), week.AddDate(0, 0, 7), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// FilterByRegistration trabajadores registrados dentro del rango. Los que no tienen
// fecha de registro solo aparecen en RangeAll.
func FilterByRegistration(workers []entity.Trabajador, r Range, now time.Time) []entity.Trabajador {
	from, to, ok := r.Bounds(now)
	if !ok {
		return workers
	}
	var out []entity.Trabajador
	for _, t := range workers {
		if t.FechaRegistro.IsZero() {
			continue
		}
		reg := t.FechaRegistro.In(now.Location())
		if !reg.Before(from) && reg.Before(to) {
			out = append(out, t)
		}
	}
	return out
}
