package core

// The billing window runs from day 20 of the reference month to day 19
// of the following month, inclusive on both ends.
const (
	diaInicioPeriodo = 20
	diaFimPeriodo    = 19
)

// Periodo is the derived billing window for a reference (ano, mes)
// pair. It is never persisted; it only scopes queries and labels
// responses.
type Periodo struct {
	Inicio Date
	Fim    Date
}

// PeriodoFatura computes the billing window for the given reference
// year and month. December rolls the end date into January of the next
// year. A month outside 1-12 is a caller contract violation.
func PeriodoFatura(ano, mes int) (Periodo, error) {
	if mes < 1 || mes > 12 {
		return Periodo{}, ErrInvalidMonth
	}
	fimAno, fimMes := ano, mes+1
	if mes == 12 {
		fimAno, fimMes = ano+1, 1
	}
	return Periodo{
		Inicio: NewDate(ano, mes, diaInicioPeriodo),
		Fim:    NewDate(fimAno, fimMes, diaFimPeriodo),
	}, nil
}

// Contains reports whether d falls inside the window, ends included.
func (p Periodo) Contains(d Date) bool {
	return !d.Before(p.Inicio.Time) && !d.After(p.Fim.Time)
}
