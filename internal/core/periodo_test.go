package core

import "testing"

func TestPeriodoFatura(t *testing.T) {
	cases := []struct {
		ano, mes    int
		inicio, fim Date
	}{
		{2024, 6, NewDate(2024, 6, 20), NewDate(2024, 7, 19)},
		{2024, 1, NewDate(2024, 1, 20), NewDate(2024, 2, 19)},
		{2024, 12, NewDate(2024, 12, 20), NewDate(2025, 1, 19)},
		{2023, 2, NewDate(2023, 2, 20), NewDate(2023, 3, 19)},
	}
	for i, tc := range cases {
		p, err := PeriodoFatura(tc.ano, tc.mes)
		if err != nil {
			t.Fatalf("case %d unexpected error: %v", i, err)
		}
		if !p.Inicio.Equal(tc.inicio.Time) {
			t.Fatalf("case %d inicio = %s, want %s", i, p.Inicio.ISO(), tc.inicio.ISO())
		}
		if !p.Fim.Equal(tc.fim.Time) {
			t.Fatalf("case %d fim = %s, want %s", i, p.Fim.ISO(), tc.fim.ISO())
		}
	}
}

func TestPeriodoFaturaAllMonths(t *testing.T) {
	// Day 19 exists in every month, so every window must be valid and
	// start exactly on day 20 of the reference month.
	for mes := 1; mes <= 12; mes++ {
		p, err := PeriodoFatura(2024, mes)
		if err != nil {
			t.Fatalf("mes %d unexpected error: %v", mes, err)
		}
		if p.Inicio.Day() != 20 || p.Inicio.MonthNum() != mes {
			t.Fatalf("mes %d inicio = %s", mes, p.Inicio.ISO())
		}
		if p.Fim.Day() != 19 {
			t.Fatalf("mes %d fim = %s", mes, p.Fim.ISO())
		}
		wantFimAno := 2024
		wantFimMes := mes + 1
		if mes == 12 {
			wantFimAno, wantFimMes = 2025, 1
		}
		if p.Fim.Year() != wantFimAno || p.Fim.MonthNum() != wantFimMes {
			t.Fatalf("mes %d fim = %s", mes, p.Fim.ISO())
		}
	}
}

func TestPeriodoFaturaInvalidMonth(t *testing.T) {
	for _, mes := range []int{0, 13, -1, 100} {
		if _, err := PeriodoFatura(2024, mes); err != ErrInvalidMonth {
			t.Fatalf("mes %d expected ErrInvalidMonth, got %v", mes, err)
		}
	}
}

func TestPeriodoContains(t *testing.T) {
	p, err := PeriodoFatura(2024, 6)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		d  Date
		in bool
	}{
		{NewDate(2024, 6, 20), true},  // first day
		{NewDate(2024, 7, 19), true},  // last day
		{NewDate(2024, 7, 1), true},
		{NewDate(2024, 6, 19), false}, // previous period
		{NewDate(2024, 7, 20), false}, // next period
	}
	for i, tc := range cases {
		if got := p.Contains(tc.d); got != tc.in {
			t.Fatalf("case %d Contains(%s) = %v, want %v", i, tc.d.ISO(), got, tc.in)
		}
	}
}
