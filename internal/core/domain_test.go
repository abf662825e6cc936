package core

import (
	"strings"
	"testing"
	"time"
)

func TestGastoValidate(t *testing.T) {
	good := Gasto{
		Descricao:  "Pizza",
		Valor:      Money{Cents: 3500},
		Categorias: "Alimentação",
		Pessoa:     PessoaDaniel,
		Mes:        6,
		Ano:        2024,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		mutate func(g Gasto) Gasto
		want   error
	}{
		{func(g Gasto) Gasto { g.Descricao = " "; return g }, ErrEmptyDescription},
		{func(g Gasto) Gasto { g.Valor = Money{}; return g }, ErrInvalidAmount},
		{func(g Gasto) Gasto { g.Categorias = " , "; return g }, ErrEmptyCategorias},
		{func(g Gasto) Gasto { g.Descricao = strings.Repeat("x", 201); return g }, ErrDescricaoLonga},
		{func(g Gasto) Gasto { g.Pessoa = "Alguem"; return g }, ErrInvalidPessoa},
		{func(g Gasto) Gasto { g.Mes = 0; return g }, ErrInvalidMonth},
		{func(g Gasto) Gasto { g.Mes = 13; return g }, ErrInvalidMonth},
		{func(g Gasto) Gasto { g.Ano = 0; return g }, ErrInvalidYear},
	}
	for i, tc := range bads {
		if err := tc.mutate(good).Validate(); err != tc.want {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestFrequenciaValidate(t *testing.T) {
	good := Frequencia{
		Data:      NewDate(2024, 6, 20),
		Horas:     4.5,
		Atividade: "Visita domiciliar",
		Usuario:   "Daniel",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Zero hours are a valid entry; only negatives fail.
	zero := good
	zero.Horas = 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero hours should validate, got %v", err)
	}

	bads := []struct {
		mutate func(f Frequencia) Frequencia
		want   error
	}{
		{func(f Frequencia) Frequencia { f.Data = Date{Time: time.Time{}}; return f }, ErrZeroDate},
		{func(f Frequencia) Frequencia { f.Horas = -1; return f }, ErrInvalidHoras},
		{func(f Frequencia) Frequencia { f.Horas = 24.5; return f }, ErrInvalidHoras},
		{func(f Frequencia) Frequencia { f.Atividade = ""; return f }, ErrEmptyAtividade},
		{func(f Frequencia) Frequencia { f.Usuario = " "; return f }, ErrEmptyUsuario},
	}
	for i, tc := range bads {
		if err := tc.mutate(good).Validate(); err != tc.want {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-20")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || d.MonthNum() != 6 || d.Day() != 20 {
		t.Fatalf("parsed %s", d.ISO())
	}
	if _, err := ParseDate("20/06/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestSplitCategorias(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"A,B", 2},
		{"A, B ,C", 3},
		{"A", 1},
		{"", 0},
		{" , ", 0},
	}
	for _, tc := range cases {
		if got := SplitCategorias(tc.in); len(got) != tc.want {
			t.Fatalf("SplitCategorias(%q) = %v, want %d labels", tc.in, got, tc.want)
		}
	}
}
