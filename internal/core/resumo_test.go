package core

import "testing"

func gasto(pessoa Pessoa, categorias string, cents int64) Gasto {
	return Gasto{
		Descricao:  "x",
		Valor:      Money{Cents: cents},
		Categorias: categorias,
		Pessoa:     pessoa,
		Mes:        6,
		Ano:        2024,
	}
}

func TestResumoGastosEmpty(t *testing.T) {
	r := ResumoGastos(nil)
	if r.TotalGeral.Cents != 0 {
		t.Fatalf("expected zero total, got %d", r.TotalGeral.Cents)
	}
	if len(r.PorPessoa) != 0 || len(r.PorCategoria) != 0 {
		t.Fatalf("expected empty maps, got %v / %v", r.PorPessoa, r.PorCategoria)
	}
}

func TestResumoGastosPorPessoaSumsToTotal(t *testing.T) {
	gastos := []Gasto{
		gasto(PessoaDaniel, "Alimentação", 3500),
		gasto(PessoaDouglas, "Transporte", 1250),
		gasto(PessoaCasa, "Contas,Internet", 9900),
		gasto(PessoaDaniel, "Lazer", 600),
	}
	r := ResumoGastos(gastos)

	var soma int64
	for _, v := range r.PorPessoa {
		soma += v.Cents
	}
	if soma != r.TotalGeral.Cents {
		t.Fatalf("sum of PorPessoa = %d, TotalGeral = %d", soma, r.TotalGeral.Cents)
	}
	if r.TotalGeral.Cents != 15250 {
		t.Fatalf("TotalGeral = %d, want 15250", r.TotalGeral.Cents)
	}
	if r.PorPessoa[PessoaDaniel].Cents != 4100 {
		t.Fatalf("Daniel = %d, want 4100", r.PorPessoa[PessoaDaniel].Cents)
	}
}

func TestResumoGastosMultiCategoria(t *testing.T) {
	// A two-category record contributes its full amount to each label
	// but only once to the grand total.
	r := ResumoGastos([]Gasto{gasto(PessoaDaniel, "A,B", 1000)})

	if r.PorCategoria["A"].Cents != 1000 {
		t.Fatalf("A = %d, want 1000", r.PorCategoria["A"].Cents)
	}
	if r.PorCategoria["B"].Cents != 1000 {
		t.Fatalf("B = %d, want 1000", r.PorCategoria["B"].Cents)
	}
	if r.TotalGeral.Cents != 1000 {
		t.Fatalf("TotalGeral = %d, want 1000", r.TotalGeral.Cents)
	}
}

func TestResumoGastosTrimsLabels(t *testing.T) {
	r := ResumoGastos([]Gasto{gasto(PessoaCasa, " Mercado , Limpeza ", 500)})
	if r.PorCategoria["Mercado"].Cents != 500 || r.PorCategoria["Limpeza"].Cents != 500 {
		t.Fatalf("labels not trimmed: %v", r.PorCategoria)
	}
}

func TestFaturaFinal(t *testing.T) {
	porPessoa := map[Pessoa]Money{
		PessoaDaniel:  {Cents: 1000},
		PessoaDouglas: {Cents: 2000},
		PessoaCasa:    {Cents: 500},
	}
	if got := FaturaFinal(porPessoa, PessoaDouglas); got.Cents != 1500 {
		t.Fatalf("FaturaFinal = %d, want 1500", got.Cents)
	}
	// Unknown excluded payer subtracts nothing.
	if got := FaturaFinal(porPessoa, Pessoa("Ninguem")); got.Cents != 3500 {
		t.Fatalf("FaturaFinal = %d, want 3500", got.Cents)
	}
}

func TestFaturaFinalNegative(t *testing.T) {
	porPessoa := map[Pessoa]Money{
		PessoaDaniel:  {Cents: 100},
		PessoaDouglas: {Cents: 5000},
	}
	// The excluded share exceeds everyone else's combined total; the
	// negative result is valid output.
	if got := FaturaFinal(porPessoa, PessoaDouglas); got.Cents != 100 {
		t.Fatalf("FaturaFinal = %d, want 100", got.Cents)
	}
	porPessoa[PessoaDouglas] = Money{Cents: 5000}
	porPessoa[PessoaDaniel] = Money{Cents: -100}
	if got := FaturaFinal(porPessoa, PessoaDouglas); got.Cents != -100 {
		t.Fatalf("FaturaFinal = %d, want -100", got.Cents)
	}
}
