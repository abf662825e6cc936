package core

// Resumo is the derived statistics view for one billing bucket of
// expenses. It is recomputed on every read and never stored.
type Resumo struct {
	PorPessoa    map[Pessoa]Money
	PorCategoria map[string]Money
	TotalGeral   Money
}

// ResumoGastos folds a list of expenses into per-person and
// per-category totals plus a grand total.
//
// A record with several category labels contributes its full amount to
// every label but only once to the grand total: the per-category view
// intentionally double-counts for visibility, it is not an accounting
// breakdown. An empty input yields zero totals and empty maps.
func ResumoGastos(gastos []Gasto) Resumo {
	r := Resumo{
		PorPessoa:    make(map[Pessoa]Money),
		PorCategoria: make(map[string]Money),
	}
	for _, g := range gastos {
		r.PorPessoa[g.Pessoa] = r.PorPessoa[g.Pessoa].Add(g.Valor)
		for _, label := range SplitCategorias(g.Categorias) {
			r.PorCategoria[label] = r.PorCategoria[label].Add(g.Valor)
		}
		r.TotalGeral = r.TotalGeral.Add(g.Valor)
	}
	return r
}

// FaturaFinal derives the settlement amount: the grand total minus the
// excluded payer's share. The excluded payer settles their own expenses
// directly, so only the remainder goes onto the shared bill. The result
// may be negative when the excluded share exceeds everyone else's
// combined total; that is valid output, not an error.
func FaturaFinal(porPessoa map[Pessoa]Money, excluida Pessoa) Money {
	var total Money
	for _, v := range porPessoa {
		total = total.Add(v)
	}
	return total.Sub(porPessoa[excluida])
}
