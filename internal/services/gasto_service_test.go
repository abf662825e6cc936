package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fatura/internal/core"
	"fatura/internal/storage"
)

func newTestRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "fatura.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func novoGasto(descricao string, cents int64, pessoa core.Pessoa, ano, mes int) core.Gasto {
	return core.Gasto{
		Descricao:  descricao,
		Valor:      core.Money{Cents: cents},
		Categorias: "Alimentação",
		Pessoa:     pessoa,
		Mes:        mes,
		Ano:        ano,
	}
}

func TestGastoServiceLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewGastoService(repo, nil, core.PessoaDouglas)
	ctx := context.Background()

	created, err := svc.Create(ctx, novoGasto("Pizza", 3500, core.PessoaDaniel, 2024, 6))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CriadoEm.IsZero())

	gastos, err := svc.ListBucket(ctx, 2024, 6)
	require.NoError(t, err)
	require.Len(t, gastos, 1)
	require.Equal(t, "Pizza", gastos[0].Descricao)
	require.Equal(t, int64(3500), gastos[0].Valor.Cents)

	created.Descricao = "Pizza grande"
	created.Valor = core.Money{Cents: 4200}
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	require.Equal(t, "Pizza grande", updated.Descricao)
	require.Equal(t, int64(4200), updated.Valor.Cents)

	require.NoError(t, svc.Delete(ctx, created.ID))

	gastos, err = svc.ListBucket(ctx, 2024, 6)
	require.NoError(t, err)
	require.Empty(t, gastos)

	// Deleting again is a no-op.
	require.NoError(t, svc.Delete(ctx, created.ID))
}

func TestGastoServiceCreateRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewGastoService(repo, nil, core.PessoaDouglas)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*core.Gasto)
		wantErr error
	}{
		{"empty description", func(g *core.Gasto) { g.Descricao = "" }, core.ErrEmptyDescription},
		{"zero amount", func(g *core.Gasto) { g.Valor = core.Money{} }, core.ErrInvalidAmount},
		{"negative amount", func(g *core.Gasto) { g.Valor = core.Money{Cents: -100} }, core.ErrInvalidAmount},
		{"unknown payer", func(g *core.Gasto) { g.Pessoa = "Maria" }, core.ErrInvalidPessoa},
		{"month zero", func(g *core.Gasto) { g.Mes = 0 }, core.ErrInvalidMonth},
		{"month thirteen", func(g *core.Gasto) { g.Mes = 13 }, core.ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := novoGasto("Mercado", 1000, core.PessoaCasa, 2024, 6)
			tt.mutate(&g)
			_, err := svc.Create(context.Background(), g)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	gastos, err := svc.ListBucket(ctx, 2024, 6)
	require.NoError(t, err)
	require.Empty(t, gastos)
}

func TestGastoServiceResumo(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewGastoService(repo, nil, core.PessoaDouglas)
	ctx := context.Background()

	_, err := svc.Create(ctx, novoGasto("Pizza", 3500, core.PessoaDaniel, 2024, 6))
	require.NoError(t, err)
	_, err = svc.Create(ctx, novoGasto("Luz", 15000, core.PessoaCasa, 2024, 6))
	require.NoError(t, err)
	_, err = svc.Create(ctx, novoGasto("Uber", 2000, core.PessoaDouglas, 2024, 6))
	require.NoError(t, err)
	// Different bucket, must not leak into the summary.
	_, err = svc.Create(ctx, novoGasto("Aluguel", 90000, core.PessoaCasa, 2024, 7))
	require.NoError(t, err)

	resumo, err := svc.Resumo(ctx, 2024, 6)
	require.NoError(t, err)

	require.Equal(t, "2024-06-20", resumo.Periodo.Inicio.ISO())
	require.Equal(t, "2024-07-19", resumo.Periodo.Fim.ISO())

	require.Equal(t, int64(20500), resumo.Resumo.TotalGeral.Cents)
	require.Equal(t, int64(3500), resumo.Resumo.PorPessoa[core.PessoaDaniel].Cents)
	require.Equal(t, int64(15000), resumo.Resumo.PorPessoa[core.PessoaCasa].Cents)
	require.Equal(t, int64(2000), resumo.Resumo.PorPessoa[core.PessoaDouglas].Cents)

	// Settlement excludes the configured payer's share.
	require.Equal(t, int64(18500), resumo.FaturaFinal.Cents)
}

func TestGastoServiceResumoEmptyBucket(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewGastoService(repo, nil, core.PessoaDouglas)

	resumo, err := svc.Resumo(context.Background(), 2030, 1)
	require.NoError(t, err)
	require.Zero(t, resumo.Resumo.TotalGeral.Cents)
	require.Zero(t, resumo.FaturaFinal.Cents)
	require.Empty(t, resumo.Resumo.PorPessoa)
	require.Empty(t, resumo.Resumo.PorCategoria)
}

func TestGastoServiceResumoDecemberRollover(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewGastoService(repo, nil, core.PessoaDouglas)

	resumo, err := svc.Resumo(context.Background(), 2024, 12)
	require.NoError(t, err)
	require.Equal(t, "2024-12-20", resumo.Periodo.Inicio.ISO())
	require.Equal(t, "2025-01-19", resumo.Periodo.Fim.ISO())
}

func TestGastoServiceListBucketInvalidMonth(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewGastoService(repo, nil, core.PessoaDouglas)

	_, err := svc.ListBucket(context.Background(), 2024, 0)
	require.ErrorIs(t, err, core.ErrInvalidMonth)

	_, err = svc.Resumo(context.Background(), 2024, 13)
	require.ErrorIs(t, err, core.ErrInvalidMonth)
}
