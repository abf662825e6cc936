package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fatura/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fatura_test.db")
	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestGastoCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateGasto(ctx, core.Gasto{
		Descricao:  "Pizza",
		Valor:      core.Money{Cents: 3500},
		Categorias: "Alimentação",
		Pessoa:     core.PessoaDaniel,
		Mes:        6,
		Ano:        2024,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CriadoEm.IsZero())

	got, err := repo.GetGasto(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Pizza", got.Descricao)
	require.Equal(t, int64(3500), got.Valor.Cents)
	require.Equal(t, core.PessoaDaniel, got.Pessoa)

	got.Descricao = "Pizza grande"
	got.Valor = core.Money{Cents: 4200}
	updated, err := repo.UpdateGasto(ctx, got)
	require.NoError(t, err)
	require.Equal(t, "Pizza grande", updated.Descricao)
	require.Equal(t, int64(4200), updated.Valor.Cents)
	// Creation timestamp is immutable across updates.
	require.Equal(t, created.CriadoEm.Unix(), updated.CriadoEm.Unix())

	require.NoError(t, repo.DeleteGasto(ctx, created.ID))
	_, err = repo.GetGasto(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting again is not an error.
	require.NoError(t, repo.DeleteGasto(ctx, created.ID))
}

func TestGastoListBucketAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, g := range []core.Gasto{
		{Descricao: "Mercado", Valor: core.Money{Cents: 1000}, Categorias: "Alimentação", Pessoa: core.PessoaCasa, Mes: 6, Ano: 2024},
		{Descricao: "Uber", Valor: core.Money{Cents: 2500}, Categorias: "Transporte", Pessoa: core.PessoaDouglas, Mes: 6, Ano: 2024},
		{Descricao: "Outro mês", Valor: core.Money{Cents: 9999}, Categorias: "Lazer", Pessoa: core.PessoaDaniel, Mes: 7, Ano: 2024},
	} {
		_, err := repo.CreateGasto(ctx, g)
		require.NoError(t, err)
	}

	gastos, err := repo.ListGastos(ctx, 2024, 6)
	require.NoError(t, err)
	require.Len(t, gastos, 2)
	// Newest first.
	require.Equal(t, "Uber", gastos[0].Descricao)
	require.Equal(t, "Mercado", gastos[1].Descricao)

	empty, err := repo.ListGastos(ctx, 2030, 1)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestGastoUpdateMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.UpdateGasto(context.Background(), core.Gasto{
		ID:         12345,
		Descricao:  "x",
		Valor:      core.Money{Cents: 100},
		Categorias: "A",
		Pessoa:     core.PessoaDaniel,
		Mes:        1,
		Ano:        2024,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFrequenciaCRUDAndPeriodFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mk := func(data string, horas float64, usuario string) core.Frequencia {
		d, err := core.ParseDate(data)
		require.NoError(t, err)
		return core.Frequencia{
			Data:      d,
			Horas:     horas,
			Atividade: "Visita domiciliar",
			Usuario:   usuario,
			Ano:       d.Year(),
			Mes:       d.MonthNum(),
		}
	}

	// 2024-06-19 belongs to the previous billing window, 2024-07-19 is
	// the last day of the (2024, 6) window.
	for _, f := range []core.Frequencia{
		mk("2024-06-19", 8, "Daniel"),
		mk("2024-06-20", 4.5, "Daniel"),
		mk("2024-07-19", 2, "Daniel"),
		mk("2024-07-01", 6, "Outra"),
	} {
		_, err := repo.CreateFrequencia(ctx, f)
		require.NoError(t, err)
	}

	p, err := core.PeriodoFatura(2024, 6)
	require.NoError(t, err)

	list, err := repo.ListFrequencias(ctx, p, "Daniel")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Date ascending.
	require.Equal(t, "2024-06-20", list[0].Data.ISO())
	require.Equal(t, "2024-07-19", list[1].Data.ISO())
	require.Equal(t, 4.5, list[0].Horas)

	got, err := repo.GetFrequencia(ctx, list[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Visita domiciliar", got.Atividade)
	require.Empty(t, got.Observacao)

	got.Observacao = "meio período"
	got.Horas = 3
	updated, err := repo.UpdateFrequencia(ctx, got)
	require.NoError(t, err)
	require.Equal(t, "meio período", updated.Observacao)
	require.Equal(t, 3.0, updated.Horas)

	require.NoError(t, repo.DeleteFrequencia(ctx, got.ID))
	_, err = repo.GetFrequencia(ctx, got.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, repo.DeleteFrequencia(ctx, got.ID))
}

func TestAuditAppendAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendAudit(ctx, AuditEntry{
		Evento:     "created",
		Colecao:    "gastos",
		RegistroID: 1,
		Payload:    `{"descricao":"Pizza"}`,
	}))
	require.NoError(t, repo.AppendAudit(ctx, AuditEntry{
		Evento:     "deleted",
		Colecao:    "gastos",
		RegistroID: 1,
	}))

	entries, err := repo.ListAudit(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	require.Equal(t, "deleted", entries[0].Evento)
	require.Equal(t, "created", entries[1].Evento)
	require.Equal(t, `{"descricao":"Pizza"}`, entries[1].Payload)
}
