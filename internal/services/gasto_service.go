// Package services orchestrates record operations across SQLite and
// AMQP.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fatura/internal/amqp"
	"fatura/internal/core"
	"fatura/internal/storage"
)

// GastoService handles expense writes, bucket listings and period
// summaries.
type GastoService struct {
	store         storage.GastoStore
	amqpClient    *amqp.Client
	pessoaAbatida core.Pessoa
}

func NewGastoService(store storage.GastoStore, amqpClient *amqp.Client, pessoaAbatida core.Pessoa) *GastoService {
	return &GastoService{
		store:         store,
		amqpClient:    amqpClient,
		pessoaAbatida: pessoaAbatida,
	}
}

// ResumoFatura is the aggregated view of one billing bucket.
type ResumoFatura struct {
	Periodo       core.Periodo
	Resumo        core.Resumo
	PessoaAbatida core.Pessoa
	FaturaFinal   core.Money
}

// Create validates and saves a new expense, then publishes a record
// event. Publishing is best effort; the write already succeeded.
func (s *GastoService) Create(ctx context.Context, g core.Gasto) (core.Gasto, error) {
	if err := g.Validate(); err != nil {
		return core.Gasto{}, err
	}

	saved, err := s.store.CreateGasto(ctx, g)
	if err != nil {
		return core.Gasto{}, fmt.Errorf("save gasto: %w", err)
	}

	s.publishEvent(ctx, amqp.EventCreated, amqp.ColecaoGastos, saved.ID, gastoPayload(saved))

	return saved, nil
}

// Get returns one expense by id.
func (s *GastoService) Get(ctx context.Context, id int64) (core.Gasto, error) {
	return s.store.GetGasto(ctx, id)
}

// Update replaces every mutable field of an existing expense.
func (s *GastoService) Update(ctx context.Context, g core.Gasto) (core.Gasto, error) {
	if err := g.Validate(); err != nil {
		return core.Gasto{}, err
	}

	saved, err := s.store.UpdateGasto(ctx, g)
	if err != nil {
		return core.Gasto{}, err
	}

	s.publishEvent(ctx, amqp.EventUpdated, amqp.ColecaoGastos, saved.ID, gastoPayload(saved))

	return saved, nil
}

// Delete removes an expense. Deleting an id that no longer exists is
// not an error.
func (s *GastoService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteGasto(ctx, id); err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}

	s.publishEvent(ctx, amqp.EventDeleted, amqp.ColecaoGastos, id, nil)

	return nil
}

// ListBucket returns every expense of the (ano, mes) bucket, newest
// first.
func (s *GastoService) ListBucket(ctx context.Context, ano, mes int) ([]core.Gasto, error) {
	if mes < 1 || mes > 12 {
		return nil, core.ErrInvalidMonth
	}
	if ano <= 0 {
		return nil, core.ErrInvalidYear
	}
	return s.store.ListGastos(ctx, ano, mes)
}

// Resumo aggregates the (ano, mes) bucket by payer and category and
// computes the settlement amount.
func (s *GastoService) Resumo(ctx context.Context, ano, mes int) (ResumoFatura, error) {
	periodo, err := core.PeriodoFatura(ano, mes)
	if err != nil {
		return ResumoFatura{}, err
	}

	gastos, err := s.store.ListGastos(ctx, ano, mes)
	if err != nil {
		return ResumoFatura{}, fmt.Errorf("list gastos: %w", err)
	}

	resumo := core.ResumoGastos(gastos)

	return ResumoFatura{
		Periodo:       periodo,
		Resumo:        resumo,
		PessoaAbatida: s.pessoaAbatida,
		FaturaFinal:   core.FaturaFinal(resumo.PorPessoa, s.pessoaAbatida),
	}, nil
}

func (s *GastoService) publishEvent(ctx context.Context, evento, colecao string, id int64, payload json.RawMessage) {
	if s.amqpClient == nil {
		return
	}

	evt := amqp.NewRecordEvent(evento, colecao, id, payload)
	if err := s.amqpClient.PublishRecordEvent(ctx, evt); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record event",
			"evento", evento, "colecao", colecao, "registro_id", id, "error", err)
		// Don't fail the request, the record is saved locally.
	}
}

func gastoPayload(g core.Gasto) json.RawMessage {
	b, err := json.Marshal(map[string]any{
		"id":           g.ID,
		"descricao":    g.Descricao,
		"valor":        g.Valor.Decimal(),
		"categorias":   g.Categorias,
		"pessoa":       g.Pessoa,
		"mes":          g.Mes,
		"ano":          g.Ano,
		"data_criacao": g.CriadoEm,
	})
	if err != nil {
		return nil
	}
	return b
}
