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

// FrequenciaService handles attendance writes and billing-window
// listings.
type FrequenciaService struct {
	store      storage.FrequenciaStore
	amqpClient *amqp.Client
}

func NewFrequenciaService(store storage.FrequenciaStore, amqpClient *amqp.Client) *FrequenciaService {
	return &FrequenciaService{
		store:      store,
		amqpClient: amqpClient,
	}
}

// FrequenciasPeriodo is one user's attendance within a billing window.
type FrequenciasPeriodo struct {
	Periodo     core.Periodo
	Frequencias []core.Frequencia
	TotalHoras  float64
}

// Create validates and saves a new attendance record. The calendar
// fields are always derived from the date; a caller cannot set them
// independently.
func (s *FrequenciaService) Create(ctx context.Context, f core.Frequencia) (core.Frequencia, error) {
	f.Ano = f.Data.Year()
	f.Mes = f.Data.MonthNum()
	if err := f.Validate(); err != nil {
		return core.Frequencia{}, err
	}

	saved, err := s.store.CreateFrequencia(ctx, f)
	if err != nil {
		return core.Frequencia{}, fmt.Errorf("save frequencia: %w", err)
	}

	s.publishEvent(ctx, amqp.EventCreated, saved.ID, frequenciaPayload(saved))

	return saved, nil
}

// Get returns one attendance record by id.
func (s *FrequenciaService) Get(ctx context.Context, id int64) (core.Frequencia, error) {
	return s.store.GetFrequencia(ctx, id)
}

// Update replaces every mutable field of an existing record, deriving
// the calendar fields from the new date.
func (s *FrequenciaService) Update(ctx context.Context, f core.Frequencia) (core.Frequencia, error) {
	f.Ano = f.Data.Year()
	f.Mes = f.Data.MonthNum()
	if err := f.Validate(); err != nil {
		return core.Frequencia{}, err
	}

	saved, err := s.store.UpdateFrequencia(ctx, f)
	if err != nil {
		return core.Frequencia{}, err
	}

	s.publishEvent(ctx, amqp.EventUpdated, saved.ID, frequenciaPayload(saved))

	return saved, nil
}

// Delete removes an attendance record. Deleting an id that no longer
// exists is not an error.
func (s *FrequenciaService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteFrequencia(ctx, id); err != nil {
		return fmt.Errorf("delete frequencia: %w", err)
	}

	s.publishEvent(ctx, amqp.EventDeleted, id, nil)

	return nil
}

// ListPeriodo returns one user's records inside the (ano, mes) billing
// window, oldest first, with the summed hours.
func (s *FrequenciaService) ListPeriodo(ctx context.Context, ano, mes int, usuario string) (FrequenciasPeriodo, error) {
	if usuario == "" {
		return FrequenciasPeriodo{}, core.ErrEmptyUsuario
	}

	periodo, err := core.PeriodoFatura(ano, mes)
	if err != nil {
		return FrequenciasPeriodo{}, err
	}

	frequencias, err := s.store.ListFrequencias(ctx, periodo, usuario)
	if err != nil {
		return FrequenciasPeriodo{}, fmt.Errorf("list frequencias: %w", err)
	}

	var total float64
	for _, f := range frequencias {
		total += f.Horas
	}

	return FrequenciasPeriodo{
		Periodo:     periodo,
		Frequencias: frequencias,
		TotalHoras:  total,
	}, nil
}

func (s *FrequenciaService) publishEvent(ctx context.Context, evento string, id int64, payload json.RawMessage) {
	if s.amqpClient == nil {
		return
	}

	evt := amqp.NewRecordEvent(evento, amqp.ColecaoFrequencias, id, payload)
	if err := s.amqpClient.PublishRecordEvent(ctx, evt); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record event",
			"evento", evento, "colecao", amqp.ColecaoFrequencias, "registro_id", id, "error", err)
		// Don't fail the request, the record is saved locally.
	}
}

func frequenciaPayload(f core.Frequencia) json.RawMessage {
	b, err := json.Marshal(map[string]any{
		"id":         f.ID,
		"data":       f.Data.ISO(),
		"horas":      f.Horas,
		"atividade":  f.Atividade,
		"observacao": f.Observacao,
		"usuario":    f.Usuario,
		"ano":        f.Ano,
		"mes":        f.Mes,
		"created_at": f.CriadoEm,
	})
	if err != nil {
		return nil
	}
	return b
}
