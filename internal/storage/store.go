package storage

import (
	"context"
	"errors"

	"fatura/internal/core"
)

// ErrNotFound is returned by lookups whose equality filter matched no
// row.
var ErrNotFound = errors.New("record not found")

// GastoStore is the typed repository for expense records. One billing
// bucket is identified by (ano, mes); listing is ordered by creation
// timestamp descending.
type GastoStore interface {
	CreateGasto(ctx context.Context, g core.Gasto) (core.Gasto, error)
	GetGasto(ctx context.Context, id int64) (core.Gasto, error)
	ListGastos(ctx context.Context, ano, mes int) ([]core.Gasto, error)
	UpdateGasto(ctx context.Context, g core.Gasto) (core.Gasto, error)
	DeleteGasto(ctx context.Context, id int64) error
}

// FrequenciaStore is the typed repository for attendance records.
// Period listing filters on the billing window's date range, ordered by
// date ascending.
type FrequenciaStore interface {
	CreateFrequencia(ctx context.Context, f core.Frequencia) (core.Frequencia, error)
	GetFrequencia(ctx context.Context, id int64) (core.Frequencia, error)
	ListFrequencias(ctx context.Context, p core.Periodo, usuario string) ([]core.Frequencia, error)
	UpdateFrequencia(ctx context.Context, f core.Frequencia) (core.Frequencia, error)
	DeleteFrequencia(ctx context.Context, id int64) error
}

// AuditEntry is one row of the append-only change history written by
// the worker.
type AuditEntry struct {
	ID         int64
	Evento     string
	Colecao    string
	RegistroID int64
	Payload    string
	CriadoEm   string
}

// AuditStore records and reads the change history.
type AuditStore interface {
	AppendAudit(ctx context.Context, e AuditEntry) error
	ListAudit(ctx context.Context, limit int) ([]AuditEntry, error)
}
