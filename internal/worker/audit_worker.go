// Package worker consumes record events and appends them to the
// change history.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fatura/internal/amqp"
	"fatura/internal/log"
	"fatura/internal/storage"
)

// AuditWorker turns record events into auditoria rows.
type AuditWorker struct {
	store storage.AuditStore
}

func NewAuditWorker(store storage.AuditStore) *AuditWorker {
	return &AuditWorker{store: store}
}

// HandleEvent appends one event to the change history. Returning an
// error requeues the delivery.
func (w *AuditWorker) HandleEvent(ctx context.Context, evt *amqp.RecordEvent) error {
	criadoEm := evt.Timestamp
	if criadoEm.IsZero() {
		criadoEm = time.Now()
	}
	entry := storage.AuditEntry{
		Evento:     evt.Evento,
		Colecao:    evt.Colecao,
		RegistroID: evt.RegistroID,
		Payload:    string(evt.Payload),
		CriadoEm:   criadoEm.UTC().Format(time.RFC3339),
	}

	if err := w.store.AppendAudit(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}

	slog.InfoContext(ctx, "Recorded change event",
		log.FieldComponent, log.ComponentWorker,
		log.FieldEvento, evt.Evento,
		log.FieldColecao, evt.Colecao,
		log.FieldRegistroID, evt.RegistroID)

	return nil
}
