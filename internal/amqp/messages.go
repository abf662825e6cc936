package amqp

import (
	"encoding/json"
	"time"
)

// Record event kinds.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Collections a record event can refer to.
const (
	ColecaoGastos      = "gastos"
	ColecaoFrequencias = "frequencias"
)

// RecordEvent is published after every successful write. The payload
// carries the record as it was written (empty for deletes); consumers
// that only need the id can ignore it.
type RecordEvent struct {
	Evento     string          `json:"evento"`
	Colecao    string          `json:"colecao"`
	RegistroID int64           `json:"registro_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NewRecordEvent builds an event stamped with the current time.
func NewRecordEvent(evento, colecao string, registroID int64, payload json.RawMessage) *RecordEvent {
	return &RecordEvent{
		Evento:     evento,
		Colecao:    colecao,
		RegistroID: registroID,
		Payload:    payload,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *RecordEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// RecordEventFromJSON parses an event from JSON bytes.
func RecordEventFromJSON(data []byte) (*RecordEvent, error) {
	var e RecordEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
