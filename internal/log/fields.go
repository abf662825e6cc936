package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldAno        = "ano"
	FieldMes        = "mes"
	FieldUsuario    = "usuario"
	FieldPessoa     = "pessoa"
	FieldValorCents = "valor_cents"
	FieldRegistroID = "registro_id"
	FieldEvento     = "evento"
	FieldColecao    = "colecao"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentCache   = "cache"
)
