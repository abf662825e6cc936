package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fatura/internal/core"
	"fatura/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= 500 {
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		respondJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// statusFor maps domain errors onto HTTP status codes. Validation
// failures are the caller's fault; anything unrecognized is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidMonth),
		errors.Is(err, core.ErrInvalidYear),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidHoras),
		errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrDescricaoLonga),
		errors.Is(err, core.ErrEmptyCategorias),
		errors.Is(err, core.ErrInvalidPessoa),
		errors.Is(err, core.ErrEmptyAtividade),
		errors.Is(err, core.ErrAtividadeLonga),
		errors.Is(err, core.ErrEmptyUsuario),
		errors.Is(err, core.ErrZeroDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be an integer", name, raw)
	}
	return v, nil
}

func pathAnoMes(r *http.Request) (int, int, error) {
	ano, err := pathInt64(r, "ano")
	if err != nil {
		return 0, 0, err
	}
	mes, err := pathInt64(r, "mes")
	if err != nil {
		return 0, 0, err
	}
	return int(ano), int(mes), nil
}
