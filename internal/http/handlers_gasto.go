package http

import (
	"errors"
	"fmt"
	"net/http"

	"fatura/internal/storage"
)

func (s *Server) handleCreateGasto(w http.ResponseWriter, r *http.Request) {
	var req gastoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	gasto, err := req.toGasto()
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	created, err := s.gastos.Create(r.Context(), gasto)
	if err != nil {
		respondError(w, r, err)
		return
	}

	s.invalidateResumo(created.Ano, created.Mes)
	respondJSON(w, http.StatusCreated, toGastoResponse(created))
}

func (s *Server) handleGetGasto(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	gasto, err := s.gastos.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toGastoResponse(gasto))
}

func (s *Server) handleUpdateGasto(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var req gastoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	gasto, err := req.toGasto()
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	gasto.ID = id

	// The record may move to another bucket; drop the old summary too.
	if old, err := s.gastos.Get(r.Context(), id); err == nil {
		s.invalidateResumo(old.Ano, old.Mes)
	}

	updated, err := s.gastos.Update(r.Context(), gasto)
	if err != nil {
		respondError(w, r, err)
		return
	}

	s.invalidateResumo(updated.Ano, updated.Mes)
	respondJSON(w, http.StatusOK, toGastoResponse(updated))
}

func (s *Server) handleDeleteGasto(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	if old, err := s.gastos.Get(r.Context(), id); err == nil {
		s.invalidateResumo(old.Ano, old.Mes)
	} else if !errors.Is(err, storage.ErrNotFound) {
		respondError(w, r, err)
		return
	}

	if err := s.gastos.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListGastosPeriodo(w http.ResponseWriter, r *http.Request) {
	ano, mes, err := pathAnoMes(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	gastos, err := s.gastos.ListBucket(r.Context(), ano, mes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, gastosPeriodoResponse{
		Ano:    ano,
		Mes:    mes,
		Gastos: toGastoResponses(gastos),
	})
}

func (s *Server) handleResumoGastos(w http.ResponseWriter, r *http.Request) {
	ano, mes, err := pathAnoMes(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	key := resumoKey(ano, mes)
	if cached, ok := s.resumoCache.Get(key); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	rf, err := s.gastos.Resumo(r.Context(), ano, mes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := toResumoResponse(ano, mes, rf)
	s.resumoCache.Set(key, resp)
	respondJSON(w, http.StatusOK, resp)
}

func resumoKey(ano, mes int) string {
	return fmt.Sprintf("resumo:%d-%02d", ano, mes)
}

func (s *Server) invalidateResumo(ano, mes int) {
	s.resumoCache.Delete(resumoKey(ano, mes))
}
