package http

import "net/http"

func (s *Server) handleCreateFrequencia(w http.ResponseWriter, r *http.Request) {
	var req frequenciaRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	frequencia, err := req.toFrequencia()
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	created, err := s.frequencias.Create(r.Context(), frequencia)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toFrequenciaResponse(created))
}

func (s *Server) handleGetFrequencia(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	frequencia, err := s.frequencias.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toFrequenciaResponse(frequencia))
}

func (s *Server) handleUpdateFrequencia(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var req frequenciaRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	frequencia, err := req.toFrequencia()
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	frequencia.ID = id

	updated, err := s.frequencias.Update(r.Context(), frequencia)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toFrequenciaResponse(updated))
}

func (s *Server) handleDeleteFrequencia(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	if err := s.frequencias.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListFrequenciasPeriodo(w http.ResponseWriter, r *http.Request) {
	ano, mes, err := pathAnoMes(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	usuario := r.URL.Query().Get("user")

	out, err := s.frequencias.ListPeriodo(r.Context(), ano, mes, usuario)
	if err != nil {
		respondError(w, r, err)
		return
	}

	frequencias := make([]frequenciaResponse, 0, len(out.Frequencias))
	for _, f := range out.Frequencias {
		frequencias = append(frequencias, toFrequenciaResponse(f))
	}

	respondJSON(w, http.StatusOK, frequenciasPeriodoResponse{
		Ano:         ano,
		Mes:         mes,
		Periodo:     toPeriodoResponse(out.Periodo),
		Usuario:     usuario,
		TotalHoras:  out.TotalHoras,
		Frequencias: frequencias,
	})
}
