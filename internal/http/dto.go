package http

import (
	"encoding/json"
	"strings"
	"time"

	"fatura/internal/core"
	"fatura/internal/services"
)

// categorias accepts either a single comma-joined string or a JSON
// array of labels; it normalizes to the comma-joined form.
type categorias string

func (c *categorias) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = categorias(s)
		return nil
	}
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*c = categorias(strings.Join(labels, ","))
	return nil
}

type gastoRequest struct {
	Descricao  string      `json:"descricao"`
	Valor      json.Number `json:"valor"`
	Categorias categorias  `json:"categorias"`
	Pessoa     string      `json:"pessoa"`
	Mes        int         `json:"mes"`
	Ano        int         `json:"ano"`
}

func (req gastoRequest) toGasto() (core.Gasto, error) {
	cents, err := core.ParseDecimalToCents(req.Valor.String())
	if err != nil {
		return core.Gasto{}, err
	}
	return core.Gasto{
		Descricao:  strings.TrimSpace(req.Descricao),
		Valor:      core.Money{Cents: cents},
		Categorias: string(req.Categorias),
		Pessoa:     core.Pessoa(req.Pessoa),
		Mes:        req.Mes,
		Ano:        req.Ano,
	}, nil
}

type gastoResponse struct {
	ID         int64   `json:"id"`
	Descricao  string  `json:"descricao"`
	Valor      float64 `json:"valor"`
	Categorias string  `json:"categorias"`
	Pessoa     string  `json:"pessoa"`
	Mes        int     `json:"mes"`
	Ano        int     `json:"ano"`
	CriadoEm   string  `json:"data_criacao"`
}

func toGastoResponse(g core.Gasto) gastoResponse {
	return gastoResponse{
		ID:         g.ID,
		Descricao:  g.Descricao,
		Valor:      g.Valor.Decimal(),
		Categorias: g.Categorias,
		Pessoa:     string(g.Pessoa),
		Mes:        g.Mes,
		Ano:        g.Ano,
		CriadoEm:   g.CriadoEm.UTC().Format(time.RFC3339),
	}
}

func toGastoResponses(gastos []core.Gasto) []gastoResponse {
	out := make([]gastoResponse, 0, len(gastos))
	for _, g := range gastos {
		out = append(out, toGastoResponse(g))
	}
	return out
}

type frequenciaRequest struct {
	Data       string  `json:"data"`
	Horas      float64 `json:"horas"`
	Atividade  string  `json:"atividade"`
	Observacao string  `json:"observacao"`
	Usuario    string  `json:"usuario"`
}

func (req frequenciaRequest) toFrequencia() (core.Frequencia, error) {
	data, err := core.ParseDate(req.Data)
	if err != nil {
		return core.Frequencia{}, err
	}
	return core.Frequencia{
		Data:       data,
		Horas:      req.Horas,
		Atividade:  strings.TrimSpace(req.Atividade),
		Observacao: strings.TrimSpace(req.Observacao),
		Usuario:    strings.TrimSpace(req.Usuario),
	}, nil
}

type frequenciaResponse struct {
	ID         int64   `json:"id"`
	Data       string  `json:"data"`
	Horas      float64 `json:"horas"`
	Atividade  string  `json:"atividade"`
	Observacao string  `json:"observacao,omitempty"`
	Usuario    string  `json:"usuario"`
	Ano        int     `json:"ano"`
	Mes        int     `json:"mes"`
	CriadoEm   string  `json:"created_at"`
}

func toFrequenciaResponse(f core.Frequencia) frequenciaResponse {
	return frequenciaResponse{
		ID:         f.ID,
		Data:       f.Data.ISO(),
		Horas:      f.Horas,
		Atividade:  f.Atividade,
		Observacao: f.Observacao,
		Usuario:    f.Usuario,
		Ano:        f.Ano,
		Mes:        f.Mes,
		CriadoEm:   f.CriadoEm.UTC().Format(time.RFC3339),
	}
}

type periodoResponse struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

func toPeriodoResponse(p core.Periodo) periodoResponse {
	return periodoResponse{Inicio: p.Inicio.ISO(), Fim: p.Fim.ISO()}
}

type gastosPeriodoResponse struct {
	Ano    int             `json:"ano"`
	Mes    int             `json:"mes"`
	Gastos []gastoResponse `json:"gastos"`
}

type resumoResponse struct {
	Ano           int                `json:"ano"`
	Mes           int                `json:"mes"`
	Periodo       periodoResponse    `json:"periodo"`
	TotalGeral    float64            `json:"total_geral"`
	PorPessoa     map[string]float64 `json:"por_pessoa"`
	PorCategoria  map[string]float64 `json:"por_categoria"`
	PessoaAbatida string             `json:"pessoa_abatida"`
	FaturaFinal   float64            `json:"fatura_final"`
}

func toResumoResponse(ano, mes int, rf services.ResumoFatura) resumoResponse {
	porPessoa := make(map[string]float64, len(rf.Resumo.PorPessoa))
	for pessoa, valor := range rf.Resumo.PorPessoa {
		porPessoa[string(pessoa)] = valor.Decimal()
	}
	porCategoria := make(map[string]float64, len(rf.Resumo.PorCategoria))
	for label, valor := range rf.Resumo.PorCategoria {
		porCategoria[label] = valor.Decimal()
	}
	return resumoResponse{
		Ano:           ano,
		Mes:           mes,
		Periodo:       toPeriodoResponse(rf.Periodo),
		TotalGeral:    rf.Resumo.TotalGeral.Decimal(),
		PorPessoa:     porPessoa,
		PorCategoria:  porCategoria,
		PessoaAbatida: string(rf.PessoaAbatida),
		FaturaFinal:   rf.FaturaFinal.Decimal(),
	}
}

type frequenciasPeriodoResponse struct {
	Ano         int                  `json:"ano"`
	Mes         int                  `json:"mes"`
	Periodo     periodoResponse      `json:"periodo"`
	Usuario     string               `json:"usuario"`
	TotalHoras  float64              `json:"total_horas"`
	Frequencias []frequenciaResponse `json:"frequencias"`
}
