package core

import (
	"errors"
	"strings"
	"time"
)

// Pessoa is one of the fixed identities an expense can be attributed to.
type Pessoa string

const (
	PessoaDaniel  Pessoa = "Daniel"
	PessoaDouglas Pessoa = "Douglas"
	PessoaCasa    Pessoa = "Casa"
)

// Pessoas returns the fixed set of valid payers.
func Pessoas() []Pessoa {
	return []Pessoa{PessoaDaniel, PessoaDouglas, PessoaCasa}
}

// Valid reports whether p belongs to the fixed payer set.
func (p Pessoa) Valid() bool {
	switch p {
	case PessoaDaniel, PessoaDouglas, PessoaCasa:
		return true
	}
	return false
}

type (
	// Date is a calendar date. No timezone conversion is ever applied;
	// all dates are UTC midnight values.
	Date struct {
		time.Time
	}

	// Gasto is a shared expense attributed to one person for a billing
	// bucket identified by (Mes, Ano).
	Gasto struct {
		ID         int64
		Descricao  string
		Valor      Money
		Categorias string // comma-joined category labels
		Pessoa     Pessoa
		Mes        int // 1-12
		Ano        int
		CriadoEm   time.Time
	}

	// Frequencia is a daily attendance entry. Ano and Mes are derived
	// from Data at write time; the billing period an entry belongs to is
	// decided by its Data through PeriodoFatura, not by these columns.
	Frequencia struct {
		ID         int64
		Data       Date
		Horas      float64
		Atividade  string
		Observacao string
		Usuario    string
		Ano        int
		Mes        int
		CriadoEm   time.Time
	}
)

var (
	ErrInvalidMonth     = errors.New("mes out of range (1-12)")
	ErrInvalidYear      = errors.New("ano must be positive")
	ErrInvalidAmount    = errors.New("valor must be a positive amount")
	ErrInvalidHoras     = errors.New("horas out of range (0-24)")
	ErrEmptyDescription = errors.New("descricao is required")
	ErrDescricaoLonga   = errors.New("descricao too long (max 200 characters)")
	ErrEmptyCategorias  = errors.New("categorias is required")
	ErrInvalidPessoa    = errors.New("pessoa must be one of Daniel, Douglas, Casa")
	ErrEmptyAtividade   = errors.New("atividade is required")
	ErrAtividadeLonga   = errors.New("atividade too long (max 200 characters)")
	ErrEmptyUsuario     = errors.New("usuario is required")
	ErrZeroDate         = errors.New("data is required")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, errors.New("data must be an ISO date (YYYY-MM-DD)")
	}
	return Date{Time: t}, nil
}

// ISO formats the date as 2006-01-02.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// Year returns the calendar year.
func (d Date) Year() int { return d.Time.Year() }

// MonthNum returns the calendar month as 1-12.
func (d Date) MonthNum() int { return int(d.Time.Month()) }

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// Validate enforces the invariants for a persisted expense:
// non-empty description, positive amount, at least one category label,
// a known payer and a valid billing bucket.
func (g Gasto) Validate() error {
	if len(strings.TrimSpace(g.Descricao)) == 0 {
		return ErrEmptyDescription
	}
	if len(g.Descricao) > 200 {
		return ErrDescricaoLonga
	}
	if err := g.Valor.Validate(); err != nil {
		return err
	}
	if len(SplitCategorias(g.Categorias)) == 0 {
		return ErrEmptyCategorias
	}
	if !g.Pessoa.Valid() {
		return ErrInvalidPessoa
	}
	if g.Mes < 1 || g.Mes > 12 {
		return ErrInvalidMonth
	}
	if g.Ano <= 0 {
		return ErrInvalidYear
	}
	return nil
}

// Validate enforces the invariants for an attendance entry. Unlike
// expenses, zero hours are allowed: a logged day with no activity hours
// is a valid record, only negatives are rejected.
func (f Frequencia) Validate() error {
	if err := f.Data.Validate(); err != nil {
		return err
	}
	if f.Horas < 0 || f.Horas > 24 {
		return ErrInvalidHoras
	}
	if len(strings.TrimSpace(f.Atividade)) == 0 {
		return ErrEmptyAtividade
	}
	if len(f.Atividade) > 200 {
		return ErrAtividadeLonga
	}
	if len(strings.TrimSpace(f.Usuario)) == 0 {
		return ErrEmptyUsuario
	}
	return nil
}

// SplitCategorias breaks a comma-joined category field into trimmed,
// non-empty labels.
func SplitCategorias(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
