// Package storage provides the SQLite-backed repositories for expense,
// attendance and audit records.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fatura/internal/core"

	_ "modernc.org/sqlite" // pure Go driver, no CGO
)

// Interface checks.
var (
	_ GastoStore      = (*SQLiteRepository)(nil)
	_ FrequenciaStore = (*SQLiteRepository)(nil)
	_ AuditStore      = (*SQLiteRepository)(nil)
)

// SQLiteRepository implements all stores over a single SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath
// and applies pending migrations.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Ping reports whether the database is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateGasto inserts a new expense. The id and creation timestamp are
// assigned here, never by the caller.
func (r *SQLiteRepository) CreateGasto(ctx context.Context, g core.Gasto) (core.Gasto, error) {
	g.CriadoEm = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO gastos (descricao, valor_cents, categorias, pessoa, mes, ano, data_criacao)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.Descricao, g.Valor.Cents, g.Categorias, string(g.Pessoa), g.Mes, g.Ano, g.CriadoEm,
	)
	if err != nil {
		return core.Gasto{}, fmt.Errorf("insert gasto: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Gasto{}, fmt.Errorf("gasto last insert id: %w", err)
	}
	g.ID = id

	slog.InfoContext(ctx, "Gasto saved",
		"id", g.ID,
		"descricao", g.Descricao,
		"valor_cents", g.Valor.Cents,
		"pessoa", g.Pessoa,
		"mes", g.Mes,
		"ano", g.Ano)
	return g, nil
}

func (r *SQLiteRepository) GetGasto(ctx context.Context, id int64) (core.Gasto, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, descricao, valor_cents, categorias, pessoa, mes, ano, data_criacao
		 FROM gastos WHERE id = ?`, id)
	g, err := scanGasto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Gasto{}, ErrNotFound
	}
	if err != nil {
		return core.Gasto{}, fmt.Errorf("get gasto %d: %w", id, err)
	}
	return g, nil
}

// ListGastos returns the billing bucket (ano, mes) ordered by creation
// timestamp descending, newest first.
func (r *SQLiteRepository) ListGastos(ctx context.Context, ano, mes int) ([]core.Gasto, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, descricao, valor_cents, categorias, pessoa, mes, ano, data_criacao
		 FROM gastos WHERE ano = ? AND mes = ?
		 ORDER BY data_criacao DESC, id DESC`, ano, mes)
	if err != nil {
		return nil, fmt.Errorf("list gastos (%d-%02d): %w", ano, mes, err)
	}
	defer rows.Close()

	var gastos []core.Gasto
	for rows.Next() {
		g, err := scanGasto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		gastos = append(gastos, g)
	}
	return gastos, rows.Err()
}

// UpdateGasto replaces every mutable field of the expense identified by
// g.ID. The creation timestamp is immutable.
func (r *SQLiteRepository) UpdateGasto(ctx context.Context, g core.Gasto) (core.Gasto, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE gastos SET descricao = ?, valor_cents = ?, categorias = ?, pessoa = ?, mes = ?, ano = ?
		 WHERE id = ?`,
		g.Descricao, g.Valor.Cents, g.Categorias, string(g.Pessoa), g.Mes, g.Ano, g.ID,
	)
	if err != nil {
		return core.Gasto{}, fmt.Errorf("update gasto %d: %w", g.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Gasto{}, fmt.Errorf("update gasto rows affected: %w", err)
	}
	if n == 0 {
		return core.Gasto{}, ErrNotFound
	}
	return r.GetGasto(ctx, g.ID)
}

// DeleteGasto removes the expense. Deleting an id that no longer exists
// is not an error.
func (r *SQLiteRepository) DeleteGasto(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM gastos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete gasto %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) CreateFrequencia(ctx context.Context, f core.Frequencia) (core.Frequencia, error) {
	f.CriadoEm = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO frequencias (data, horas, atividade, observacao, usuario, ano, mes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Data.ISO(), f.Horas, f.Atividade, nullString(f.Observacao), f.Usuario, f.Ano, f.Mes, f.CriadoEm,
	)
	if err != nil {
		return core.Frequencia{}, fmt.Errorf("insert frequencia: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Frequencia{}, fmt.Errorf("frequencia last insert id: %w", err)
	}
	f.ID = id

	slog.InfoContext(ctx, "Frequencia saved",
		"id", f.ID,
		"data", f.Data.ISO(),
		"horas", f.Horas,
		"usuario", f.Usuario)
	return f, nil
}

func (r *SQLiteRepository) GetFrequencia(ctx context.Context, id int64) (core.Frequencia, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, data, horas, atividade, observacao, usuario, ano, mes, created_at
		 FROM frequencias WHERE id = ?`, id)
	f, err := scanFrequencia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Frequencia{}, ErrNotFound
	}
	if err != nil {
		return core.Frequencia{}, fmt.Errorf("get frequencia %d: %w", id, err)
	}
	return f, nil
}

// ListFrequencias returns, date ascending, the entries whose calendar
// date falls inside the billing window. ISO dates compare correctly as
// text, so the range filter runs in SQL.
func (r *SQLiteRepository) ListFrequencias(ctx context.Context, p core.Periodo, usuario string) ([]core.Frequencia, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, data, horas, atividade, observacao, usuario, ano, mes, created_at
		 FROM frequencias WHERE usuario = ? AND data >= ? AND data <= ?
		 ORDER BY data ASC, id ASC`,
		usuario, p.Inicio.ISO(), p.Fim.ISO())
	if err != nil {
		return nil, fmt.Errorf("list frequencias (%s..%s): %w", p.Inicio.ISO(), p.Fim.ISO(), err)
	}
	defer rows.Close()

	var out []core.Frequencia
	for rows.Next() {
		f, err := scanFrequencia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan frequencia: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateFrequencia(ctx context.Context, f core.Frequencia) (core.Frequencia, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE frequencias SET data = ?, horas = ?, atividade = ?, observacao = ?, usuario = ?, ano = ?, mes = ?
		 WHERE id = ?`,
		f.Data.ISO(), f.Horas, f.Atividade, nullString(f.Observacao), f.Usuario, f.Ano, f.Mes, f.ID,
	)
	if err != nil {
		return core.Frequencia{}, fmt.Errorf("update frequencia %d: %w", f.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Frequencia{}, fmt.Errorf("update frequencia rows affected: %w", err)
	}
	if n == 0 {
		return core.Frequencia{}, ErrNotFound
	}
	return r.GetFrequencia(ctx, f.ID)
}

func (r *SQLiteRepository) DeleteFrequencia(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM frequencias WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete frequencia %d: %w", id, err)
	}
	return nil
}

// AppendAudit records one change-history row. The event timestamp is
// kept when the caller provides one.
func (r *SQLiteRepository) AppendAudit(ctx context.Context, e AuditEntry) error {
	criadoEm := e.CriadoEm
	if criadoEm == "" {
		criadoEm = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auditoria (evento, colecao, registro_id, payload, criado_em)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Evento, e.Colecao, e.RegistroID, e.Payload, criadoEm,
	)
	if err != nil {
		return fmt.Errorf("append auditoria: %w", err)
	}
	return nil
}

// ListAudit returns the newest change-history rows, up to limit.
func (r *SQLiteRepository) ListAudit(ctx context.Context, limit int) ([]AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, evento, colecao, registro_id, COALESCE(payload, ''), criado_em
		 FROM auditoria ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()

	var out []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Evento, &e.Colecao, &e.RegistroID, &e.Payload, &e.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGasto(row rowScanner) (core.Gasto, error) {
	var (
		g      core.Gasto
		pessoa string
	)
	if err := row.Scan(&g.ID, &g.Descricao, &g.Valor.Cents, &g.Categorias, &pessoa, &g.Mes, &g.Ano, &g.CriadoEm); err != nil {
		return core.Gasto{}, err
	}
	g.Pessoa = core.Pessoa(pessoa)
	return g, nil
}

func scanFrequencia(row rowScanner) (core.Frequencia, error) {
	var (
		f          core.Frequencia
		data       string
		observacao sql.NullString
	)
	if err := row.Scan(&f.ID, &data, &f.Horas, &f.Atividade, &observacao, &f.Usuario, &f.Ano, &f.Mes, &f.CriadoEm); err != nil {
		return core.Frequencia{}, err
	}
	d, err := core.ParseDate(data)
	if err != nil {
		return core.Frequencia{}, fmt.Errorf("stored date %q: %w", data, err)
	}
	f.Data = d
	f.Observacao = observacao.String
	return f, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
