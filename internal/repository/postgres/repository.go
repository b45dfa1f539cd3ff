// Package postgres implements the persistence adapter against a remote
// PostgreSQL database. It is the "remote document collection" backend:
// entries are read back ordered by creation time descending and the month
// reset is issued as a batch delete.
package postgres

import (
	"context"
	"fmt"

	"control-horas/internal/domain"
	"control-horas/internal/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const themeKey = "theme_dark"

// PostgresRepository implements the repository.Repository interface backed
// by a pgx connection pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// New connects to the database, ensures the schema exists and returns the
// repository.
func New(ctx context.Context, connString string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, errors.NewStorageReadError("connect", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.NewStorageReadError("ping", err)
	}

	repo := &PostgresRepository{pool: pool}
	if err := repo.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

// NewWithPool wraps an existing pool, primarily for tests.
func NewWithPool(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS entries (
			id BIGINT PRIMARY KEY,
			created_at BIGINT NOT NULL,
			trip_type TEXT NOT NULL,
			entry_date TEXT NOT NULL,
			hours DOUBLE PRECISION NOT NULL,
			cost DOUBLE PRECISION NOT NULL
		);
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return errors.NewStorageWriteError("ensure schema", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

const entrySelectCols = `id, created_at, trip_type, entry_date, hours, cost`

func scanEntry(scan func(...any) error) (*domain.Entry, error) {
	e := &domain.Entry{}
	return e, scan(&e.ID, &e.CreatedAt, &e.TripType, &e.Date, &e.Hours, &e.Cost)
}

// LoadEntries retrieves all entries, most recent first.
func (r *PostgresRepository) LoadEntries(ctx context.Context) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+entrySelectCols+`
		 FROM entries
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.NewStorageReadError("load entries", err)
	}
	defer rows.Close()

	var list []*domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, errors.NewStorageReadError("scan entry", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageReadError("load entries", err)
	}
	return list, nil
}

// SaveEntry upserts a single entry keyed by its creation-time ID.
func (r *PostgresRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO entries (id, created_at, trip_type, entry_date, hours, cost)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
			created_at = excluded.created_at,
			trip_type = excluded.trip_type,
			entry_date = excluded.entry_date,
			hours = excluded.hours,
			cost = excluded.cost`,
		entry.ID, entry.CreatedAt, entry.TripType, entry.Date, entry.Hours, entry.Cost)
	if err != nil {
		return errors.NewStorageWriteError("save entry", err)
	}
	return nil
}

// SaveEntries replaces the stored collection with the given one as a single
// batch inside a transaction.
func (r *PostgresRepository) SaveEntries(ctx context.Context, entries []*domain.Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.NewStorageWriteError("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM entries`); err != nil {
		return errors.NewStorageWriteError("clear entries", err)
	}

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(
			`INSERT INTO entries (id, created_at, trip_type, entry_date, hours, cost)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			entry.ID, entry.CreatedAt, entry.TripType, entry.Date, entry.Hours, entry.Cost)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return errors.NewStorageWriteError("save entries", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.NewStorageWriteError("commit entries", err)
	}
	return nil
}

// DeleteEntry deletes an entry by ID.
func (r *PostgresRepository) DeleteEntry(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return errors.NewStorageWriteError("delete entry", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.NewNotFoundError("entry", fmt.Sprintf("%d", id))
	}
	return nil
}

// ClearEntries deletes the entire entry collection.
func (r *PostgresRepository) ClearEntries(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM entries`); err != nil {
		return errors.NewStorageWriteError("clear entries", err)
	}
	return nil
}

// LoadThemePreference returns the stored dark/light flag, defaulting to
// dark when no row exists.
func (r *PostgresRepository) LoadThemePreference(ctx context.Context) (bool, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM preferences WHERE key = $1`, themeKey).Scan(&value)
	if err == pgx.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return true, errors.NewStorageReadError("load theme preference", err)
	}
	return value == "true", nil
}

// SaveThemePreference stores the dark/light flag.
func (r *PostgresRepository) SaveThemePreference(ctx context.Context, dark bool) error {
	value := "false"
	if dark {
		value = "true"
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO preferences (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		themeKey, value)
	if err != nil {
		return errors.NewStorageWriteError("save theme preference", err)
	}
	return nil
}
