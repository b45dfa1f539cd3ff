package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"control-horas/internal/domain"
	"control-horas/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// themeKey is the preferences-table key for the dark/light flag.
const themeKey = "theme_dark"

// SQLiteRepository implements the repository.Repository interface backed by
// a local SQLite file. The preferences table is a plain key-value store.
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleReadError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, HandleWriteError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadEntries retrieves all entries, most recent first
func (r *SQLiteRepository) LoadEntries(ctx context.Context) ([]*domain.Entry, error) {
	query := `
	SELECT id, created_at, trip_type, entry_date, hours, cost
	FROM entries
	ORDER BY created_at DESC`

	rows, err := QueryMultiple(ctx, r.db, query, ScanEntries, "entries")
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.ToDomain()
	}
	return entries, nil
}

// GetEntry retrieves a single entry by ID
func (r *SQLiteRepository) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	query := `
	SELECT id, created_at, trip_type, entry_date, hours, cost
	FROM entries
	WHERE id = ?`

	row, err := QuerySingle(ctx, r.db, query, ScanEntry, "entry", fmt.Sprintf("%d", id), id)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// SaveEntry persists a single entry. The ID is assigned by the entry service,
// so an existing row with the same ID is replaced rather than duplicated.
func (r *SQLiteRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	query := `
	INSERT OR REPLACE INTO entries (id, created_at, trip_type, entry_date, hours, cost)
	VALUES (?, ?, ?, ?, ?, ?)`

	row := FromDomain(entry)
	_, err := r.db.ExecContext(ctx, query, row.ID, row.CreatedAt, row.TripType, row.EntryDate, row.Hours, row.Cost)
	if err != nil {
		return HandleWriteError("save entry", err)
	}
	return nil
}

// SaveEntries replaces the stored collection with the given one inside a
// single transaction, preserving the given order on reload.
func (r *SQLiteRepository) SaveEntries(ctx context.Context, entries []*domain.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleWriteError("begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		tx.Rollback()
		return HandleWriteError("clear entries", err)
	}

	query := `
	INSERT INTO entries (id, created_at, trip_type, entry_date, hours, cost)
	VALUES (?, ?, ?, ?, ?, ?)`
	for _, entry := range entries {
		row := FromDomain(entry)
		if _, err := tx.ExecContext(ctx, query, row.ID, row.CreatedAt, row.TripType, row.EntryDate, row.Hours, row.Cost); err != nil {
			tx.Rollback()
			return HandleWriteError("save entries", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleWriteError("commit entries", err)
	}
	return nil
}

// DeleteEntry deletes an entry by ID
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", fmt.Sprintf("%d", id), id)
}

// ClearEntries deletes the entire entry collection
func (r *SQLiteRepository) ClearEntries(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return HandleWriteError("clear entries", err)
	}
	return nil
}

// LoadThemePreference returns the stored dark/light flag, defaulting to dark
// when no preference has been stored yet.
func (r *SQLiteRepository) LoadThemePreference(ctx context.Context) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, themeKey).Scan(&value)
	if err == sql.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return true, HandleReadError("load theme preference", err)
	}

	dark, err := strconv.ParseBool(value)
	if err != nil {
		// Corrupt value, fall back to the default
		return true, nil
	}
	return dark, nil
}

// SaveThemePreference stores the dark/light flag
func (r *SQLiteRepository) SaveThemePreference(ctx context.Context, dark bool) error {
	query := `
	INSERT INTO preferences (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := r.db.ExecContext(ctx, query, themeKey, strconv.FormatBool(dark)); err != nil {
		return HandleWriteError("save theme preference", err)
	}
	return nil
}
