// internal/infra/database/sqlite_send_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"birthday_notification_bot/internal/domain/dedup"
)

// ErrRecordNotFound is returned by Get when no send record exists for a key.
var ErrRecordNotFound = fmt.Errorf("send record not found")

// SQLiteSendRepository implements dedup.Repository on a local SQLite table.
type SQLiteSendRepository struct {
	db *sql.DB
}

func NewSQLiteSendRepository(db *sql.DB) *SQLiteSendRepository {
	return &SQLiteSendRepository{db: db}
}

// Init creates the sent table if it does not exist yet. Idempotent across
// repeated calls and processes.
func (r *SQLiteSendRepository) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS sent (
        phone TEXT NOT NULL,
        year INTEGER NOT NULL,
        sent_at TEXT NOT NULL,
        message TEXT,
        PRIMARY KEY (phone, year)
    )`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error creating sent table: %w", err)
	}
	return nil
}

// HasSent reports whether a send record exists for (phone, year).
func (r *SQLiteSendRepository) HasSent(ctx context.Context, phone string, year int) (bool, error) {
	query := `SELECT 1 FROM sent WHERE phone = ? AND year = ? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, query, phone, year).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error checking send record: %w", err)
	}
	return true, nil
}

// Record upserts the send record for (phone, year). A prior record for the
// same key is replaced, never duplicated.
func (r *SQLiteSendRepository) Record(ctx context.Context, phone string, year int, message string) error {
	query := `INSERT INTO sent (phone, year, sent_at, message)
               VALUES (?, ?, ?, ?)
               ON CONFLICT (phone, year) DO UPDATE SET
                   sent_at = excluded.sent_at,
                   message = excluded.message`
	sentAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, query, phone, year, sentAt, message); err != nil {
		return fmt.Errorf("error recording send for %s/%d: %w", phone, year, err)
	}
	return nil
}

// Get fetches the stored record for (phone, year).
func (r *SQLiteSendRepository) Get(ctx context.Context, phone string, year int) (*dedup.SendRecord, error) {
	query := `SELECT phone, year, sent_at, message FROM sent WHERE phone = ? AND year = ?`
	rec := dedup.SendRecord{}
	var sentAt string
	err := r.db.QueryRowContext(ctx, query, phone, year).Scan(&rec.Phone, &rec.Year, &sentAt, &rec.Message)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("error getting send record: %w", err)
	}
	rec.SentAt, err = time.Parse(time.RFC3339, sentAt)
	if err != nil {
		return nil, fmt.Errorf("error parsing sent_at %q: %w", sentAt, err)
	}
	return &rec, nil
}
