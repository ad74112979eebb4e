package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvillan/patterndrill/internal/db"
	"github.com/mvillan/patterndrill/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database. It
// accepts a DBTX so the service layer can run read-modify-write sequences
// inside a single transaction.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) GetMap(ctx context.Context, accountID string) (domain.CompletionMap, error) {
	query := `SELECT question_title, completed FROM question_progress WHERE account_id = ?`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("loading completion map: %w", err)
	}
	defer rows.Close()

	// First access yields an empty map, not an error.
	m := make(domain.CompletionMap)
	for rows.Next() {
		var title string
		var completed int
		if err := rows.Scan(&title, &completed); err != nil {
			return nil, fmt.Errorf("scanning progress row: %w", err)
		}
		m[title] = intToBool(completed)
	}
	return m, rows.Err()
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, accountID, title string) (bool, error) {
	query := `SELECT completed FROM question_progress WHERE account_id = ? AND question_title = ?`
	var completed int
	err := r.db.QueryRowContext(ctx, query, accountID, title).Scan(&completed)
	if err != nil {
		// Absence is equivalent to false.
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("reading progress entry: %w", err)
	}
	return intToBool(completed), nil
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, accountID, title string, completed bool) error {
	query := `INSERT INTO question_progress (account_id, question_title, completed, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(account_id, question_title) DO UPDATE
		SET completed = excluded.completed, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, accountID, title, boolToInt(completed), nowUTC())
	if err != nil {
		return fmt.Errorf("upserting progress entry: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) ReplaceAll(ctx context.Context, accountID string, m domain.CompletionMap) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM question_progress WHERE account_id = ?`, accountID); err != nil {
		return fmt.Errorf("clearing completion map: %w", err)
	}
	now := nowUTC()
	for title, completed := range m {
		query := `INSERT INTO question_progress (account_id, question_title, completed, updated_at)
			VALUES (?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query, accountID, title, boolToInt(completed), now); err != nil {
			return fmt.Errorf("inserting progress entry %q: %w", title, err)
		}
	}
	return nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
