package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvillan/patterndrill/internal/db"
	"github.com/mvillan/patterndrill/internal/domain"
)

// SQLiteAccountRepo implements AccountRepo using a SQLite database.
type SQLiteAccountRepo struct {
	db db.DBTX
}

// NewSQLiteAccountRepo creates a new SQLiteAccountRepo.
func NewSQLiteAccountRepo(conn db.DBTX) *SQLiteAccountRepo {
	return &SQLiteAccountRepo{db: conn}
}

func (r *SQLiteAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting account: %w", err)
	}
	return nil
}

func (r *SQLiteAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, name, created_at FROM accounts WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAccountRepo) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `SELECT id, name, created_at FROM accounts WHERE name = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteAccountRepo) List(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT id, name, created_at FROM accounts ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var a domain.Account
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

func (r *SQLiteAccountRepo) scanOne(row *sql.Row) (*domain.Account, error) {
	var a domain.Account
	var createdAt string
	err := row.Scan(&a.ID, &a.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("account: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning account: %w", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &a, nil
}
